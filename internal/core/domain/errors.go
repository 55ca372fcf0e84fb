package domain

import "errors"

// ============================================================================
// Contact Errors
// ============================================================================

// Not found errors
var (
	ErrContactNotFound = errors.New("contact not found")
	ErrPhoneNotFound   = errors.New("phone number not found on contact")
)

// Conflict errors
var (
	ErrContactNameConflict = errors.New("contact with this name already exists")
	ErrDuplicatePhone      = errors.New("contact already has this phone number")
)

// Validation errors
var (
	ErrInvalidContactName = errors.New("contact full name is required")
	ErrInvalidContactID   = errors.New("contact ID is required")
	ErrInvalidPhoneNumber = errors.New("phone number is required")
)

// ============================================================================
// Storage Errors
// ============================================================================

var (
	ErrCorruptSnapshot = errors.New("phonebook snapshot is corrupt")
)
