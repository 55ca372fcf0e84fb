package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Contact struct {
	ID        uuid.UUID     `json:"id"`
	FullName  string        `json:"full_name"`
	Phones    []PhoneNumber `json:"phones"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Validate checks the contact can be stored: a non-blank name and no blank numbers.
func (c *Contact) Validate() error {
	if strings.TrimSpace(c.FullName) == "" {
		return ErrInvalidContactName
	}
	for _, p := range c.Phones {
		if strings.TrimSpace(p.Number) == "" {
			return ErrInvalidPhoneNumber
		}
	}
	return nil
}

func (c *Contact) HasPhone(phone PhoneNumber) bool {
	for _, p := range c.Phones {
		if p.Equal(phone) {
			return true
		}
	}
	return false
}

func (c *Contact) AddPhone(phone PhoneNumber) error {
	if strings.TrimSpace(phone.Number) == "" {
		return ErrInvalidPhoneNumber
	}
	if c.HasPhone(phone) {
		return ErrDuplicatePhone
	}
	c.Phones = append(c.Phones, phone)
	return nil
}

// RemovePhone drops the first phone equal to the given one.
func (c *Contact) RemovePhone(phone PhoneNumber) error {
	for i, p := range c.Phones {
		if p.Equal(phone) {
			c.Phones = append(c.Phones[:i], c.Phones[i+1:]...)
			return nil
		}
	}
	return ErrPhoneNotFound
}

// PhonesString renders phones as "Mobile: 123; Work: 456".
func (c *Contact) PhonesString() string {
	parts := make([]string, 0, len(c.Phones))
	for _, p := range c.Phones {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, "; ")
}

func (c *Contact) String() string {
	return c.FullName + " (" + c.PhonesString() + ")"
}

// Clone returns a deep copy so callers never share the phones slice with storage.
func (c *Contact) Clone() *Contact {
	if c == nil {
		return nil
	}
	out := *c
	out.Phones = make([]PhoneNumber, len(c.Phones))
	copy(out.Phones, c.Phones)
	return &out
}
