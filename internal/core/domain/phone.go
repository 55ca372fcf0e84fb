package domain

import (
	"strings"
)

type PhoneType string

const (
	PhoneTypeMobile PhoneType = "MOBILE"
	PhoneTypeHome   PhoneType = "HOME"
	PhoneTypeWork   PhoneType = "WORK"
	PhoneTypeFax    PhoneType = "FAX"
)

var phoneTypes = []PhoneType{PhoneTypeMobile, PhoneTypeHome, PhoneTypeWork, PhoneTypeFax}

var phoneTypeDisplay = map[PhoneType]string{
	PhoneTypeMobile: "Mobile",
	PhoneTypeHome:   "Home",
	PhoneTypeWork:   "Work",
	PhoneTypeFax:    "Fax",
}

// Display names written by the desktop client before it was localised.
var legacyPhoneTypeNames = map[string]PhoneType{
	"мобильный": PhoneTypeMobile,
	"домашний":  PhoneTypeHome,
	"рабочий":   PhoneTypeWork,
	"факс":      PhoneTypeFax,
}

// PhoneTypes returns every phone type in declaration order.
func PhoneTypes() []PhoneType {
	out := make([]PhoneType, len(phoneTypes))
	copy(out, phoneTypes)
	return out
}

// DisplayName returns the human readable label of the type.
func (t PhoneType) DisplayName() string {
	if name, ok := phoneTypeDisplay[t]; ok {
		return name
	}
	return string(t)
}

func (t PhoneType) IsValid() bool {
	_, ok := phoneTypeDisplay[t]
	return ok
}

// ParsePhoneType resolves a code, display name or legacy label to a PhoneType.
// Empty or unrecognised input falls back to PhoneTypeMobile.
func ParsePhoneType(text string) PhoneType {
	if t, ok := LookupPhoneType(text); ok {
		return t
	}
	return PhoneTypeMobile
}

// LookupPhoneType is ParsePhoneType without the fallback.
func LookupPhoneType(text string) (PhoneType, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", false
	}
	for _, t := range phoneTypes {
		if strings.EqualFold(string(t), trimmed) || strings.EqualFold(t.DisplayName(), trimmed) {
			return t, true
		}
	}
	t, ok := legacyPhoneTypeNames[strings.ToLower(trimmed)]
	return t, ok
}

type PhoneNumber struct {
	Number string    `json:"number"`
	Type   PhoneType `json:"type"`
}

func NewPhoneNumber(number string, t PhoneType) PhoneNumber {
	if !t.IsValid() {
		t = PhoneTypeMobile
	}
	return PhoneNumber{Number: strings.TrimSpace(number), Type: t}
}

// Equal reports whether both the number and its type match.
func (p PhoneNumber) Equal(other PhoneNumber) bool {
	return p.Number == other.Number && p.Type == other.Type
}

func (p PhoneNumber) String() string {
	return p.Type.DisplayName() + ": " + p.Number
}
