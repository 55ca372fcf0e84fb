package dto

import (
	"time"

	"github.com/google/uuid"

	"phonebook-service/internal/core/domain"
)

// Request fields are validated by the domain, so both the API and local
// callers get the same errors.
type PhoneDTO struct {
	Number string `json:"number"`
	Type   string `json:"type"`
}

type CreateContactRequest struct {
	FullName string     `json:"full_name"`
	Phones   []PhoneDTO `json:"phones"`
}

// UpdateContactRequest replaces the whole contact, matching the editor's save.
type UpdateContactRequest struct {
	FullName string     `json:"full_name"`
	Phones   []PhoneDTO `json:"phones"`
}

type PhoneResponse struct {
	Number      string `json:"number"`
	Type        string `json:"type"`
	TypeDisplay string `json:"type_display"`
}

type ContactResponse struct {
	ID        uuid.UUID       `json:"id"`
	FullName  string          `json:"full_name"`
	Phones    []PhoneResponse `json:"phones"`
	Summary   string          `json:"summary"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

type ListContactsResponse struct {
	Items      []ContactResponse `json:"items"`
	Total      int               `json:"total"`
	PageSize   int               `json:"page_size"`
	NextOffset int               `json:"next_offset"`
}

type PhoneTypeResponse struct {
	Code        string `json:"code"`
	DisplayName string `json:"display_name"`
}

func ToPhoneNumbers(phones []PhoneDTO) []domain.PhoneNumber {
	out := make([]domain.PhoneNumber, 0, len(phones))
	for _, p := range phones {
		out = append(out, ToPhoneNumber(p))
	}
	return out
}

func ToPhoneNumber(p PhoneDTO) domain.PhoneNumber {
	return domain.NewPhoneNumber(p.Number, domain.ParsePhoneType(p.Type))
}

func ToContactResponse(c *domain.Contact) ContactResponse {
	phones := make([]PhoneResponse, 0, len(c.Phones))
	for _, p := range c.Phones {
		phones = append(phones, PhoneResponse{
			Number:      p.Number,
			Type:        string(p.Type),
			TypeDisplay: p.Type.DisplayName(),
		})
	}
	return ContactResponse{
		ID:        c.ID,
		FullName:  c.FullName,
		Phones:    phones,
		Summary:   c.String(),
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}

func ToContactResponses(contacts []*domain.Contact) []ContactResponse {
	items := make([]ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		items = append(items, ToContactResponse(c))
	}
	return items
}

func ToPhoneTypeResponses(types []domain.PhoneType) []PhoneTypeResponse {
	out := make([]PhoneTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, PhoneTypeResponse{Code: string(t), DisplayName: t.DisplayName()})
	}
	return out
}

// FromContactResponse turns an API payload back into a domain contact.
func FromContactResponse(r ContactResponse) *domain.Contact {
	c := &domain.Contact{
		ID:       r.ID,
		FullName: r.FullName,
		Phones:   make([]domain.PhoneNumber, 0, len(r.Phones)),
	}
	for _, p := range r.Phones {
		c.Phones = append(c.Phones, domain.NewPhoneNumber(p.Number, domain.ParsePhoneType(p.Type)))
	}
	if t, err := time.Parse(time.RFC3339, r.CreatedAt); err == nil {
		c.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, r.UpdatedAt); err == nil {
		c.UpdatedAt = t
	}
	return c
}

func ToPhoneDTOs(phones []domain.PhoneNumber) []PhoneDTO {
	out := make([]PhoneDTO, 0, len(phones))
	for _, p := range phones {
		out = append(out, PhoneDTO{Number: p.Number, Type: string(p.Type)})
	}
	return out
}
