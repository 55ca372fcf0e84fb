package main

import (
	"context"

	"github.com/google/uuid"

	"phonebook-service/internal/adapters/primary/http/dto"
	"phonebook-service/internal/client"
	"phonebook-service/internal/core/domain"
	"phonebook-service/internal/core/ports/output"
	"phonebook-service/internal/core/services"
)

// phonebook is what the commands need, served either locally or by the HTTP client.
type phonebook interface {
	All(ctx context.Context) ([]*domain.Contact, error)
	List(ctx context.Context, filter ports.ListFilter) ([]*domain.Contact, int, error)
	Search(ctx context.Context, query string) ([]*domain.Contact, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Contact, error)
	GetByName(ctx context.Context, name string) (*domain.Contact, error)
	Create(ctx context.Context, fullName string, phones []domain.PhoneNumber) (*domain.Contact, error)
	Update(ctx context.Context, id uuid.UUID, fullName string, phones []domain.PhoneNumber) (*domain.Contact, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddPhone(ctx context.Context, id uuid.UUID, phone domain.PhoneNumber) (*domain.Contact, error)
	RemovePhone(ctx context.Context, id uuid.UUID, phone domain.PhoneNumber) (*domain.Contact, error)
	PhoneTypes(ctx context.Context) ([]dto.PhoneTypeResponse, error)
}

var (
	_ phonebook = (*client.Client)(nil)
	_ phonebook = localBook{}
)

type localBook struct {
	*services.PhonebookService
}

func newLocalBook(repo ports.ContactRepository) localBook {
	return localBook{PhonebookService: services.NewPhonebookService(repo)}
}

func (localBook) PhoneTypes(context.Context) ([]dto.PhoneTypeResponse, error) {
	return dto.ToPhoneTypeResponses(domain.PhoneTypes()), nil
}

// resolveContact accepts either a contact ID or its full name.
func resolveContact(ctx context.Context, ref string) (*domain.Contact, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return book.Get(ctx, id)
	}
	return book.GetByName(ctx, ref)
}
