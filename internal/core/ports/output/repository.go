package ports

import (
	"context"

	"github.com/google/uuid"

	"phonebook-service/internal/core/domain"
)

type ListFilter struct {
	Search string
	SortBy string
	Order  string
	Limit  int
	Offset int
}

const (
	SortByName      = "name"
	SortByCreatedAt = "created_at"
)

// ContactRepository stores contacts. List returns them in insertion order.
type ContactRepository interface {
	Create(ctx context.Context, contact *domain.Contact) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error)
	GetByName(ctx context.Context, name string) (*domain.Contact, error)
	Update(ctx context.Context, contact *domain.Contact) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*domain.Contact, error)
	Count(ctx context.Context) (int, error)
}
