package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"phonebook-service/internal/core/domain"
	"phonebook-service/internal/core/ports/output"
)

const uniqueViolation = "23505"

type contactRepo struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) ports.ContactRepository {
	return &contactRepo{pool: pool}
}

func (r *contactRepo) Create(ctx context.Context, contact *domain.Contact) error {
	phonesJSON, err := json.Marshal(phonesOrEmpty(contact.Phones))
	if err != nil {
		return fmt.Errorf("marshal phones: %w", err)
	}

	query := `
		INSERT INTO phonebook_contact (id, full_name, phones, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = r.pool.Exec(ctx, query,
		contact.ID, contact.FullName, phonesJSON, contact.CreatedAt, contact.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrContactNameConflict
		}
		return fmt.Errorf("create contact: %w", err)
	}
	return nil
}

func (r *contactRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	query := `
		SELECT id, full_name, phones, created_at, updated_at
		FROM phonebook_contact
		WHERE id = $1
	`
	c, err := scanContact(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrContactNotFound
		}
		return nil, fmt.Errorf("get contact by id: %w", err)
	}
	return c, nil
}

func (r *contactRepo) GetByName(ctx context.Context, name string) (*domain.Contact, error) {
	query := `
		SELECT id, full_name, phones, created_at, updated_at
		FROM phonebook_contact
		WHERE full_name = $1
	`
	c, err := scanContact(r.pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrContactNotFound
		}
		return nil, fmt.Errorf("get contact by name: %w", err)
	}
	return c, nil
}

func (r *contactRepo) Update(ctx context.Context, contact *domain.Contact) error {
	phonesJSON, err := json.Marshal(phonesOrEmpty(contact.Phones))
	if err != nil {
		return fmt.Errorf("marshal phones: %w", err)
	}

	query := `
		UPDATE phonebook_contact
		SET full_name=$1, phones=$2, updated_at=$3
		WHERE id=$4
	`
	result, err := r.pool.Exec(ctx, query, contact.FullName, phonesJSON, contact.UpdatedAt, contact.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrContactNameConflict
		}
		return fmt.Errorf("update contact: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrContactNotFound
	}
	return nil
}

func (r *contactRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM phonebook_contact WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrContactNotFound
	}
	return nil
}

// List orders by the serial seq column so results follow insertion order.
func (r *contactRepo) List(ctx context.Context) ([]*domain.Contact, error) {
	query := `
		SELECT id, full_name, phones, created_at, updated_at
		FROM phonebook_contact
		ORDER BY seq
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]*domain.Contact, 0)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

func (r *contactRepo) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM phonebook_contact`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count contacts: %w", err)
	}
	return total, nil
}

func scanContact(row pgx.Row) (*domain.Contact, error) {
	var (
		c          domain.Contact
		phonesJSON []byte
	)
	if err := row.Scan(&c.ID, &c.FullName, &phonesJSON, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.Phones = []domain.PhoneNumber{}
	if len(phonesJSON) > 0 {
		if err := json.Unmarshal(phonesJSON, &c.Phones); err != nil {
			return nil, fmt.Errorf("unmarshal phones: %w", err)
		}
	}
	return &c, nil
}

func phonesOrEmpty(phones []domain.PhoneNumber) []domain.PhoneNumber {
	if phones == nil {
		return []domain.PhoneNumber{}
	}
	return phones
}
