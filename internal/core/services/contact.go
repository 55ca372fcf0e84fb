package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"phonebook-service/internal/core/domain"
	"phonebook-service/internal/core/ports/output"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type PhonebookService struct {
	repo ports.ContactRepository
	now  func() time.Time
}

func NewPhonebookService(repo ports.ContactRepository) *PhonebookService {
	return &PhonebookService{repo: repo, now: time.Now}
}

func (s *PhonebookService) Create(ctx context.Context, fullName string, phones []domain.PhoneNumber) (*domain.Contact, error) {
	contact, err := buildContact(fullName, phones)
	if err != nil {
		return nil, err
	}

	now := s.now()
	contact.ID = uuid.New()
	contact.CreatedAt = now
	contact.UpdatedAt = now

	err = s.repo.Create(ctx, contact)
	observe("create", err)
	if err != nil {
		return nil, err
	}
	log.WithField("contact", contact.FullName).Info("contact added")
	s.RefreshMetrics(ctx)

	return s.repo.GetByID(ctx, contact.ID)
}

func (s *PhonebookService) Get(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	if id == uuid.Nil {
		return nil, domain.ErrInvalidContactID
	}
	return s.repo.GetByID(ctx, id)
}

func (s *PhonebookService) GetByName(ctx context.Context, name string) (*domain.Contact, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidContactName
	}
	return s.repo.GetByName(ctx, name)
}

// All returns every contact in insertion order.
func (s *PhonebookService) All(ctx context.Context) ([]*domain.Contact, error) {
	return s.repo.List(ctx)
}

// Update replaces the name and phones of an existing contact.
func (s *PhonebookService) Update(ctx context.Context, id uuid.UUID, fullName string, phones []domain.PhoneNumber) (*domain.Contact, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			log.WithField("id", id).Warn("attempt to update a contact that is not in the phonebook")
		}
		return nil, err
	}

	updated, err := buildContact(fullName, phones)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = s.now()

	err = s.repo.Update(ctx, updated)
	observe("update", err)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"from": existing.FullName, "to": updated.FullName}).Info("contact updated")

	return s.repo.GetByID(ctx, id)
}

func (s *PhonebookService) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	err = s.repo.Delete(ctx, id)
	observe("delete", err)
	if err != nil {
		return err
	}
	log.WithField("contact", existing.FullName).Info("contact removed")
	s.RefreshMetrics(ctx)
	return nil
}

func (s *PhonebookService) AddPhone(ctx context.Context, id uuid.UUID, phone domain.PhoneNumber) (*domain.Contact, error) {
	contact, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := contact.AddPhone(domain.NewPhoneNumber(phone.Number, phone.Type)); err != nil {
		return nil, err
	}
	contact.UpdatedAt = s.now()

	err = s.repo.Update(ctx, contact)
	observe("add_phone", err)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *PhonebookService) RemovePhone(ctx context.Context, id uuid.UUID, phone domain.PhoneNumber) (*domain.Contact, error) {
	contact, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := contact.RemovePhone(domain.NewPhoneNumber(phone.Number, phone.Type)); err != nil {
		return nil, err
	}
	contact.UpdatedAt = s.now()

	err = s.repo.Update(ctx, contact)
	observe("remove_phone", err)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Search matches the query against names and phone numbers. A blank query returns everything.
func (s *PhonebookService) Search(ctx context.Context, query string) ([]*domain.Contact, error) {
	contacts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filterContacts(contacts, query), nil
}

// SortedByName returns all contacts ordered by name, ignoring case.
func (s *PhonebookService) SortedByName(ctx context.Context) ([]*domain.Contact, error) {
	contacts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sortByName(contacts, false)
	return contacts, nil
}

func (s *PhonebookService) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Contact, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	contacts, err := s.repo.List(ctx)
	if err != nil {
		return nil, 0, err
	}

	matched := filterContacts(contacts, filter.Search)
	desc := strings.EqualFold(filter.Order, "desc")
	switch filter.SortBy {
	case ports.SortByName:
		sortByName(matched, desc)
	case ports.SortByCreatedAt:
		sort.SliceStable(matched, func(i, j int) bool {
			if desc {
				return matched[i].CreatedAt.After(matched[j].CreatedAt)
			}
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		})
	}

	total := len(matched)
	if filter.Offset >= total {
		return []*domain.Contact{}, total, nil
	}
	end := filter.Offset + filter.Limit
	if end > total {
		end = total
	}
	return matched[filter.Offset:end], total, nil
}

// RefreshMetrics syncs the contact gauge with the repository.
func (s *PhonebookService) RefreshMetrics(ctx context.Context) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		log.WithError(err).Debug("count contacts for metrics")
		return
	}
	contactsGauge.Set(float64(n))
}

func buildContact(fullName string, phones []domain.PhoneNumber) (*domain.Contact, error) {
	contact := &domain.Contact{
		FullName: strings.TrimSpace(fullName),
		Phones:   make([]domain.PhoneNumber, 0, len(phones)),
	}
	if contact.FullName == "" {
		return nil, domain.ErrInvalidContactName
	}
	for _, p := range phones {
		if err := contact.AddPhone(domain.NewPhoneNumber(p.Number, p.Type)); err != nil {
			return nil, err
		}
	}
	if err := contact.Validate(); err != nil {
		return nil, err
	}
	return contact, nil
}

func filterContacts(contacts []*domain.Contact, query string) []*domain.Contact {
	if strings.TrimSpace(query) == "" {
		return contacts
	}

	nameQuery := foldName(query)
	phoneQuery := foldPhone(query)

	out := make([]*domain.Contact, 0, len(contacts))
	for _, c := range contacts {
		if strings.Contains(foldName(c.FullName), nameQuery) {
			out = append(out, c)
			continue
		}
		for _, p := range c.Phones {
			if strings.Contains(foldPhone(p.Number), phoneQuery) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

func foldName(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

func foldPhone(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", ""))
}

// sortByName orders contacts by collated, case-insensitive name. Empty names sort last.
func sortByName(contacts []*domain.Contact, desc bool) {
	// A collator is not safe for concurrent use, so each sort gets its own.
	col := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(contacts, func(i, j int) bool {
		a, b := contacts[i].FullName, contacts[j].FullName
		switch {
		case a == "" && b == "":
			return false
		case a == "":
			return false
		case b == "":
			return true
		}
		cmp := col.CompareString(a, b)
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
}
