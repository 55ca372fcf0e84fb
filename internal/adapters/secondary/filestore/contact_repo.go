// Package filestore keeps the phonebook in memory and persists every change
// as a JSON snapshot file.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/renameio/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"phonebook-service/internal/core/domain"
	"phonebook-service/internal/core/ports/output"
)

const snapshotVersion = 1

type snapshot struct {
	Version  int               `json:"version"`
	Contacts []*domain.Contact `json:"contacts"`
}

type ContactRepository struct {
	path string

	mu       sync.RWMutex
	contacts []*domain.Contact
}

var _ ports.ContactRepository = (*ContactRepository)(nil)

// NewContactRepository loads the snapshot at path. A missing file starts an empty book.
func NewContactRepository(path string) (*ContactRepository, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve snapshot path: %w", err)
	}

	r := &ContactRepository{path: abs}
	contacts, err := r.load()
	if err != nil {
		return nil, err
	}
	r.contacts = contacts

	log.WithFields(log.Fields{"path": abs, "contacts": len(contacts)}).Info("phonebook snapshot loaded")
	return r, nil
}

func (r *ContactRepository) Path() string {
	return r.path
}

// Reload replaces the in-memory book with the snapshot currently on disk.
func (r *ContactRepository) Reload(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	contacts, err := r.load()
	if err != nil {
		return err
	}
	r.contacts = contacts
	log.WithField("contacts", len(contacts)).Info("phonebook snapshot reloaded")
	return nil
}

func (r *ContactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.contacts {
		if c.ID == contact.ID || c.FullName == contact.FullName {
			return domain.ErrContactNameConflict
		}
	}

	next := make([]*domain.Contact, 0, len(r.contacts)+1)
	next = append(next, r.contacts...)
	next = append(next, contact.Clone())
	return r.commit(next)
}

func (r *ContactRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.contacts[i].Clone(), nil
	}
	return nil, domain.ErrContactNotFound
}

func (r *ContactRepository) GetByName(ctx context.Context, name string) (*domain.Contact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.contacts {
		if c.FullName == name {
			return c.Clone(), nil
		}
	}
	return nil, domain.ErrContactNotFound
}

func (r *ContactRepository) Update(ctx context.Context, contact *domain.Contact) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(contact.ID)
	if i < 0 {
		return domain.ErrContactNotFound
	}
	for j, c := range r.contacts {
		if j != i && c.FullName == contact.FullName {
			return domain.ErrContactNameConflict
		}
	}

	next := make([]*domain.Contact, len(r.contacts))
	copy(next, r.contacts)
	next[i] = contact.Clone()
	return r.commit(next)
}

func (r *ContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.ErrContactNotFound
	}

	next := make([]*domain.Contact, 0, len(r.contacts)-1)
	next = append(next, r.contacts[:i]...)
	next = append(next, r.contacts[i+1:]...)
	return r.commit(next)
}

func (r *ContactRepository) List(ctx context.Context) ([]*domain.Contact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Contact, 0, len(r.contacts))
	for _, c := range r.contacts {
		out = append(out, c.Clone())
	}
	return out, nil
}

func (r *ContactRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.contacts), nil
}

func (r *ContactRepository) indexOf(id uuid.UUID) int {
	for i, c := range r.contacts {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// commit persists next and only then swaps it in. Caller holds the write lock.
func (r *ContactRepository) commit(next []*domain.Contact) error {
	if err := r.save(next); err != nil {
		log.WithError(err).WithField("path", r.path).Error("save phonebook snapshot failed")
		return err
	}
	r.contacts = next
	log.WithField("contacts", len(next)).Debug("phonebook snapshot saved")
	return nil
}

func (r *ContactRepository) save(contacts []*domain.Contact) error {
	return WriteSnapshot(r.path, contacts)
}

// WriteSnapshot atomically replaces the file at path with a snapshot of contacts,
// creating parent directories as needed.
func WriteSnapshot(path string, contacts []*domain.Contact) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}

	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending snapshot file: %w", err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			log.WithError(err).Debug("cleanup pending snapshot file")
		}
	}()

	if err := EncodeSnapshot(pendingFile, contacts); err != nil {
		return err
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace snapshot: %w", err)
	}
	return nil
}

// EncodeSnapshot writes contacts to w in the snapshot format.
func EncodeSnapshot(w io.Writer, contacts []*domain.Contact) error {
	if contacts == nil {
		contacts = []*domain.Contact{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snapshot{Version: snapshotVersion, Contacts: contacts}); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

func (r *ContactRepository) load() ([]*domain.Contact, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.WithField("path", r.path).Warn("phonebook snapshot not found, starting with an empty book")
			return []*domain.Contact{}, nil
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	if len(data) == 0 {
		log.WithField("path", r.path).Warn("phonebook snapshot is empty, starting with an empty book")
		return []*domain.Contact{}, nil
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrCorruptSnapshot, r.path, err)
	}
	if snap.Version > snapshotVersion {
		return nil, fmt.Errorf("%w: %s: unsupported version %d", domain.ErrCorruptSnapshot, r.path, snap.Version)
	}

	contacts := make([]*domain.Contact, 0, len(snap.Contacts))
	for _, c := range snap.Contacts {
		if c == nil {
			continue
		}
		if c.Phones == nil {
			c.Phones = []domain.PhoneNumber{}
		}
		contacts = append(contacts, c)
	}
	return contacts, nil
}
