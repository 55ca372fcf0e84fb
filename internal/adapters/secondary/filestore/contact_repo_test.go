package filestore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phonebook-service/internal/core/domain"
)

func newContact(name, number string) *domain.Contact {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Contact{
		ID:        uuid.New(),
		FullName:  name,
		Phones:    []domain.PhoneNumber{domain.NewPhoneNumber(number, domain.PhoneTypeMobile)},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func newRepo(t *testing.T) (*ContactRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "data", "phonebook.json")
	repo, err := NewContactRepository(path)
	require.NoError(t, err)
	return repo, path
}

func TestNewContactRepository_MissingFileStartsEmpty(t *testing.T) {
	repo, path := newRepo(t)

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "loading must not create the file")
}

func TestContactRepository_CreatePersistsAndReloads(t *testing.T) {
	ctx := context.Background()
	repo, path := newRepo(t)

	ivan := newContact("Иванов Иван Иванович", "+79319222322")
	petr := newContact("Петров Пётр Петрович", "+79319222321")
	require.NoError(t, repo.Create(ctx, ivan))
	require.NoError(t, repo.Create(ctx, petr))

	reopened, err := NewContactRepository(path)
	require.NoError(t, err)

	got, err := reopened.List(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff([]*domain.Contact{ivan, petr}, got); diff != "" {
		t.Errorf("reloaded contacts mismatch (-want +got):\n%s", diff)
	}
}

func TestContactRepository_CreateNameConflict(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo(t)

	require.NoError(t, repo.Create(ctx, newContact("Ivan", "1")))
	err := repo.Create(ctx, newContact("Ivan", "2"))
	assert.ErrorIs(t, err, domain.ErrContactNameConflict)

	n, _ := repo.Count(ctx)
	assert.Equal(t, 1, n)
}

func TestContactRepository_GetReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo(t)

	c := newContact("Ivan", "1")
	require.NoError(t, repo.Create(ctx, c))

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	got.Phones[0].Number = "changed"
	got.FullName = "changed"

	again, err := repo.GetByName(ctx, "Ivan")
	require.NoError(t, err)
	assert.Equal(t, "1", again.Phones[0].Number)
}

func TestContactRepository_GetNotFound(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo(t)

	_, err := repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrContactNotFound)
	_, err = repo.GetByName(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrContactNotFound)
}

func TestContactRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo, path := newRepo(t)

	a := newContact("A", "1")
	b := newContact("B", "2")
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	renamed := a.Clone()
	renamed.FullName = "B"
	assert.ErrorIs(t, repo.Update(ctx, renamed), domain.ErrContactNameConflict)

	renamed.FullName = "A2"
	require.NoError(t, repo.Update(ctx, renamed))

	missing := newContact("C", "3")
	assert.ErrorIs(t, repo.Update(ctx, missing), domain.ErrContactNotFound)

	reopened, err := NewContactRepository(path)
	require.NoError(t, err)
	list, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "A2", list[0].FullName, "update keeps insertion position")
	assert.Equal(t, "B", list[1].FullName)
}

func TestContactRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo, path := newRepo(t)

	a := newContact("A", "1")
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Delete(ctx, a.ID))
	assert.ErrorIs(t, repo.Delete(ctx, a.ID), domain.ErrContactNotFound)

	reopened, err := NewContactRepository(path)
	require.NoError(t, err)
	n, _ := reopened.Count(ctx)
	assert.Equal(t, 0, n)
}

func TestNewContactRepository_CorruptSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phonebook.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewContactRepository(path)
	assert.ErrorIs(t, err, domain.ErrCorruptSnapshot)
}

func TestNewContactRepository_FutureVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phonebook.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":99,"contacts":[]}`), 0o644))

	_, err := NewContactRepository(path)
	assert.ErrorIs(t, err, domain.ErrCorruptSnapshot)
}

func TestNewContactRepository_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phonebook.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	repo, err := NewContactRepository(path)
	require.NoError(t, err)
	n, _ := repo.Count(context.Background())
	assert.Equal(t, 0, n)
}

func TestContactRepository_FailedSaveKeepsState(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "phonebook.json")
	repo, err := NewContactRepository(path)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, newContact("A", "1")))

	// Replace the parent directory with a file so the next save cannot succeed.
	blocked := filepath.Join(dir, "blocked")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0o644))
	repo.path = filepath.Join(blocked, "phonebook.json")

	err = repo.Create(ctx, newContact("B", "2"))
	assert.Error(t, err)

	n, _ := repo.Count(ctx)
	assert.Equal(t, 1, n)
}

func TestContactRepository_Reload(t *testing.T) {
	ctx := context.Background()
	repo, path := newRepo(t)
	require.NoError(t, repo.Create(ctx, newContact("A", "1")))

	other, err := NewContactRepository(path)
	require.NoError(t, err)
	require.NoError(t, other.Create(ctx, newContact("B", "2")))

	require.NoError(t, repo.Reload(ctx))
	n, _ := repo.Count(ctx)
	assert.Equal(t, 2, n)
}

func TestContactRepository_CancelledContext(t *testing.T) {
	repo, _ := newRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteSnapshot_LoadableByRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export", "phonebook.json")
	ivan := newContact("Иванов Иван Иванович", "+79319222322")

	require.NoError(t, WriteSnapshot(path, []*domain.Contact{ivan}))

	repo, err := NewContactRepository(path)
	require.NoError(t, err)
	got, err := repo.GetByName(context.Background(), ivan.FullName)
	require.NoError(t, err)
	if diff := cmp.Diff(ivan, got); diff != "" {
		t.Errorf("exported contact mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeSnapshot_NilContacts(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, EncodeSnapshot(&buf, nil))
	assert.JSONEq(t, `{"version":1,"contacts":[]}`, buf.String())
}
