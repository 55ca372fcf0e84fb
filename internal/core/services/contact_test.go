package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"phonebook-service/internal/core/domain"
	"phonebook-service/internal/core/ports/output"
	"phonebook-service/internal/testutil"
)

func names(contacts []*domain.Contact) []string {
	out := make([]string, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, c.FullName)
	}
	return out
}

func TestPhonebookService_Create(t *testing.T) {
	repo := new(testutil.MockContactRepo)
	svc := NewPhonebookService(repo)

	stored := &domain.Contact{}
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Contact")).
		Run(func(args mock.Arguments) { *stored = *args.Get(1).(*domain.Contact) }).
		Return(nil)
	repo.On("Count", mock.Anything).Return(1, nil)
	repo.On("GetByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(stored, nil)

	contact, err := svc.Create(context.Background(), "  Иванов Иван Иванович ", []domain.PhoneNumber{
		{Number: " +79319222322 ", Type: domain.PhoneTypeMobile},
	})
	require.NoError(t, err)
	assert.Equal(t, "Иванов Иван Иванович", contact.FullName)
	assert.NotEqual(t, uuid.Nil, contact.ID)
	assert.Equal(t, []domain.PhoneNumber{{Number: "+79319222322", Type: domain.PhoneTypeMobile}}, contact.Phones)
	assert.False(t, contact.CreatedAt.IsZero())
	repo.AssertExpectations(t)
}

func TestPhonebookService_Create_EmptyName(t *testing.T) {
	repo := new(testutil.MockContactRepo)
	svc := NewPhonebookService(repo)

	_, err := svc.Create(context.Background(), "   ", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidContactName)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPhonebookService_Create_BlankPhone(t *testing.T) {
	repo := new(testutil.MockContactRepo)
	svc := NewPhonebookService(repo)

	_, err := svc.Create(context.Background(), "Ivan", []domain.PhoneNumber{{Number: " ", Type: domain.PhoneTypeHome}})
	assert.ErrorIs(t, err, domain.ErrInvalidPhoneNumber)
}

func TestPhonebookService_Create_DuplicatePhone(t *testing.T) {
	repo := new(testutil.MockContactRepo)
	svc := NewPhonebookService(repo)

	phones := []domain.PhoneNumber{
		{Number: "123", Type: domain.PhoneTypeHome},
		{Number: "123", Type: domain.PhoneTypeHome},
	}
	_, err := svc.Create(context.Background(), "Ivan", phones)
	assert.ErrorIs(t, err, domain.ErrDuplicatePhone)
}

func TestPhonebookService_Create_NameConflict(t *testing.T) {
	repo := new(testutil.MockContactRepo)
	svc := NewPhonebookService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Contact")).Return(domain.ErrContactNameConflict)

	_, err := svc.Create(context.Background(), "dup", nil)
	assert.ErrorIs(t, err, domain.ErrContactNameConflict)
}

func TestPhonebookService_Get_NilID(t *testing.T) {
	repo := new(testutil.MockContactRepo)
	svc := NewPhonebookService(repo)

	_, err := svc.Get(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, domain.ErrInvalidContactID)
}

func TestPhonebookService_Get_NotFound(t *testing.T) {
	repo := new(testutil.MockContactRepo)
	svc := NewPhonebookService(repo)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrContactNotFound)

	_, err := svc.Get(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrContactNotFound)
}

func TestPhonebookService_GetByName(t *testing.T) {
	repo := new(testutil.MockContactRepo)
	svc := NewPhonebookService(repo)

	expected := testutil.NewContact("Ivan", "1")
	repo.On("GetByName", mock.Anything, "Ivan").Return(expected, nil)

	c, err := svc.GetByName(context.Background(), " Ivan ")
	assert.NoError(t, err)
	assert.Equal(t, expected.ID, c.ID)

	_, err = svc.GetByName(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidContactName)
}

func TestPhonebookService_Update(t *testing.T) {
	repo := new(testutil.MockContactRepo)
	svc := NewPhonebookService(repo)

	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	existing := testutil.NewContact("old", "1")
	existing.CreatedAt = created

	saved := &domain.Contact{}
	repo.On("GetByID", mock.Anything, existing.ID).Return(existing, nil).Once()
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Contact")).
		Run(func(args mock.Arguments) { *saved = *args.Get(1).(*domain.Contact) }).
		Return(nil)
	repo.On("GetByID", mock.Anything, existing.ID).Return(saved, nil)

	updated, err := svc.Update(context.Background(), existing.ID, "new", []domain.PhoneNumber{{Number: "2", Type: domain.PhoneTypeWork}})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.FullName)
	assert.Equal(t, existing.ID, updated.ID)
	assert.Equal(t, created, updated.CreatedAt)
	assert.Equal(t, []domain.PhoneNumber{{Number: "2", Type: domain.PhoneTypeWork}}, updated.Phones)
}

func TestPhonebookService_Update_NotFound(t *testing.T) {
	repo := new(testutil.MockContactRepo)
	svc := NewPhonebookService(repo)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrContactNotFound)

	_, err := svc.Update(context.Background(), id, "new", nil)
	assert.ErrorIs(t, err, domain.ErrContactNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestPhonebookService_Delete(t *testing.T) {
	repo := new(testutil.MockContactRepo)
	svc := NewPhonebookService(repo)

	existing := testutil.NewContact("Ivan", "1")
	repo.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
	repo.On("Delete", mock.Anything, existing.ID).Return(nil)
	repo.On("Count", mock.Anything).Return(0, nil)

	assert.NoError(t, svc.Delete(context.Background(), existing.ID))
	repo.AssertExpectations(t)
}

func TestPhonebookService_AddPhone(t *testing.T) {
	repo := new(testutil.MockContactRepo)
	svc := NewPhonebookService(repo)

	existing := testutil.NewContact("Ivan", "1")
	repo.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)

	c, err := svc.AddPhone(context.Background(), existing.ID, domain.PhoneNumber{Number: "2", Type: domain.PhoneTypeFax})
	require.NoError(t, err)
	assert.Equal(t, "Mobile: 1; Fax: 2", c.PhonesString())

	_, err = svc.AddPhone(context.Background(), existing.ID, domain.PhoneNumber{Number: "2", Type: domain.PhoneTypeFax})
	assert.ErrorIs(t, err, domain.ErrDuplicatePhone)
}

func TestPhonebookService_RemovePhone(t *testing.T) {
	repo := new(testutil.MockContactRepo)
	svc := NewPhonebookService(repo)

	existing := testutil.NewContact("Ivan", "1")
	repo.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)

	c, err := svc.RemovePhone(context.Background(), existing.ID, domain.PhoneNumber{Number: "1", Type: domain.PhoneTypeMobile})
	require.NoError(t, err)
	assert.Empty(t, c.Phones)

	_, err = svc.RemovePhone(context.Background(), existing.ID, domain.PhoneNumber{Number: "1", Type: domain.PhoneTypeMobile})
	assert.ErrorIs(t, err, domain.ErrPhoneNotFound)
}

func TestPhonebookService_SortedByName(t *testing.T) {
	repo := new(testutil.MockContactRepo)
	svc := NewPhonebookService(repo)

	repo.On("List", mock.Anything).Return([]*domain.Contact{
		testutil.NewContact("Петров Пётр Петрович", "+79319222321"),
		testutil.NewContact("Иванов Иван Иванович", "+79319222322"),
		testutil.NewContact("", "0"),
		testutil.NewContact("абрамов Антон", "+79310000000"),
	}, nil)

	sorted, err := svc.SortedByName(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"абрамов Антон", "Иванов Иван Иванович", "Петров Пётр Петрович", ""}, names(sorted))
}

func TestPhonebookService_SearchByName(t *testing.T) {
	repo := new(testutil.MockContactRepo)
	svc := NewPhonebookService(repo)

	repo.On("List", mock.Anything).Return([]*domain.Contact{
		testutil.NewContact("Петров Пётр Петрович", "+79319222321"),
		testutil.NewContact("Иванов Иван Иванович", "+79319222322"),
	}, nil)

	result, err := svc.Search(context.Background(), "иван")
	require.NoError(t, err)
	assert.Equal(t, []string{"Иванов Иван Иванович"}, names(result))
}

func TestPhonebookService_SearchNormalizesName(t *testing.T) {
	repo := new(testutil.MockContactRepo)
	svc := NewPhonebookService(repo)

	repo.On("List", mock.Anything).Return([]*domain.Contact{
		testutil.NewContact("Петров Пётр Петрович", "+79319222321"),
		testutil.NewContact("Иванов Иван Иванович", "+79319222322"),
	}, nil)

	// "е" followed by a combining diaeresis is the decomposed form of "ё".
	result, err := svc.Search(context.Background(), "ПЕ\u0308ТР")
	require.NoError(t, err)
	assert.Equal(t, []string{"Петров Пётр Петрович"}, names(result))
}

func TestPhonebookService_SearchByPhone(t *testing.T) {
	repo := new(testutil.MockContactRepo)
	svc := NewPhonebookService(repo)

	repo.On("List", mock.Anything).Return([]*domain.Contact{
		testutil.NewContact("Петров Пётр Петрович", "+7 931 922 23 21"),
		testutil.NewContact("Иванов Иван Иванович", "+7 931 922 23 22"),
	}, nil)

	result, err := svc.Search(context.Background(), "23 22")
	require.NoError(t, err)
	assert.Equal(t, []string{"Иванов Иван Иванович"}, names(result))
}

func TestPhonebookService_SearchBlankReturnsAll(t *testing.T) {
	repo := new(testutil.MockContactRepo)
	svc := NewPhonebookService(repo)

	repo.On("List", mock.Anything).Return([]*domain.Contact{
		testutil.NewContact("A", "1"),
		testutil.NewContact("B", "2"),
	}, nil)

	result, err := svc.Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestPhonebookService_List(t *testing.T) {
	repo := new(testutil.MockContactRepo)
	svc := NewPhonebookService(repo)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var contacts []*domain.Contact
	for i, n := range []string{"Charlie", "alpha", "Bravo", "delta"} {
		c := testutil.NewContact(n, "1")
		c.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		contacts = append(contacts, c)
	}
	repo.On("List", mock.Anything).Return(contacts, nil)

	page, total, err := svc.List(context.Background(), ports.ListFilter{SortBy: ports.SortByName, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Equal(t, []string{"alpha", "Bravo"}, names(page))

	page, _, err = svc.List(context.Background(), ports.ListFilter{SortBy: ports.SortByName, Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"Charlie", "delta"}, names(page))

	page, _, err = svc.List(context.Background(), ports.ListFilter{SortBy: ports.SortByCreatedAt, Order: "desc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"delta", "Bravo", "alpha", "Charlie"}, names(page))

	page, total, err = svc.List(context.Background(), ports.ListFilter{Offset: 10})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Empty(t, page)
}

func TestPhonebookService_List_LimitBounds(t *testing.T) {
	repo := new(testutil.MockContactRepo)
	svc := NewPhonebookService(repo)

	var contacts []*domain.Contact
	for i := 0; i < 150; i++ {
		contacts = append(contacts, testutil.NewContact("c", "1"))
	}
	repo.On("List", mock.Anything).Return(contacts, nil)

	page, _, err := svc.List(context.Background(), ports.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, page, defaultListLimit)

	page, _, err = svc.List(context.Background(), ports.ListFilter{Limit: 500})
	require.NoError(t, err)
	assert.Len(t, page, maxListLimit)
}
