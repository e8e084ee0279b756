package repository_test

import (
	"context"
	"testing"

	"github.com/lumen-crm/assistant-api/internal/domain"
	"github.com/lumen-crm/assistant-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteRepository_GetByCustomerID(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewNoteRepository(db)
	customer := createTestCustomer(t, db, "Acme Corp")

	older := &domain.Note{CustomerID: customer.ID, Body: "first call", NoteDate: day(2026, 5, 1)}
	newer := &domain.Note{CustomerID: customer.ID, Body: "follow-up", NoteDate: day(2026, 5, 10), Confidence: domain.ConfidenceGreen}
	require.NoError(t, repo.Create(context.Background(), older))
	require.NoError(t, repo.Create(context.Background(), newer))

	notes, err := repo.GetByCustomerID(context.Background(), customer.ID)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "follow-up", notes[0].Body)
	assert.Equal(t, "first call", notes[1].Body)
}

func TestNoteRepository_GetByCustomerAndDate(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewNoteRepository(db)
	customer := createTestCustomer(t, db, "Acme Corp")
	other := createTestCustomer(t, db, "Globex")

	target := &domain.Note{CustomerID: customer.ID, Body: "demo day", NoteDate: day(2026, 5, 3)}
	require.NoError(t, repo.Create(context.Background(), target))
	require.NoError(t, repo.Create(context.Background(), &domain.Note{
		CustomerID: customer.ID, Body: "different day", NoteDate: day(2026, 5, 4),
	}))
	require.NoError(t, repo.Create(context.Background(), &domain.Note{
		CustomerID: other.ID, Body: "other customer same day", NoteDate: day(2026, 5, 3),
	}))

	t.Run("single match", func(t *testing.T) {
		notes, err := repo.GetByCustomerAndDate(context.Background(), customer.ID, day(2026, 5, 3))
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, "demo day", notes[0].Body)
	})

	t.Run("no match", func(t *testing.T) {
		notes, err := repo.GetByCustomerAndDate(context.Background(), customer.ID, day(2026, 6, 1))
		require.NoError(t, err)
		assert.Empty(t, notes)
	})

	t.Run("two notes on one day", func(t *testing.T) {
		require.NoError(t, repo.Create(context.Background(), &domain.Note{
			CustomerID: customer.ID, Body: "second meeting", NoteDate: day(2026, 5, 3),
		}))

		notes, err := repo.GetByCustomerAndDate(context.Background(), customer.ID, day(2026, 5, 3))
		require.NoError(t, err)
		assert.Len(t, notes, 2)
	})
}

func TestNoteRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewNoteRepository(db)
	customer := createTestCustomer(t, db, "Acme Corp")

	note := &domain.Note{CustomerID: customer.ID, Body: "initial", NoteDate: day(2026, 5, 3), Confidence: domain.ConfidenceYellow}
	require.NoError(t, repo.Create(context.Background(), note))

	note.Confidence = domain.ConfidenceRed
	note.NextSteps = "escalate to management"
	require.NoError(t, repo.Update(context.Background(), note))

	found, err := repo.GetByID(context.Background(), note.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ConfidenceRed, found.Confidence)
	assert.Equal(t, "escalate to management", found.NextSteps)
}

func TestNoteRepository_CountByCustomerID(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewNoteRepository(db)
	customer := createTestCustomer(t, db, "Acme Corp")

	count, err := repo.CountByCustomerID(context.Background(), customer.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, repo.Create(context.Background(), &domain.Note{
		CustomerID: customer.ID, Body: "a note", NoteDate: day(2026, 5, 3),
	}))

	count, err = repo.CountByCustomerID(context.Background(), customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
