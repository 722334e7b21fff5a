package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/contacts-server/internal/model"
)

func TestContactRepository_CreateGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewContactRepository(model.Contact{ID: 7, FirstName: "Seed", LastName: "One"})

	in := model.Contact{
		FirstName:   "Ann",
		LastName:    "Lee",
		Email:       "a@x.com",
		Categories:  []string{"Work"},
		Attachments: []model.Attachment{},
	}

	created, err := repo.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, int64(8), created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)

	ignore := cmpopts.IgnoreFields(model.Contact{}, "ID", "CreatedAt", "UpdatedAt")
	if diff := cmp.Diff(in, got, ignore); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestContactRepository_CreateOnEmptyStartsAtOne(t *testing.T) {
	repo := NewContactRepository()
	c, err := repo.Create(context.Background(), model.Contact{FirstName: "A", LastName: "B"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.ID)
}

func TestContactRepository_UpdatePreservesIdentity(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := NewContactRepository(model.Contact{ID: 1, FirstName: "Ann", LastName: "Lee", Company: "Acme", CreatedAt: created, UpdatedAt: created})

	updated, err := repo.Update(ctx, 1, model.Contact{ID: 99, FirstName: "Anna", LastName: "Lee"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.ID)
	assert.Equal(t, created, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created))
	assert.Empty(t, updated.Company, "update is a full replace")

	_, err = repo.Update(ctx, 42, model.Contact{})
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestContactRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewContactRepository(
		model.Contact{ID: 1, FirstName: "Ann", LastName: "Lee"},
		model.Contact{ID: 2, FirstName: "Bob", LastName: "Zed"},
	)

	deleted, err := repo.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Ann", deleted.FirstName)

	_, err = repo.GetByID(ctx, 1)
	var nf *model.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "contact", nf.Entity)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = repo.Delete(ctx, 1)
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestContactRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewContactRepository(model.Contact{ID: 1, FirstName: "Ann", LastName: "Lee", Categories: []string{"Work"}})

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	all[0].Categories[0] = "Mutated"
	all[0].FirstName = "Mutated"

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.FirstName)
	assert.Equal(t, []string{"Work"}, got.Categories)
}

func TestContactRepository_ConcurrentCreatesGetUniqueIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewContactRepository()

	const n = 50
	var wg sync.WaitGroup
	ids := make(chan int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := repo.Create(ctx, model.Contact{FirstName: "A", LastName: "B"})
			if err == nil {
				ids <- c.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id])
		seen[id] = true
	}
	assert.Len(t, seen, n)
}
