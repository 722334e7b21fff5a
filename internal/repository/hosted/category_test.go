package hosted

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/contacts-server/internal/model"
)

func TestCategoryRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	repo := NewCategoryRepository(api.client(api.serve(t)))

	saved, err := repo.Create(ctx, model.Category{Name: "Work", Color: "#3B82F6", Icon: "Briefcase"})
	require.NoError(t, err)
	assert.Equal(t, model.Category{ID: 1, Name: "Work", Color: "#3B82F6", Icon: "Briefcase"}, saved)

	_, err = repo.Create(ctx, model.Category{Name: "Family", Color: "#10B981", Icon: "Home"})
	require.NoError(t, err)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Work", all[0].Name)
	assert.Equal(t, "Family", all[1].Name)

	updated, err := repo.Update(ctx, saved.ID, model.Category{Name: "Office", Color: "#3B82F6", Icon: "Briefcase"})
	require.NoError(t, err)
	assert.Equal(t, "Office", updated.Name)

	deleted, err := repo.Delete(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Office", deleted.Name)

	_, err = repo.GetByID(ctx, saved.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestCategoryRepository_EmptyWriteReply(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	api.emptyWrites = true
	repo := NewCategoryRepository(api.client(api.serve(t)))

	got, err := repo.Create(ctx, model.Category{Name: "Work"})

	var serr *model.StoreError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "record service returned no record", serr.Message)
	assert.Zero(t, got)

	_, err = repo.Update(ctx, 2, model.Category{Name: "Work"})
	assert.ErrorIs(t, err, model.ErrNotFound)
}
