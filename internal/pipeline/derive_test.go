package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/contacts-server/internal/model"
)

func TestColorsByName(t *testing.T) {
	colors := ColorsByName([]model.Category{
		{Name: "Work", Color: "#111111"},
		{Name: "Family", Color: "#222222"},
		{Name: "Work", Color: "#333333"},
	})

	assert.Equal(t, map[string]string{"Work": "#333333", "Family": "#222222"}, colors)
	assert.Empty(t, ColorsByName(nil))
}

func TestFavorites(t *testing.T) {
	contacts := []model.Contact{
		{ID: 1, IsFavorite: true},
		{ID: 2},
		{ID: 3, IsFavorite: true},
	}

	got := Favorites(contacts)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}

func TestSummarize(t *testing.T) {
	contacts := []model.Contact{
		{IsFavorite: true, Phone: "5551234567", Email: "a@x.com", Categories: []string{"Work", "Friends"}},
		{Phone: "5551234567", Categories: []string{"Work"}},
		{Email: "c@x.com", Categories: []string{"Family"}},
	}

	s := Summarize(contacts)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.Favorites)
	assert.Equal(t, 2, s.WithPhone)
	assert.Equal(t, 2, s.WithEmail)
	assert.Equal(t, 33, s.FavoritesPercent)
	assert.Equal(t, 67, s.WithPhonePercent)
	assert.Equal(t, []model.CategoryCount{
		{Name: "Work", Count: 2},
		{Name: "Family", Count: 1},
		{Name: "Friends", Count: 1},
	}, s.CategoryCounts)
	require.NotNil(t, s.TopCategory)
	assert.Equal(t, "Work", s.TopCategory.Name)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.Total)
	assert.Zero(t, s.FavoritesPercent)
	assert.Nil(t, s.TopCategory)
}

func TestInitials(t *testing.T) {
	tests := map[string]string{
		"":                 "?",
		"ann lee":          "AL",
		"Mary Jane Watson": "MJ",
		"Cher":             "C",
		" double  space":   "DS",
	}
	for in, want := range tests {
		assert.Equal(t, want, Initials(in), in)
	}
}
