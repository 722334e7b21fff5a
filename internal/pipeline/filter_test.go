package pipeline

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/contacts-server/internal/model"
)

func scenarioContacts() []model.Contact {
	return []model.Contact{
		{ID: 2, FirstName: "Bob", LastName: "Zed", Email: "b@x.com", Categories: []string{"Family"}},
		{ID: 1, FirstName: "Ann", LastName: "Lee", Email: "a@x.com", Categories: []string{"Work"}},
	}
}

func names(cs []model.Contact) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.FullName())
	}
	return out
}

func TestFilter_Scenario(t *testing.T) {
	contacts := scenarioContacts()

	assert.Equal(t, []string{"Ann Lee"}, names(Filter(contacts, "a", nil)))
	assert.Equal(t, []string{"Bob Zed"}, names(Filter(contacts, "", []string{"Family"})))
	assert.Equal(t, []string{"Ann Lee", "Bob Zed"}, names(Filter(contacts, "  ", []string{})))
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	contacts := scenarioContacts()
	before := append([]model.Contact(nil), contacts...)

	_ = Filter(contacts, "", nil)

	if diff := cmp.Diff(before, contacts); diff != "" {
		t.Fatalf("input changed (-before +after):\n%s", diff)
	}
}

func TestFilter_Fields(t *testing.T) {
	contacts := []model.Contact{
		{FirstName: "Carla", LastName: "Diaz", Company: "Acme Corp"},
		{FirstName: "Dan", LastName: "Evans", JobTitle: "Staff Engineer"},
		{FirstName: "Eve", LastName: "Fox", Notes: "Met at GopherCon"},
		{FirstName: "Finn", LastName: "Gray", Phone: "+1 (555) 010-9999"},
		{FirstName: "Gus", LastName: "Hale", Categories: []string{"Book Club"}},
	}

	tests := []struct {
		query string
		want  []string
	}{
		{query: "acme", want: []string{"Carla Diaz"}},
		{query: "ENGINEER", want: []string{"Dan Evans"}},
		{query: "gopher", want: []string{"Eve Fox"}},
		{query: "555-010", want: []string{"Finn Gray"}},
		{query: "(555) 0109", want: []string{"Finn Gray"}},
		{query: "club", want: []string{"Gus Hale"}},
		{query: "nobody", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, names(Filter(contacts, tt.query, nil)))
		})
	}
}

func TestFilter_QueryResultsContainQuery(t *testing.T) {
	contacts := []model.Contact{
		{FirstName: "Ann", LastName: "Lee", Email: "ann@corp.io", Phone: "555 123 4567"},
		{FirstName: "Ben", LastName: "Moss", Company: "Initech"},
		{FirstName: "Cleo", LastName: "Nash", Categories: []string{"Work"}},
	}

	for _, q := range []string{"e", "n", "or", "12", "WORK"} {
		got := Filter(contacts, q, nil)
		lq := strings.ToLower(q)
		for _, c := range got {
			hay := strings.ToLower(strings.Join(append([]string{c.FirstName, c.LastName, c.Email, c.Company, c.JobTitle, c.Notes}, c.Categories...), "|"))
			assert.True(t, strings.Contains(hay, lq) || strings.Contains(digitsOnly(c.Phone), digitsOnly(lq)), "query %q, contact %q", q, c.FullName())
		}
	}
}

func TestFilter_CategoriesAreOR(t *testing.T) {
	contacts := []model.Contact{
		{FirstName: "A", LastName: "One", Categories: []string{"Work"}},
		{FirstName: "B", LastName: "Two", Categories: []string{"Family", "Friends"}},
		{FirstName: "C", LastName: "Three"},
	}

	got := Filter(contacts, "", []string{"Work", "Friends"})
	require.Len(t, got, 2)
	assert.Equal(t, []string{"A One", "B Two"}, names(got))

	assert.Empty(t, Filter(contacts, "", []string{"Nope"}))
	assert.Len(t, Filter(contacts, "", nil), 3)
}

func TestFilter_SortIsCaseInsensitive(t *testing.T) {
	contacts := []model.Contact{
		{FirstName: "zoe", LastName: "Adams"},
		{FirstName: "Émile", LastName: "Zola"},
		{FirstName: "Adam", LastName: "smith"},
		{FirstName: "adam", LastName: "Jones"},
	}

	got := names(Filter(contacts, "", nil))
	assert.Equal(t, []string{"adam Jones", "Adam smith", "Émile Zola", "zoe Adams"}, got)
}

func TestFilter_Empty(t *testing.T) {
	assert.Empty(t, Filter(nil, "x", []string{"Work"}))
	assert.NotNil(t, Filter(nil, "", nil))
}

func TestMatches(t *testing.T) {
	c := model.Contact{FirstName: "Ann", LastName: "Lee", Phone: "555-0100"}
	assert.True(t, Matches(c, ""))
	assert.True(t, Matches(c, "lee"))
	assert.True(t, Matches(c, "0100"))
	assert.False(t, Matches(c, "zzz"))
}
