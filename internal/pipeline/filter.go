// Package pipeline derives the visible contact list and the views built on it.
// Every function here is pure and leaves its input untouched.
package pipeline

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/dtroode/contacts-server/internal/model"
)

// Filter applies the free-text query and the category selection, then sorts by
// full name. An empty query or an empty selection skips that step.
func Filter(contacts []model.Contact, query string, selectedCategories []string) []model.Contact {
	out := make([]model.Contact, 0, len(contacts))

	q := strings.ToLower(strings.TrimSpace(query))
	digits := digitsOnly(q)

	for _, c := range contacts {
		if q != "" && !matchesQuery(c, q, digits) {
			continue
		}
		if len(selectedCategories) > 0 && !hasAnyCategory(c, selectedCategories) {
			continue
		}
		out = append(out, c)
	}

	SortByName(out)

	return out
}

// SortByName sorts contacts in place by lower-cased full name using a
// locale-aware collator.
func SortByName(contacts []model.Contact) {
	// collate.Collator is not safe for concurrent use.
	col := collate.New(language.English)
	slices.SortStableFunc(contacts, func(a, b model.Contact) int {
		return col.CompareString(strings.ToLower(a.FullName()), strings.ToLower(b.FullName()))
	})
}

// Matches reports whether a single contact passes the query step of Filter.
func Matches(c model.Contact, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return matchesQuery(c, q, digitsOnly(q))
}

func matchesQuery(c model.Contact, q, qDigits string) bool {
	fields := [...]string{c.FirstName, c.LastName, c.Email, c.Company, c.JobTitle, c.Notes}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}

	// A query without digits must not match every phone.
	if qDigits != "" && strings.Contains(digitsOnly(c.Phone), qDigits) {
		return true
	}

	for _, cat := range c.Categories {
		if strings.Contains(strings.ToLower(cat), q) {
			return true
		}
	}

	return false
}

func hasAnyCategory(c model.Contact, selected []string) bool {
	for _, cat := range c.Categories {
		if slices.Contains(selected, cat) {
			return true
		}
	}
	return false
}

func digitsOnly(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
