package pipeline

import (
	"cmp"
	"math"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dtroode/contacts-server/internal/model"
)

// ColorsByName maps category names to colors. Later duplicates win.
func ColorsByName(categories []model.Category) map[string]string {
	colors := make(map[string]string, len(categories))
	for _, c := range categories {
		colors[c.Name] = c.Color
	}
	return colors
}

// Favorites returns contacts flagged as favorite, preserving order.
func Favorites(contacts []model.Contact) []model.Contact {
	out := make([]model.Contact, 0)
	for _, c := range contacts {
		if c.IsFavorite {
			out = append(out, c)
		}
	}
	return out
}

// Summarize computes counts over the whole collection.
func Summarize(contacts []model.Contact) model.Stats {
	var s model.Stats
	s.Total = len(contacts)

	counts := make(map[string]int)
	for _, c := range contacts {
		if c.IsFavorite {
			s.Favorites++
		}
		if c.Phone != "" {
			s.WithPhone++
		}
		if c.Email != "" {
			s.WithEmail++
		}
		for _, cat := range c.Categories {
			counts[cat]++
		}
	}

	s.FavoritesPercent = percent(s.Favorites, s.Total)
	s.WithPhonePercent = percent(s.WithPhone, s.Total)
	s.WithEmailPercent = percent(s.WithEmail, s.Total)

	s.CategoryCounts = make([]model.CategoryCount, 0, len(counts))
	for name, n := range counts {
		s.CategoryCounts = append(s.CategoryCounts, model.CategoryCount{Name: name, Count: n})
	}
	slices.SortFunc(s.CategoryCounts, func(a, b model.CategoryCount) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return cmp.Compare(a.Name, b.Name)
	})
	if len(s.CategoryCounts) > 0 {
		top := s.CategoryCounts[0]
		s.TopCategory = &top
	}

	return s
}

// Initials returns up to two upper-cased initials of a display name, or "?".
func Initials(name string) string {
	var b strings.Builder
	n := 0
	for _, word := range strings.Split(name, " ") {
		if n == 2 {
			break
		}
		r, size := utf8.DecodeRuneInString(word)
		if size == 0 {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
		n++
	}
	if n == 0 {
		return "?"
	}
	return b.String()
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
