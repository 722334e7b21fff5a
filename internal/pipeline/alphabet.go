package pipeline

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dtroode/contacts-server/internal/model"
)

// AvailableLetters returns the sorted set of A-Z initials present among first names.
func AvailableLetters(contacts []model.Contact) []string {
	seen := make(map[string]struct{})
	for _, c := range contacts {
		if l, ok := initial(c.FirstName); ok {
			seen[l] = struct{}{}
		}
	}

	letters := make([]string, 0, len(seen))
	for l := range seen {
		letters = append(letters, l)
	}
	slices.Sort(letters)

	return letters
}

// FilterByLetter keeps contacts whose first-name initial equals letter.
// An empty letter returns the input unchanged.
func FilterByLetter(contacts []model.Contact, letter string) []model.Contact {
	if letter == "" {
		return contacts
	}
	letter = strings.ToUpper(letter)

	out := make([]model.Contact, 0, len(contacts))
	for _, c := range contacts {
		if firstUpper(c.FirstName) == letter {
			out = append(out, c)
		}
	}
	return out
}

// ToggleLetter returns the letter that is active after clicked is selected.
// At most one letter is active; selecting the active one clears it.
func ToggleLetter(active, clicked string) string {
	if strings.EqualFold(active, clicked) {
		return ""
	}
	return strings.ToUpper(clicked)
}

func initial(name string) (string, bool) {
	l := firstUpper(name)
	if len(l) != 1 || l[0] < 'A' || l[0] > 'Z' {
		return "", false
	}
	return l, true
}

func firstUpper(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(r))
}
