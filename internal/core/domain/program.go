package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Program is a named care program. Names are unique across the store.
type Program struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewProgram validates input and returns an unsaved Program.
func NewProgram(name string) (*Program, error) {
	name = strings.TrimSpace(name)

	var v validator
	v.check(name != "", "name", "is required")
	v.check(utf8.RuneCountInString(name) <= MaxNameLength, "name", "must be at most 100 characters")
	v.check(storable(name), "name", "contains invalid characters")
	if err := v.err(); err != nil {
		return nil, err
	}

	return &Program{Name: name}, nil
}
