package domain

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxNameLength = 100
	// MaxAge is the largest value the age column holds.
	MaxAge = math.MaxInt32
)

// Client is a person receiving care. Identity fields never change after creation.
type Client struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"created_at"`
}

// ClientView is a client together with its resolved enrollments and outcomes.
type ClientView struct {
	Client
	// Programs holds enrolled program names ordered by enrollment creation.
	Programs []string
	Outcomes []OutcomeRecord
}

// NewClient validates input and returns an unsaved Client.
func NewClient(name string, age int) (*Client, error) {
	name = strings.TrimSpace(name)

	var v validator
	v.check(name != "", "name", "is required")
	v.check(utf8.RuneCountInString(name) <= MaxNameLength, "name", "must be at most 100 characters")
	v.check(storable(name), "name", "contains invalid characters")
	v.check(age >= 0, "age", "must be a non-negative integer")
	v.check(age <= MaxAge, "age", "is out of range")
	if err := v.err(); err != nil {
		return nil, err
	}

	return &Client{Name: name, Age: age}, nil
}
