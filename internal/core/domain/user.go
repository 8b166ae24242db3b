package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxUsernameLength = 80
	// MaxPasswordBytes is the bcrypt input limit.
	MaxPasswordBytes = 72
)

// User models a staff member who can authenticate against the API.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the resolved caller reference produced by a successful
// credential check. Activity Log entries are attributed to Username.
type Identity struct {
	UserID   int64
	Username string
}

// NormalizeUsername trims surrounding whitespace.
func NormalizeUsername(username string) string {
	return strings.TrimSpace(username)
}

// ValidateCredentials checks registration input before hashing.
func ValidateCredentials(username, password string) error {
	var v validator
	v.check(username != "", "username", "is required")
	v.check(utf8.RuneCountInString(username) <= MaxUsernameLength, "username", "must be at most 80 characters")
	v.check(storable(username), "username", "contains invalid characters")
	v.check(password != "", "password", "is required")
	v.check(len(password) <= MaxPasswordBytes, "password", "must be at most 72 bytes")
	return v.err()
}
