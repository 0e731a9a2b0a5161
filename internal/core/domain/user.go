package domain

import (
	"strings"
	"time"
	"unicode"
)

const (
	RoleAdmin    = "admin"
	RoleLearner  = "learner"
	RoleEmployee = "employee"
)

// User models a registered account. PasswordHash never serializes outward.
type User struct {
	ID           string         `json:"id"`
	Username     string         `json:"username"`
	Email        string         `json:"email"`
	PasswordHash string         `json:"-"`
	FirstName    string         `json:"firstName"`
	LastName     string         `json:"lastName"`
	Role         string         `json:"role"`
	Preferences  map[string]any `json:"preferences,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// ValidRole reports whether role is one of the recognised account roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleLearner, RoleEmployee:
		return true
	}
	return false
}

// NormalizeEmail canonicalises an email address for storage and lookup.
// Email uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// TitleCase uppercases the first letter of each whitespace-delimited word
// and lowercases the rest. Applied to first/last names on signup.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
