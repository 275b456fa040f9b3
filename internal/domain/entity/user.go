// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is an account in the external document store. Users are created and
// deleted outside this system; here they are read-only.
type User struct {
	ID        string   // Opaque document key assigned by the identity platform.
	FCMTokens []string // Device push tokens registered by the user's clients. Order irrelevant, duplicates preserved.
}

// HasTokens reports whether the user has at least one registered device token.
func (u *User) HasTokens() bool {
	return u != nil && len(u.FCMTokens) > 0
}
