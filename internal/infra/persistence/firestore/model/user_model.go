// Package model holds the Firestore-specific document structs and their
// mappings to domain entities.
package model

import "upkeep/internal/domain/entity"

// UserDoc mirrors the fields this system reads from a user document.
// Client apps own the full document; unknown fields are ignored.
type UserDoc struct {
	FCMTokens []string `firestore:"fcmTokens"`
}

// ToEntity converts the document into a domain User.
func (d *UserDoc) ToEntity(id string) *entity.User {
	return &entity.User{
		ID:        id,
		FCMTokens: d.FCMTokens,
	}
}
