// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer. All access is read-only; the document store
// is owned by the host platform.
package repository

import (
	"context"
	"errors"

	"upkeep/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository lists and fetches user records from the document store.
type UserRepository interface {
	// ListUsers retrieves every user record, one page of the store at a time
	// behind the iterator, surfaced to callers as a single slice.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// FindByID retrieves a single user by their document key.
	// Returns ErrUserNotFound when no such record exists.
	FindByID(ctx context.Context, id string) (*entity.User, error)
}
