package firestore

import (
	"context"

	"upkeep/internal/domain/entity"
	"upkeep/internal/domain/repository"
	"upkeep/internal/infra/persistence/firestore/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	client *firestore.Client
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{
		client: client,
	}
}

// ListUsers retrieves every user record in the store.
func (repo *userRepository) ListUsers(ctx context.Context) ([]*entity.User, error) {
	iter := repo.client.Collection(usersCollection).Documents(ctx)
	defer iter.Stop()

	var users []*entity.User
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate users")
		}

		var userDoc model.UserDoc
		if err := doc.DataTo(&userDoc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode user %s", doc.Ref.ID)
		}

		users = append(users, userDoc.ToEntity(doc.Ref.ID))
	}

	return users, nil
}

// FindByID retrieves a single user by their document key.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := repo.client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrapf(err, "failed to get user %s", id)
	}

	var userDoc model.UserDoc
	if err := doc.DataTo(&userDoc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode user %s", id)
	}

	return userDoc.ToEntity(doc.Ref.ID), nil
}
