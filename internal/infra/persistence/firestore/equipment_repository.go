package firestore

import (
	"context"

	"upkeep/internal/domain/entity"
	"upkeep/internal/domain/repository"
	"upkeep/internal/infra/persistence/firestore/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

// equipmentRepository implements the repository.EquipmentRepository interface.
type equipmentRepository struct {
	client *firestore.Client
}

// NewEquipmentRepository is the constructor for equipmentRepository.
func NewEquipmentRepository(client *firestore.Client) repository.EquipmentRepository {
	return &equipmentRepository{
		client: client,
	}
}

// ListByUser retrieves all equipment records under the given user.
func (repo *equipmentRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Equipment, error) {
	iter := repo.client.Collection(usersCollection).
		Doc(userID).
		Collection(equipmentCollection).
		Documents(ctx)
	defer iter.Stop()

	var equipment []*entity.Equipment
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to iterate equipment of user %s", userID)
		}

		var equipmentDoc model.EquipmentDoc
		if err := doc.DataTo(&equipmentDoc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode equipment %s", doc.Ref.ID)
		}

		equipment = append(equipment, equipmentDoc.ToEntity(doc.Ref.ID, userID))
	}

	return equipment, nil
}
