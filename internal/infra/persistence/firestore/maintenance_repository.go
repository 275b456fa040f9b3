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

// maintenanceRepository implements the repository.MaintenanceRepository interface.
type maintenanceRepository struct {
	client *firestore.Client
}

// NewMaintenanceRepository is the constructor for maintenanceRepository.
func NewMaintenanceRepository(client *firestore.Client) repository.MaintenanceRepository {
	return &maintenanceRepository{
		client: client,
	}
}

// ListByEquipment retrieves all maintenance records under the given equipment.
func (repo *maintenanceRepository) ListByEquipment(ctx context.Context, userID, equipmentID string) ([]*entity.MaintenanceRecord, error) {
	iter := repo.client.Collection(usersCollection).
		Doc(userID).
		Collection(equipmentCollection).
		Doc(equipmentID).
		Collection(maintenanceCollection).
		Documents(ctx)
	defer iter.Stop()

	var records []*entity.MaintenanceRecord
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to iterate maintenance of equipment %s", equipmentID)
		}

		var maintenanceDoc model.MaintenanceDoc
		if err := doc.DataTo(&maintenanceDoc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode maintenance record %s", doc.Ref.ID)
		}

		records = append(records, maintenanceDoc.ToEntity(doc.Ref.ID))
	}

	return records, nil
}
