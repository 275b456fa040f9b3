package repository

import (
	"context"

	"upkeep/internal/domain/entity"
)

// MaintenanceRepository lists the maintenance records of a piece of equipment.
type MaintenanceRepository interface {
	// ListByEquipment retrieves all maintenance records under the given
	// equipment of the given user.
	ListByEquipment(ctx context.Context, userID, equipmentID string) ([]*entity.MaintenanceRecord, error)
}
