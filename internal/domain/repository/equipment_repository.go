package repository

import (
	"context"

	"upkeep/internal/domain/entity"
)

// EquipmentRepository lists the equipment owned by a user.
type EquipmentRepository interface {
	// ListByUser retrieves all equipment records under the given user.
	ListByUser(ctx context.Context, userID string) ([]*entity.Equipment, error)
}
