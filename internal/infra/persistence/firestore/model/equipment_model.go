package model

import "upkeep/internal/domain/entity"

// EquipmentDoc mirrors the fields this system reads from an equipment
// document.
type EquipmentDoc struct {
	Name string `firestore:"name"`
}

// ToEntity converts the document into a domain Equipment.
func (d *EquipmentDoc) ToEntity(id, userID string) *entity.Equipment {
	return &entity.Equipment{
		ID:     id,
		UserID: userID,
		Name:   d.Name,
	}
}
