package model

import (
	"time"

	"upkeep/internal/domain/entity"
)

// MaintenanceDoc mirrors the fields this system reads from a maintenance
// document. Firestore timestamps arrive UTC-normalized.
type MaintenanceDoc struct {
	Type       string    `firestore:"type"`
	LastDate   time.Time `firestore:"last_date"`
	HoursLimit float64   `firestore:"hours_limit"`
}

// ToEntity converts the document into a domain MaintenanceRecord.
func (d *MaintenanceDoc) ToEntity(id string) *entity.MaintenanceRecord {
	return &entity.MaintenanceRecord{
		ID:             id,
		Type:           d.Type,
		LastServicedAt: d.LastDate,
		HoursLimit:     d.HoursLimit,
	}
}
