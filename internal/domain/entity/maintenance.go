package entity

import "time"

// MaintenanceRecord tracks one recurring maintenance requirement of a piece
// of equipment. The next due date is a pure function of LastServicedAt,
// HoursLimit and the configured usage rate; records never depend on each
// other's state.
type MaintenanceRecord struct {
	ID             string    // Document key within the equipment's maintenance collection.
	Type           string    // Category label, e.g. "Oil change".
	LastServicedAt time.Time // Instant of the last completed service, stored UTC-normalized.
	HoursLimit     float64   // Usage hours before the next service is due. Positive.
}
