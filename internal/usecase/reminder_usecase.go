// Package usecase defines the application-layer interfaces.
package usecase

import "context"

// ScanReport summarizes one due-date scan run. The scheduler only logs it;
// nothing is persisted between runs, so a rerun on the same day re-notifies
// still-due records (accepted at-least-once semantics).
type ScanReport struct {
	UsersScanned  int // Users with tokens whose subtree was traversed.
	UsersSkipped  int // Users without any device token, skipped entirely.
	UsersFailed   int // Users whose traversal failed; the scan continued.
	RemindersSent int // Users for whom a combined reminder send was attempted.
}

// ReminderUsecase drives the maintenance reminder operations.
type ReminderUsecase interface {
	// ScanDueMaintenance walks users, their equipment and maintenance
	// records, and sends one combined reminder per user with items due today.
	ScanDueMaintenance(ctx context.Context) (*ScanReport, error)

	// SendTestNotification sends a fixed test push to the given user's
	// devices and returns the acknowledgement message. Fails with typed
	// domain errors the delivery layer maps to the caller.
	SendTestNotification(ctx context.Context, userID string) (string, error)
}
