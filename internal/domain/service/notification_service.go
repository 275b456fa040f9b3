// Package service defines interfaces for external collaborators.
package service

import (
	"context"
)

// NotificationService defines the interface for push notification delivery.
type NotificationService interface {
	// SendMulticast sends one push notification to multiple device tokens in
	// a single call. Returns aggregate success and failure counts; per-token
	// results are not surfaced, tokens are never pruned here.
	SendMulticast(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, err error)
}
