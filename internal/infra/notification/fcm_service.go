// Package notification implements push delivery on Firebase Cloud Messaging.
package notification

import (
	"context"

	"upkeep/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
)

// FCM limits one multicast request to 500 tokens.
const multicastTokenLimit = 500

type fcmService struct {
	client *messaging.Client
}

// NewFCMService creates the FCM-backed notification service.
func NewFCMService(client *messaging.Client) service.NotificationService {
	return &fcmService{client: client}
}

// SendMulticast sends one push notification to multiple device tokens in a
// single multicast call and returns the aggregate success/failure counts.
// Per-token results are not inspected; token pruning belongs to the clients
// that registered them.
func (s *fcmService) SendMulticast(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, err error) {
	if len(tokens) == 0 {
		return 0, 0, nil
	}

	if len(tokens) > multicastTokenLimit {
		return 0, 0, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), multicastTokenLimit)
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to send multicast notification")
	}

	return response.SuccessCount, response.FailureCount, nil
}
