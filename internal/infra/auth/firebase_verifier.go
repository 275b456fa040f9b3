// Package auth verifies caller identity against the Firebase identity
// platform.
package auth

import (
	"context"

	"upkeep/internal/domain/service"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

type firebaseVerifier struct {
	client *firebaseauth.Client
}

// NewFirebaseVerifier creates a TokenVerifier backed by Firebase ID tokens.
func NewFirebaseVerifier(client *firebaseauth.Client) service.TokenVerifier {
	return &firebaseVerifier{client: client}
}

// VerifyIDToken validates the ID token and returns the principal's UID.
func (v *firebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", errors.Wrap(err, "failed to verify ID token")
	}

	return token.UID, nil
}
