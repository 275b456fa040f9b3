package service

import "context"

// TokenVerifier validates a client-supplied identity token and resolves the
// authenticated principal's opaque user ID. The identity platform is trusted;
// no independent verification happens downstream.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (userID string, err error)
}
