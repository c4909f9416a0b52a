package auth

import (
	"context"
	"errors"
	"fmt"

	"firebase.google.com/go/v4/auth"
)

// ErrInvalidToken is returned for any bearer token the identity provider
// rejects (malformed, expired, revoked).
var ErrInvalidToken = errors.New("invalid or expired token")

// Identity is the decoded caller of a verified bearer token.
type Identity struct {
	UID   string
	Email string
}

// TokenVerifier abstracts the external identity provider so the middleware
// can be exercised with a fake in tests and the provider stays swappable.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

type firebaseVerifier struct {
	client *auth.Client
}

// NewFirebaseVerifier wraps a Firebase Auth client as a TokenVerifier.
func NewFirebaseVerifier(client *auth.Client) TokenVerifier {
	return &firebaseVerifier{client: client}
}

func (v *firebaseVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	id := &Identity{UID: decoded.UID}
	if email, ok := decoded.Claims["email"].(string); ok {
		id.Email = email
	}
	return id, nil
}
