package firebase

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/batuhansemiz/portfolio-backend/config"
)

// Clients bundles the Firebase handles the rest of the application depends on.
// They are created once at startup and passed down by parameter.
type Clients struct {
	Auth      *auth.Client
	Firestore *firestore.Client
}

// Initialize sets up the Firebase Admin SDK from the configured credential
// (inline JSON content first, then a key file path) and returns the Auth and
// Firestore clients.
func Initialize(ctx context.Context, cfg *config.FirebaseConfig) (*Clients, error) {
	var opt option.ClientOption
	switch {
	case cfg.CredentialsJSON != "":
		opt = option.WithCredentialsJSON([]byte(cfg.CredentialsJSON))
	case cfg.CredentialsPath != "":
		opt = option.WithCredentialsFile(cfg.CredentialsPath)
	default:
		return nil, fmt.Errorf("FIREBASE_SERVICE_ACCOUNT_JSON or FIREBASE_CREDENTIALS_PATH is required")
	}

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Auth client: %w", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firestore client: %w", err)
	}

	return &Clients{Auth: authClient, Firestore: fsClient}, nil
}

// Close releases the Firestore connection. Safe on a nil receiver.
func (c *Clients) Close() {
	if c != nil && c.Firestore != nil {
		_ = c.Firestore.Close()
	}
}
