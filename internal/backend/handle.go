package backend

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"

	"github.com/sikhaidindia/backend/internal/config"
)

// Handle bundles the live sub-clients of the Firebase backend. It is never
// partially populated: either construction succeeded and all three clients
// are present, or the guard holds no handle at all. Read-only after Ready.
type Handle struct {
	Firestore *firestore.Client
	Auth      *auth.Client
	Bucket    *storage.BucketHandle
}

// Close releases the underlying connections. Only the Firestore client
// holds closable resources; the storage bucket handle is stateless.
func (h *Handle) Close() error {
	if h == nil || h.Firestore == nil {
		return nil
	}
	return h.Firestore.Close()
}

// BuildFirebase constructs the production handle from one Firebase app.
// Partially created clients are torn down on any failure so the guard never
// exposes a half-built handle.
func BuildFirebase(ctx context.Context, cfg config.Config) (*Handle, error) {
	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     cfg.ProjectID,
		StorageBucket: cfg.StorageBucket,
	})
	if err != nil {
		return nil, fmt.Errorf("create firebase app: %w", err)
	}

	fs, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("create firestore client: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		_ = fs.Close()
		return nil, fmt.Errorf("create auth client: %w", err)
	}

	storageClient, err := app.Storage(ctx)
	if err != nil {
		_ = fs.Close()
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	bucket, err := storageClient.DefaultBucket()
	if err != nil {
		_ = fs.Close()
		return nil, fmt.Errorf("resolve storage bucket: %w", err)
	}

	return &Handle{Firestore: fs, Auth: authClient, Bucket: bucket}, nil
}
