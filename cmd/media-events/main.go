// Command media-events indexes finalized storage uploads into the media
// collection, triggered by GCS object-finalized CloudEvents.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	cloudevents "github.com/cloudevents/sdk-go/v2"

	"github.com/sikhaidindia/backend/internal/backend"
	"github.com/sikhaidindia/backend/internal/config"
	"github.com/sikhaidindia/backend/internal/media"
	"github.com/sikhaidindia/backend/internal/store"
)

var (
	guard   *backend.Guard
	once    sync.Once
	initErr error
)

func init() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	functions.CloudEvent("RecordUpload", recordUpload)
}

func main() {}

func recordUpload(ctx context.Context, e cloudevents.Event) error {
	once.Do(func() {
		var cfg config.Config
		cfg, initErr = config.Load()
		if initErr != nil {
			return
		}
		guard = backend.NewGuard(cfg)
	})
	if initErr != nil {
		slog.Error("Critical error during function initialization", "error", initErr)
		return initErr
	}

	var ev media.ObjectEvent
	if err := json.Unmarshal(e.Data(), &ev); err != nil {
		slog.Error("Failed to unmarshal event data", "error", err, "data", string(e.Data()))
		return fmt.Errorf("json.Unmarshal: %w", err)
	}

	h, err := guard.EnsureReady(ctx)
	if err != nil {
		return err
	}
	return media.NewRecorder(store.NewFirestoreStore(h.Firestore)).Record(ctx, ev)
}
