// Command forms-api is the public HTTP function for form submissions and
// donation checkout. One function, routed by path: /contact, /volunteer,
// /csr, /donation, /donation/checkout.
package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

	"github.com/sikhaidindia/backend/internal/backend"
	"github.com/sikhaidindia/backend/internal/config"
	"github.com/sikhaidindia/backend/internal/forms"
	"github.com/sikhaidindia/backend/internal/models"
	"github.com/sikhaidindia/backend/internal/payment"
)

var (
	service *forms.Service
	once    sync.Once
	initErr error
)

func init() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	functions.HTTP("HandleForms", handleForms)
}

func main() {}

// setup loads configuration and wires the service once per instance. The
// backend handle itself stays behind the guard, so a transient Firestore
// failure here is retried on the next request rather than pinned.
func setup() {
	cfg, err := config.Load()
	if err != nil {
		initErr = err
		return
	}
	guard := backend.NewGuard(cfg)
	service = forms.New(guard, payment.New(cfg))
}

func handleForms(w http.ResponseWriter, r *http.Request) {
	once.Do(setup)
	if initErr != nil {
		slog.Error("Critical: forms service initialization failed", "error", initErr)
		http.Error(w, "Internal Server Error: failed to initialize service", http.StatusInternalServerError)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	switch strings.TrimSuffix(r.URL.Path, "/") {
	case "/contact":
		handleSubmit(w, r, func(c models.ContactSubmission) (string, error) {
			return service.SubmitContact(r.Context(), c)
		})
	case "/volunteer":
		handleSubmit(w, r, func(v models.VolunteerSubmission) (string, error) {
			return service.SubmitVolunteer(r.Context(), v)
		})
	case "/csr":
		handleSubmit(w, r, func(c models.CSRSubmission) (string, error) {
			return service.SubmitCSR(r.Context(), c)
		})
	case "/donation":
		handleSubmit(w, r, func(d models.Donation) (string, error) {
			return service.RecordDonation(r.Context(), d)
		})
	case "/donation/checkout":
		handleCheckout(w, r)
	default:
		http.Error(w, "Not Found", http.StatusNotFound)
	}
}

// handleSubmit decodes one form payload, runs the submit function, and
// writes {"id": ...} on success.
func handleSubmit[T any](w http.ResponseWriter, r *http.Request, submit func(T) (string, error)) {
	var payload T
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		slog.Warn("Could not decode request body", "path", r.URL.Path, "error", err)
		http.Error(w, "Bad Request: could not parse JSON", http.StatusBadRequest)
		return
	}
	id, err := submit(payload)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, map[string]string{"id": id})
}

func handleCheckout(w http.ResponseWriter, r *http.Request) {
	var d models.Donation
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		slog.Warn("Could not decode request body", "path", r.URL.Path, "error", err)
		http.Error(w, "Bad Request: could not parse JSON", http.StatusBadRequest)
		return
	}
	opts, err := service.CheckoutOptions(d)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, opts)
}

// writeError maps validation failures to 400 with the human-readable
// message; everything else is an opaque 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, forms.ErrValidation) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	slog.Error("Request processing failed", "path", r.URL.Path, "error", err)
	http.Error(w, "Internal Server Error: processing failed", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to write response", "path", r.URL.Path, "error", err)
	}
}
