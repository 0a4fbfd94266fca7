// Package forms is the public form-submission surface: it validates and
// persists contact, volunteer and CSR leads plus completed donations.
// Validation failures carry human-readable messages distinct from backend
// failures so the site can show the right feedback.
package forms

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sikhaidindia/backend/internal/backend"
	"github.com/sikhaidindia/backend/internal/models"
	"github.com/sikhaidindia/backend/internal/payment"
	"github.com/sikhaidindia/backend/internal/repository"
	"github.com/sikhaidindia/backend/internal/store"
)

// ErrValidation tags user-correctable input problems; handlers map it to a
// 400 with the wrapped message.
var ErrValidation = errors.New("invalid submission")

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// Service processes form submissions. The backend handle is acquired
// through the guard on every call, so a failed initialization stays
// retryable across requests.
type Service struct {
	guard    *backend.Guard
	payments *payment.Service
	opts     []repository.Option
}

// New builds the form service over the shared guard.
func New(guard *backend.Guard, payments *payment.Service, opts ...repository.Option) *Service {
	return &Service{guard: guard, payments: payments, opts: opts}
}

func (s *Service) repos(ctx context.Context) (*repository.Repos, error) {
	h, err := s.guard.EnsureReady(ctx)
	if err != nil {
		return nil, err
	}
	return repository.New(store.NewFirestoreStore(h.Firestore), s.opts...), nil
}

// SubmitContact validates and stores one contact form entry.
func (s *Service) SubmitContact(ctx context.Context, c models.ContactSubmission) (string, error) {
	if strings.TrimSpace(c.Name) == "" {
		return "", invalid("please enter your name")
	}
	if strings.TrimSpace(c.Email) == "" {
		return "", invalid("please enter your email address")
	}
	if strings.TrimSpace(c.Message) == "" {
		return "", invalid("please enter a message")
	}
	repos, err := s.repos(ctx)
	if err != nil {
		return "", err
	}
	id, err := repos.Contacts.Create(ctx, c)
	if err != nil {
		return "", fmt.Errorf("submit contact form: %w", err)
	}
	slog.Info("Contact submission stored", "id", id)
	return id, nil
}

// SubmitVolunteer validates and stores one volunteer application.
func (s *Service) SubmitVolunteer(ctx context.Context, v models.VolunteerSubmission) (string, error) {
	if strings.TrimSpace(v.FullName) == "" {
		return "", invalid("please enter your full name")
	}
	if strings.TrimSpace(v.Email) == "" {
		return "", invalid("please enter your email address")
	}
	if strings.TrimSpace(v.Opportunity) == "" {
		return "", invalid("please choose a volunteering opportunity")
	}
	repos, err := s.repos(ctx)
	if err != nil {
		return "", err
	}
	id, err := repos.Volunteers.Create(ctx, v)
	if err != nil {
		return "", fmt.Errorf("submit volunteer form: %w", err)
	}
	slog.Info("Volunteer submission stored", "id", id)
	return id, nil
}

// SubmitCSR validates and stores one corporate partnership enquiry.
func (s *Service) SubmitCSR(ctx context.Context, c models.CSRSubmission) (string, error) {
	if strings.TrimSpace(c.CompanyName) == "" {
		return "", invalid("please enter your company name")
	}
	if strings.TrimSpace(c.ContactPerson) == "" {
		return "", invalid("please enter a contact person")
	}
	if strings.TrimSpace(c.Email) == "" {
		return "", invalid("please enter your email address")
	}
	repos, err := s.repos(ctx)
	if err != nil {
		return "", err
	}
	id, err := repos.CSR.Create(ctx, c)
	if err != nil {
		return "", fmt.Errorf("submit csr form: %w", err)
	}
	slog.Info("CSR submission stored", "id", id)
	return id, nil
}

// RecordDonation validates and stores one completed donation.
func (s *Service) RecordDonation(ctx context.Context, d models.Donation) (string, error) {
	if err := payment.ValidateDonation(d); err != nil {
		return "", fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}
	if strings.TrimSpace(d.PaymentID) == "" {
		return "", invalid("missing payment reference")
	}
	repos, err := s.repos(ctx)
	if err != nil {
		return "", err
	}
	id, err := repos.Donations.Create(ctx, d)
	if err != nil {
		return "", fmt.Errorf("record donation: %w", err)
	}
	slog.Info("Donation recorded", "id", id, "paymentId", d.PaymentID, "amountInr", d.AmountINR)
	return id, nil
}

// CheckoutOptions builds the widget configuration for a prospective
// donation after validating the donor input.
func (s *Service) CheckoutOptions(d models.Donation) (payment.CheckoutOptions, error) {
	if err := payment.ValidateDonation(d); err != nil {
		return payment.CheckoutOptions{}, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}
	if _, err := s.payments.CheckSetup(); err != nil {
		return payment.CheckoutOptions{}, err
	}
	return s.payments.CheckoutOptions(d), nil
}
