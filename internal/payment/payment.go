// Package payment wraps the Razorpay integration: donation validation,
// checkout options for the client-side widget, and server-side order
// creation. Checkout UI and signature verification stay with Razorpay.
package payment

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	razorpay "github.com/razorpay/razorpay-go"

	"github.com/sikhaidindia/backend/internal/config"
	"github.com/sikhaidindia/backend/internal/models"
)

const (
	// Donation bounds in whole rupees.
	MinDonationINR = 10
	MaxDonationINR = 500_000

	currency   = "INR"
	themeColor = "#1a237e"
	logoPath   = "/sikhaidLogo.png"

	defaultDescription = "Punjab Floods Relief Aid 2025"
)

var phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// ValidateAmount bounds a donation to ₹10–₹5,00,000.
func ValidateAmount(amountINR int64) error {
	if amountINR < MinDonationINR {
		return fmt.Errorf("minimum donation amount is ₹10")
	}
	if amountINR > MaxDonationINR {
		return fmt.Errorf("maximum donation amount is ₹5,00,000")
	}
	return nil
}

// ValidatePhone accepts a 10-digit Indian mobile number.
func ValidatePhone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return fmt.Errorf("please enter a valid 10-digit mobile number")
	}
	return nil
}

// ValidateName requires at least two non-space characters.
func ValidateName(name string) error {
	if len(strings.TrimSpace(name)) < 2 {
		return fmt.Errorf("please enter a valid name")
	}
	return nil
}

// ValidateDonation runs all donor-facing checks at once.
func ValidateDonation(d models.Donation) error {
	if err := ValidateName(d.Name); err != nil {
		return err
	}
	if err := ValidatePhone(d.Phone); err != nil {
		return err
	}
	return ValidateAmount(d.AmountINR)
}

// Service holds the Razorpay client and account configuration.
type Service struct {
	cfg    config.Config
	client *razorpay.Client
}

// New builds the payment service. The client is usable only when key
// credentials are configured; CheckSetup reports the exact state.
func New(cfg config.Config) *Service {
	return &Service{
		cfg:    cfg,
		client: razorpay.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret),
	}
}

// IsTestMode reports whether the configured key is a Razorpay test key.
// An unconfigured key counts as test mode.
func (s *Service) IsTestMode() bool {
	return s.cfg.RazorpayKeyID == "" || strings.HasPrefix(s.cfg.RazorpayKeyID, "rzp_test_")
}

// CheckSetup validates the Razorpay configuration. The returned message is
// shown to admins; the error, when non-nil, blocks checkout.
func (s *Service) CheckSetup() (string, error) {
	if s.cfg.RazorpayKeyID == "" {
		return "", fmt.Errorf("razorpay key id not configured; update the environment with actual Razorpay credentials")
	}
	if s.cfg.IsProduction() && s.IsTestMode() {
		return "", fmt.Errorf("test keys configured in production environment; use live keys for production")
	}
	if s.IsTestMode() {
		return "Test mode active - transactions will not be charged", nil
	}
	return "Live mode active", nil
}

// CheckoutOptions is the JSON configuration handed to the client-side
// Razorpay widget. Amount is in paise.
type CheckoutOptions struct {
	Key         string            `json:"key"`
	Amount      int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Image       string            `json:"image"`
	Prefill     CheckoutPrefill   `json:"prefill"`
	Notes       map[string]string `json:"notes"`
	Theme       CheckoutTheme     `json:"theme"`
}

// CheckoutPrefill pre-populates the widget's contact fields.
type CheckoutPrefill struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
}

// CheckoutTheme brands the widget.
type CheckoutTheme struct {
	Color string `json:"color"`
}

// CheckoutOptions builds the widget configuration for one donation.
func (s *Service) CheckoutOptions(d models.Donation) CheckoutOptions {
	description := d.Campaign
	if description == "" {
		description = defaultDescription
	}
	return CheckoutOptions{
		Key:         s.cfg.RazorpayKeyID,
		Amount:      d.AmountINR * 100,
		Currency:    currency,
		Name:        s.cfg.OrganizationName,
		Description: description,
		Image:       logoPath,
		Prefill: CheckoutPrefill{
			Name:    d.Name,
			Contact: d.Phone,
			Email:   d.Email,
		},
		Notes: map[string]string{
			"campaign": description,
			"website":  s.cfg.SiteURL,
		},
		Theme: CheckoutTheme{Color: themeColor},
	}
}

// CreateOrder registers a server-side order for the donation and returns
// the Razorpay order id to attach to the checkout.
func (s *Service) CreateOrder(d models.Donation) (string, error) {
	if _, err := s.CheckSetup(); err != nil {
		return "", err
	}
	if err := ValidateDonation(d); err != nil {
		return "", err
	}
	body, err := s.client.Order.Create(map[string]interface{}{
		"amount":   d.AmountINR * 100,
		"currency": currency,
		"notes": map[string]interface{}{
			"donor":    d.Name,
			"campaign": d.Campaign,
			"website":  s.cfg.SiteURL,
		},
	}, nil)
	if err != nil {
		slog.Error("Razorpay order creation failed", "error", err)
		return "", fmt.Errorf("create razorpay order: %w", err)
	}
	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return "", fmt.Errorf("razorpay order response missing id")
	}
	slog.Info("Razorpay order created", "orderId", orderID, "amountPaise", d.AmountINR*100)
	return orderID, nil
}
