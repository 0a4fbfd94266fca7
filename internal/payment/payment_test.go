package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sikhaidindia/backend/internal/config"
	"github.com/sikhaidindia/backend/internal/models"
)

func testDonation() models.Donation {
	return models.Donation{
		Name:      "Simran Kaur",
		Phone:     "9876543210",
		Email:     "simran@example.com",
		AmountINR: 500,
	}
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount(10))
	assert.NoError(t, ValidateAmount(500_000))
	assert.Error(t, ValidateAmount(9))
	assert.Error(t, ValidateAmount(0))
	assert.Error(t, ValidateAmount(500_001))
}

func TestValidatePhone(t *testing.T) {
	assert.NoError(t, ValidatePhone("9876543210"))
	assert.NoError(t, ValidatePhone("6000000000"))
	assert.Error(t, ValidatePhone("1234567890")) // must start 6-9
	assert.Error(t, ValidatePhone("98765"))
	assert.Error(t, ValidatePhone("98765432100"))
	assert.Error(t, ValidatePhone("+919876543210"))
	assert.Error(t, ValidatePhone(""))
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("Jo"))
	assert.Error(t, ValidateName("J"))
	assert.Error(t, ValidateName("   "))
}

func TestValidateDonation(t *testing.T) {
	assert.NoError(t, ValidateDonation(testDonation()))

	d := testDonation()
	d.AmountINR = 5
	assert.Error(t, ValidateDonation(d))

	d = testDonation()
	d.Phone = "123"
	assert.Error(t, ValidateDonation(d))
}

func TestIsTestMode(t *testing.T) {
	assert.True(t, New(config.Config{RazorpayKeyID: "rzp_test_abc"}).IsTestMode())
	assert.True(t, New(config.Config{}).IsTestMode())
	assert.False(t, New(config.Config{RazorpayKeyID: "rzp_live_abc"}).IsTestMode())
}

func TestCheckSetup(t *testing.T) {
	_, err := New(config.Config{}).CheckSetup()
	assert.Error(t, err)

	msg, err := New(config.Config{RazorpayKeyID: "rzp_test_abc"}).CheckSetup()
	require.NoError(t, err)
	assert.Contains(t, msg, "Test mode")

	msg, err = New(config.Config{RazorpayKeyID: "rzp_live_abc"}).CheckSetup()
	require.NoError(t, err)
	assert.Contains(t, msg, "Live mode")

	// Test keys must never reach production.
	_, err = New(config.Config{
		RazorpayKeyID: "rzp_test_abc",
		Environment:   "production",
	}).CheckSetup()
	assert.Error(t, err)
}

func TestCheckoutOptions(t *testing.T) {
	svc := New(config.Config{
		RazorpayKeyID:    "rzp_test_abc",
		OrganizationName: "Sikh Aid Charitable Trust",
		SiteURL:          "www.sikhaidindia.com",
	})

	d := testDonation()
	d.Campaign = "Langar Aid"
	opts := svc.CheckoutOptions(d)

	assert.Equal(t, "rzp_test_abc", opts.Key)
	assert.Equal(t, int64(50_000), opts.Amount) // paise
	assert.Equal(t, "INR", opts.Currency)
	assert.Equal(t, "Sikh Aid Charitable Trust", opts.Name)
	assert.Equal(t, "Langar Aid", opts.Description)
	assert.Equal(t, "Simran Kaur", opts.Prefill.Name)
	assert.Equal(t, "9876543210", opts.Prefill.Contact)
	assert.Equal(t, "Langar Aid", opts.Notes["campaign"])
	assert.Equal(t, "#1a237e", opts.Theme.Color)
}

func TestCheckoutOptionsDefaultDescription(t *testing.T) {
	opts := New(config.Config{RazorpayKeyID: "rzp_test_abc"}).CheckoutOptions(testDonation())
	assert.Equal(t, "Punjab Floods Relief Aid 2025", opts.Description)
}

func TestCreateOrderRequiresSetup(t *testing.T) {
	_, err := New(config.Config{}).CreateOrder(testDonation())
	assert.Error(t, err)
}

func TestCreateOrderValidatesDonation(t *testing.T) {
	d := testDonation()
	d.AmountINR = 1
	_, err := New(config.Config{RazorpayKeyID: "rzp_test_abc"}).CreateOrder(d)
	assert.Error(t, err)
}
