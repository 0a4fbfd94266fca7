package models

// Donation is one completed checkout recorded against the Razorpay payment
// id the widget returned. Amount is stored in whole rupees; the checkout
// itself runs in paise (see internal/payment).
type Donation struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
	AmountINR int64  `json:"amount"`
	PaymentID string `json:"paymentId"`
	OrderID   string `json:"orderId,omitempty"`
	Campaign  string `json:"campaign,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}
