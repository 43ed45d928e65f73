package dto

type BillingDetails struct {
	Name       string `json:"name" validate:"required,min=1,max=100"`
	Email      string `json:"email" validate:"required,email,max=255"`
	Phone      string `json:"phone" validate:"omitempty,max=30"`
	Address    string `json:"address" validate:"omitempty,max=255"`
	City       string `json:"city" validate:"omitempty,max=100"`
	PostalCode string `json:"postal_code" validate:"omitempty,max=20"`
	Country    string `json:"country" validate:"omitempty,max=60"`
}

// CreateIntentRequest starts checkout for the given cart rows. Every id must
// belong to the caller's own cart.
type CreateIntentRequest struct {
	CartIDs []string       `json:"cart_ids" validate:"required,min=1,dive,uuid"`
	Billing BillingDetails `json:"billing_details" validate:"required"`
}

type CreateIntentResponse struct {
	ClientSecret string `json:"client_secret"`
	OrderID      string `json:"order_id"`
	PaymentID    string `json:"payment_id"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}
