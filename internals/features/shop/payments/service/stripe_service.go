package service

import (
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// InitStripe sets the API key for all subsequent gateway calls.
func InitStripe(secretKey string) {
	stripe.Key = secretKey
}

// CreatePaymentIntent registers the charge with the gateway. The order and
// payment ids ride along as metadata so the webhook can reconcile the event
// even when the intent id was not persisted in time.
func CreatePaymentIntent(amount int64, currency, orderID, paymentID, receiptEmail string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if receiptEmail != "" {
		params.ReceiptEmail = stripe.String(receiptEmail)
	}
	params.AddMetadata("order_id", orderID)
	params.AddMetadata("payment_id", paymentID)

	return paymentintent.New(params)
}
