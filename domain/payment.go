package domain

import "errors"

// Premium plan pricing. Midtrans settles in IDR; the USD price is what the
// subscription record stores.
const (
	PremiumPriceUSD = 4.99
	PremiumPriceIDR = 79000
)

var (
	MessageSuccessCreatePayment = "payment created successfully"
	MessageSuccessWebhook       = "notification processed"

	MessageFailedCreatePayment = "failed to create payment"
	MessageFailedWebhook       = "failed to process notification"

	ErrPaymentFailed       = errors.New("payment failed")
	ErrTransactionNotFound = errors.New("payment transaction not found")
)

type (
	CreatePaymentRequest struct {
		Email    string `json:"email" validate:"required,email"`
		PlanType string `json:"plan_type" validate:"omitempty"`
	}

	CreatePaymentResponse struct {
		OrderID    string `json:"order_id"`
		InvoiceURL string `json:"invoice_url"`
	}

	// MidtransNotification is the subset of the webhook payload the service
	// needs to settle a transaction.
	MidtransNotification struct {
		OrderID           string `json:"order_id"`
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status"`
		PaymentType       string `json:"payment_type"`
		SignatureKey      string `json:"signature_key"`
		StatusCode        string `json:"status_code"`
		GrossAmount       string `json:"gross_amount"`
	}
)
