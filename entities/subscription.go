package entities

import (
	"time"

	"github.com/google/uuid"
)

// Subscription holds one row per user; lifecycle transitions are driven by
// explicit user actions plus the passive trial-expiry check at read time.
type Subscription struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID                uuid.UUID  `gorm:"uniqueIndex" json:"user_id"`
	Status                string     `json:"status"` // "trial", "active", "inactive", "cancelled"
	PlanType              string     `json:"plan_type"`
	TrialStartDate        *time.Time `json:"trial_start_date,omitempty"`
	TrialEndDate          *time.Time `json:"trial_end_date,omitempty"`
	SubscriptionStartDate *time.Time `json:"subscription_start_date,omitempty"`
	SubscriptionEndDate   *time.Time `json:"subscription_end_date,omitempty"`
	PriceUSD              float64    `json:"price_usd"`
	LastPaymentDate       *time.Time `json:"last_payment_date,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

// PaymentTransaction records one Midtrans checkout attempt for the premium
// plan; the webhook settles it and activates the subscription.
type PaymentTransaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	OrderID     string    `gorm:"uniqueIndex" json:"order_id"`
	GrossAmount int64     `json:"gross_amount"`
	PlanType    string    `json:"plan_type"`
	Status      string    `json:"status"` // "pending", "settled", "failed", "expired"
	PaymentType string    `json:"payment_type,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
