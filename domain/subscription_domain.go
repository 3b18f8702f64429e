package domain

import (
	"errors"
	"time"
)

// Subscription lifecycle states. The only defined transitions are
// (none)->trial, (none)->active, trial->active, trial->inactive (passive
// expiry) and active->cancelled; reactivation goes back through the
// activation upsert.
const (
	SubscriptionStatusTrial     = "trial"
	SubscriptionStatusActive    = "active"
	SubscriptionStatusInactive  = "inactive"
	SubscriptionStatusCancelled = "cancelled"

	PlanTypePremiumMonthly = "premium-monthly"

	TrialDays = 7

	// PremiumCacheTTL bounds how stale a cached premium-access answer may be.
	PremiumCacheTTL = 5 * time.Minute
)

var (
	MessageSuccessStartTrial      = "free trial started successfully"
	MessageSuccessActivate        = "subscription activated successfully"
	MessageSuccessCancel          = "subscription cancelled successfully"
	MessageSuccessGetSubscription = "subscription retrieved successfully"

	MessageFailedStartTrial      = "failed to start free trial"
	MessageFailedActivate        = "failed to activate subscription"
	MessageFailedCancel          = "failed to cancel subscription"
	MessageFailedGetSubscription = "failed to retrieve subscription"

	ErrTrialAlreadyUsed      = errors.New("free trial already used")
	ErrSubscriptionNotFound  = errors.New("subscription not found")
	ErrSubscriptionNotActive = errors.New("subscription not active")
	ErrPremiumRequired       = errors.New("premium subscription required")
)

type (
	SubscriptionResponse struct {
		Status                string     `json:"status"`
		PlanType              string     `json:"plan_type,omitempty"`
		TrialStartDate        *time.Time `json:"trial_start_date,omitempty"`
		TrialEndDate          *time.Time `json:"trial_end_date,omitempty"`
		SubscriptionStartDate *time.Time `json:"subscription_start_date,omitempty"`
		SubscriptionEndDate   *time.Time `json:"subscription_end_date,omitempty"`
		PriceUSD              float64    `json:"price_usd,omitempty"`
		HasPremiumAccess      bool       `json:"has_premium_access"`
	}

	ActivateSubscriptionRequest struct {
		PlanType string  `json:"plan_type" validate:"required"`
		PriceUSD float64 `json:"price_usd" validate:"required,gt=0"`
	}
)
