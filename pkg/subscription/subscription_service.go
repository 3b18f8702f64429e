package subscription

import (
	"context"
	"errors"
	"time"

	"pantry-tracker-api/domain"
	"pantry-tracker-api/entities"
	"pantry-tracker-api/internal/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	SubscriptionService interface {
		StartFreeTrial(ctx context.Context, userID string) (domain.SubscriptionResponse, error)
		Activate(ctx context.Context, userID string, req domain.ActivateSubscriptionRequest) (domain.SubscriptionResponse, error)
		Cancel(ctx context.Context, userID string) error
		GetSubscription(ctx context.Context, userID string) (domain.SubscriptionResponse, error)
		HasPremiumAccess(ctx context.Context, userID string) (bool, error)
	}

	subscriptionService struct {
		subscriptionRepository SubscriptionRepository
		premiumCache           *utils.TTLCache[bool]
		retryConfig            utils.RetryConfig
		now                    func() time.Time
	}
)

func NewSubscriptionService(subscriptionRepository SubscriptionRepository) SubscriptionService {
	retryConfig := utils.DefaultRetryConfig()
	retryConfig.IsRetryable = isRetryable

	return &subscriptionService{
		subscriptionRepository: subscriptionRepository,
		premiumCache:           utils.NewTTLCache[bool](),
		retryConfig:            retryConfig,
		now:                    time.Now,
	}
}

// isRetryable keeps transient store failures inside the retry loop while
// letting identity problems fail on the first attempt.
func isRetryable(err error) bool {
	switch {
	case errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, domain.ErrNotAuthenticated),
		errors.Is(err, domain.ErrUserNotAllowed),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, gorm.ErrRecordNotFound):
		return false
	}
	return true
}

func (s *subscriptionService) StartFreeTrial(ctx context.Context, userID string) (domain.SubscriptionResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.SubscriptionResponse{}, domain.ErrParseUUID
	}

	existing, err := s.getByUserID(ctx, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.SubscriptionResponse{}, err
	}
	if existing != nil {
		// One trial per user, regardless of what state the record is in now.
		return domain.SubscriptionResponse{}, domain.ErrTrialAlreadyUsed
	}

	trialStart := s.now()
	trialEnd := trialStart.AddDate(0, 0, domain.TrialDays)

	subscription := &entities.Subscription{
		ID:             uuid.New(),
		UserID:         userUUID,
		Status:         domain.SubscriptionStatusTrial,
		PlanType:       domain.PlanTypePremiumMonthly,
		TrialStartDate: &trialStart,
		TrialEndDate:   &trialEnd,
	}

	if err := s.create(ctx, subscription); err != nil {
		return domain.SubscriptionResponse{}, err
	}

	s.premiumCache.Invalidate(userID)
	return s.toResponse(subscription), nil
}

func (s *subscriptionService) Activate(ctx context.Context, userID string, req domain.ActivateSubscriptionRequest) (domain.SubscriptionResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.SubscriptionResponse{}, domain.ErrParseUUID
	}

	start := s.now()
	end := start.AddDate(0, 1, 0)

	subscription, err := s.getByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SubscriptionResponse{}, err
		}
		subscription = &entities.Subscription{
			ID:     uuid.New(),
			UserID: userUUID,
		}
		subscription.Status = domain.SubscriptionStatusActive
		subscription.PlanType = req.PlanType
		subscription.SubscriptionStartDate = &start
		subscription.SubscriptionEndDate = &end
		subscription.PriceUSD = req.PriceUSD
		subscription.LastPaymentDate = &start

		if err := s.create(ctx, subscription); err != nil {
			return domain.SubscriptionResponse{}, err
		}
	} else {
		subscription.Status = domain.SubscriptionStatusActive
		subscription.PlanType = req.PlanType
		subscription.SubscriptionStartDate = &start
		subscription.SubscriptionEndDate = &end
		subscription.PriceUSD = req.PriceUSD
		subscription.LastPaymentDate = &start

		if err := s.update(ctx, subscription); err != nil {
			return domain.SubscriptionResponse{}, err
		}
	}

	s.premiumCache.Invalidate(userID)
	return s.toResponse(subscription), nil
}

func (s *subscriptionService) Cancel(ctx context.Context, userID string) error {
	subscription, err := s.getByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrSubscriptionNotFound
		}
		return err
	}

	if subscription.Status != domain.SubscriptionStatusActive &&
		subscription.Status != domain.SubscriptionStatusTrial {
		return domain.ErrSubscriptionNotActive
	}

	if err := s.updateStatus(ctx, userID, domain.SubscriptionStatusCancelled); err != nil {
		return err
	}

	s.premiumCache.Invalidate(userID)
	return nil
}

func (s *subscriptionService) GetSubscription(ctx context.Context, userID string) (domain.SubscriptionResponse, error) {
	subscription, err := s.current(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No record yet reads as an inactive subscription, not an error.
			return domain.SubscriptionResponse{Status: domain.SubscriptionStatusInactive}, nil
		}
		return domain.SubscriptionResponse{}, err
	}
	return s.toResponse(subscription), nil
}

func (s *subscriptionService) HasPremiumAccess(ctx context.Context, userID string) (bool, error) {
	return s.premiumCache.GetOrRefresh(ctx, userID, domain.PremiumCacheTTL, func(ctx context.Context) (bool, error) {
		subscription, err := s.current(ctx, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return s.grantsPremium(subscription), nil
	})
}

// current loads the user's subscription and applies the passive trial-expiry
// transition. An expired trial is flipped to inactive with a single write
// before the record is returned, so every reader observes the settled state.
func (s *subscriptionService) current(ctx context.Context, userID string) (*entities.Subscription, error) {
	subscription, err := s.getByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if subscription.Status == domain.SubscriptionStatusTrial &&
		subscription.TrialEndDate != nil &&
		s.now().After(*subscription.TrialEndDate) {
		subscription.Status = domain.SubscriptionStatusInactive
		if err := s.updateStatus(ctx, userID, domain.SubscriptionStatusInactive); err != nil {
			return nil, err
		}
		s.premiumCache.Invalidate(userID)
	}

	return subscription, nil
}

// Repository access funnels through the retry policy, so a transient store
// failure is absorbed before it can surface to a caller.
func (s *subscriptionService) getByUserID(ctx context.Context, userID string) (*entities.Subscription, error) {
	var subscription *entities.Subscription
	err := utils.WithRetry(ctx, s.retryConfig, func(ctx context.Context) error {
		var err error
		subscription, err = s.subscriptionRepository.GetByUserID(ctx, userID)
		return err
	})
	return subscription, err
}

func (s *subscriptionService) create(ctx context.Context, subscription *entities.Subscription) error {
	return utils.WithRetry(ctx, s.retryConfig, func(ctx context.Context) error {
		return s.subscriptionRepository.Create(ctx, subscription)
	})
}

func (s *subscriptionService) update(ctx context.Context, subscription *entities.Subscription) error {
	return utils.WithRetry(ctx, s.retryConfig, func(ctx context.Context) error {
		return s.subscriptionRepository.Update(ctx, subscription)
	})
}

func (s *subscriptionService) updateStatus(ctx context.Context, userID string, status string) error {
	return utils.WithRetry(ctx, s.retryConfig, func(ctx context.Context) error {
		return s.subscriptionRepository.UpdateStatus(ctx, userID, status)
	})
}

func (s *subscriptionService) grantsPremium(subscription *entities.Subscription) bool {
	switch subscription.Status {
	case domain.SubscriptionStatusActive:
		return true
	case domain.SubscriptionStatusTrial:
		return subscription.TrialEndDate != nil && s.now().Before(*subscription.TrialEndDate)
	}
	return false
}

func (s *subscriptionService) toResponse(subscription *entities.Subscription) domain.SubscriptionResponse {
	return domain.SubscriptionResponse{
		Status:                subscription.Status,
		PlanType:              subscription.PlanType,
		TrialStartDate:        subscription.TrialStartDate,
		TrialEndDate:          subscription.TrialEndDate,
		SubscriptionStartDate: subscription.SubscriptionStartDate,
		SubscriptionEndDate:   subscription.SubscriptionEndDate,
		PriceUSD:              subscription.PriceUSD,
		HasPremiumAccess:      s.grantsPremium(subscription),
	}
}
