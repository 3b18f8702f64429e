package subscription

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"pantry-tracker-api/domain"
	"pantry-tracker-api/entities"
	"pantry-tracker-api/internal/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeSubscriptionRepository struct {
	mu                sync.Mutex
	subscriptions     map[string]*entities.Subscription
	getCalls          int
	updateStatusCalls int
	failNextGets      int
}

func newFakeSubscriptionRepository() *fakeSubscriptionRepository {
	return &fakeSubscriptionRepository{subscriptions: make(map[string]*entities.Subscription)}
}

func (f *fakeSubscriptionRepository) GetByUserID(_ context.Context, userID string) (*entities.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.getCalls++
	if f.failNextGets > 0 {
		f.failNextGets--
		return nil, errors.New("connection reset")
	}

	subscription, ok := f.subscriptions[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *subscription
	return &copied, nil
}

func (f *fakeSubscriptionRepository) Create(_ context.Context, subscription *entities.Subscription) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *subscription
	f.subscriptions[subscription.UserID.String()] = &copied
	return nil
}

func (f *fakeSubscriptionRepository) Update(_ context.Context, subscription *entities.Subscription) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *subscription
	f.subscriptions[subscription.UserID.String()] = &copied
	return nil
}

func (f *fakeSubscriptionRepository) UpdateStatus(_ context.Context, userID string, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateStatusCalls++
	if subscription, ok := f.subscriptions[userID]; ok {
		subscription.Status = status
	}
	return nil
}

func newTestService(repo SubscriptionRepository, now func() time.Time) *subscriptionService {
	retryConfig := utils.RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
		IsRetryable: isRetryable,
	}
	return &subscriptionService{
		subscriptionRepository: repo,
		premiumCache:           utils.NewTTLCache[bool](),
		retryConfig:            retryConfig,
		now:                    now,
	}
}

func TestStartFreeTrial(t *testing.T) {
	repo := newFakeSubscriptionRepository()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	service := newTestService(repo, func() time.Time { return base })
	userID := uuid.NewString()

	res, err := service.StartFreeTrial(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, domain.SubscriptionStatusTrial, res.Status)
	assert.True(t, res.HasPremiumAccess)
	require.NotNil(t, res.TrialEndDate)
	assert.Equal(t, base.AddDate(0, 0, domain.TrialDays), *res.TrialEndDate)

	_, err = service.StartFreeTrial(context.Background(), userID)
	assert.ErrorIs(t, err, domain.ErrTrialAlreadyUsed)
}

func TestStartFreeTrialRejectsBadUserID(t *testing.T) {
	service := newTestService(newFakeSubscriptionRepository(), time.Now)

	_, err := service.StartFreeTrial(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestTrialExpiresLazilyWithSingleWrite(t *testing.T) {
	repo := newFakeSubscriptionRepository()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	service := newTestService(repo, func() time.Time { return now })
	userID := uuid.NewString()

	_, err := service.StartFreeTrial(context.Background(), userID)
	require.NoError(t, err)

	now = now.AddDate(0, 0, domain.TrialDays+1)

	res, err := service.GetSubscription(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, domain.SubscriptionStatusInactive, res.Status)
	assert.False(t, res.HasPremiumAccess)
	assert.Equal(t, 1, repo.updateStatusCalls)

	// The stored state is already settled, so another read writes nothing.
	res, err = service.GetSubscription(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, domain.SubscriptionStatusInactive, res.Status)
	assert.Equal(t, 1, repo.updateStatusCalls)
}

func TestActivateAndCancel(t *testing.T) {
	repo := newFakeSubscriptionRepository()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	service := newTestService(repo, func() time.Time { return base })
	userID := uuid.NewString()

	req := domain.ActivateSubscriptionRequest{
		PlanType: domain.PlanTypePremiumMonthly,
		PriceUSD: domain.PremiumPriceUSD,
	}

	res, err := service.Activate(context.Background(), userID, req)
	require.NoError(t, err)
	assert.Equal(t, domain.SubscriptionStatusActive, res.Status)
	assert.True(t, res.HasPremiumAccess)
	require.NotNil(t, res.SubscriptionEndDate)
	assert.Equal(t, base.AddDate(0, 1, 0), *res.SubscriptionEndDate)

	require.NoError(t, service.Cancel(context.Background(), userID))

	res, err = service.GetSubscription(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, domain.SubscriptionStatusCancelled, res.Status)
	assert.False(t, res.HasPremiumAccess)

	assert.ErrorIs(t, service.Cancel(context.Background(), userID), domain.ErrSubscriptionNotActive)
}

func TestActivateUpgradesExistingTrial(t *testing.T) {
	repo := newFakeSubscriptionRepository()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	service := newTestService(repo, func() time.Time { return base })
	userID := uuid.NewString()

	_, err := service.StartFreeTrial(context.Background(), userID)
	require.NoError(t, err)

	res, err := service.Activate(context.Background(), userID, domain.ActivateSubscriptionRequest{
		PlanType: domain.PlanTypePremiumMonthly,
		PriceUSD: domain.PremiumPriceUSD,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.SubscriptionStatusActive, res.Status)
	// Trial history is retained on the upgraded record.
	assert.NotNil(t, res.TrialStartDate)
}

func TestGetSubscriptionWithoutRecord(t *testing.T) {
	service := newTestService(newFakeSubscriptionRepository(), time.Now)

	res, err := service.GetSubscription(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Equal(t, domain.SubscriptionStatusInactive, res.Status)
	assert.False(t, res.HasPremiumAccess)
}

func TestHasPremiumAccessCachesResult(t *testing.T) {
	repo := newFakeSubscriptionRepository()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	service := newTestService(repo, func() time.Time { return base })
	userID := uuid.NewString()

	_, err := service.Activate(context.Background(), userID, domain.ActivateSubscriptionRequest{
		PlanType: domain.PlanTypePremiumMonthly,
		PriceUSD: domain.PremiumPriceUSD,
	})
	require.NoError(t, err)
	callsAfterActivate := repo.getCalls

	hasAccess, err := service.HasPremiumAccess(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, hasAccess)
	assert.Equal(t, callsAfterActivate+1, repo.getCalls)

	// Second check within the TTL is served from the cache.
	hasAccess, err = service.HasPremiumAccess(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, hasAccess)
	assert.Equal(t, callsAfterActivate+1, repo.getCalls)

	// Cancelling invalidates the cached answer immediately.
	require.NoError(t, service.Cancel(context.Background(), userID))
	hasAccess, err = service.HasPremiumAccess(context.Background(), userID)
	require.NoError(t, err)
	assert.False(t, hasAccess)
}

func TestHasPremiumAccessRetriesTransientFailures(t *testing.T) {
	repo := newFakeSubscriptionRepository()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	service := newTestService(repo, func() time.Time { return base })
	userID := uuid.NewString()

	_, err := service.Activate(context.Background(), userID, domain.ActivateSubscriptionRequest{
		PlanType: domain.PlanTypePremiumMonthly,
		PriceUSD: domain.PremiumPriceUSD,
	})
	require.NoError(t, err)
	callsAfterActivate := repo.getCalls

	repo.failNextGets = 2
	hasAccess, err := service.HasPremiumAccess(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, hasAccess)
	assert.Equal(t, callsAfterActivate+3, repo.getCalls)
}

func TestGetSubscriptionRetriesTransientFailures(t *testing.T) {
	repo := newFakeSubscriptionRepository()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	service := newTestService(repo, func() time.Time { return base })
	userID := uuid.NewString()

	_, err := service.Activate(context.Background(), userID, domain.ActivateSubscriptionRequest{
		PlanType: domain.PlanTypePremiumMonthly,
		PriceUSD: domain.PremiumPriceUSD,
	})
	require.NoError(t, err)
	callsAfterActivate := repo.getCalls

	repo.failNextGets = 1
	res, err := service.GetSubscription(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, domain.SubscriptionStatusActive, res.Status)
	assert.Equal(t, callsAfterActivate+2, repo.getCalls)
}

func TestCancelRetriesTransientFailures(t *testing.T) {
	repo := newFakeSubscriptionRepository()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	service := newTestService(repo, func() time.Time { return base })
	userID := uuid.NewString()

	_, err := service.Activate(context.Background(), userID, domain.ActivateSubscriptionRequest{
		PlanType: domain.PlanTypePremiumMonthly,
		PriceUSD: domain.PremiumPriceUSD,
	})
	require.NoError(t, err)
	callsAfterActivate := repo.getCalls

	repo.failNextGets = 2
	require.NoError(t, service.Cancel(context.Background(), userID))
	assert.Equal(t, callsAfterActivate+3, repo.getCalls)

	res, err := service.GetSubscription(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, domain.SubscriptionStatusCancelled, res.Status)
}

func TestRetryPredicateRejectsIdentityErrors(t *testing.T) {
	nonRetryable := []error{
		domain.ErrParseUUID,
		domain.ErrNotAuthenticated,
		domain.ErrUserNotAllowed,
		domain.ErrTokenExpired,
		domain.ErrTokenInvalid,
		gorm.ErrRecordNotFound,
	}
	for _, err := range nonRetryable {
		assert.False(t, isRetryable(err), "%v should not be retried", err)
	}

	assert.True(t, isRetryable(errors.New("connection reset")))
}

func TestHasPremiumAccessWithoutSubscription(t *testing.T) {
	repo := newFakeSubscriptionRepository()
	service := newTestService(repo, time.Now)

	hasAccess, err := service.HasPremiumAccess(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.False(t, hasAccess)
	// Missing records are not retried.
	assert.Equal(t, 1, repo.getCalls)
}
