package subscription

import (
	"context"

	"pantry-tracker-api/entities"

	"gorm.io/gorm"
)

type (
	SubscriptionRepository interface {
		GetByUserID(ctx context.Context, userID string) (*entities.Subscription, error)
		Create(ctx context.Context, subscription *entities.Subscription) error
		Update(ctx context.Context, subscription *entities.Subscription) error
		UpdateStatus(ctx context.Context, userID string, status string) error
	}

	subscriptionRepository struct {
		db *gorm.DB
	}
)

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) GetByUserID(ctx context.Context, userID string) (*entities.Subscription, error) {
	var subscription entities.Subscription
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&subscription).Error; err != nil {
		return nil, err
	}
	return &subscription, nil
}

func (r *subscriptionRepository) Create(ctx context.Context, subscription *entities.Subscription) error {
	return r.db.WithContext(ctx).Create(subscription).Error
}

func (r *subscriptionRepository) Update(ctx context.Context, subscription *entities.Subscription) error {
	return r.db.WithContext(ctx).Save(subscription).Error
}

func (r *subscriptionRepository) UpdateStatus(ctx context.Context, userID string, status string) error {
	return r.db.WithContext(ctx).Model(&entities.Subscription{}).
		Where("user_id = ?", userID).
		Update("status", status).Error
}
