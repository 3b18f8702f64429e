package pantry

import (
	"context"

	"pantry-tracker-api/entities"

	"gorm.io/gorm"
)

type (
	PantryRepository interface {
		AddPantryItem(ctx context.Context, item *entities.PantryItem) error
		GetPantryItemByID(ctx context.Context, id string) (*entities.PantryItem, error)
		UpdatePantryItem(ctx context.Context, item *entities.PantryItem) error
		DeletePantryItem(ctx context.Context, id string) error
		GetPantryItems(ctx context.Context, userID string, status string, page, limit int) ([]*entities.PantryItem, int64, error)
		GetAllByUser(ctx context.Context, userID string) ([]*entities.PantryItem, error)

		// Receipt scanning related
		CreateReceiptScan(ctx context.Context, scan *entities.ReceiptScan) error
		GetReceiptScanByID(ctx context.Context, id string) (*entities.ReceiptScan, error)
		UpdateReceiptScan(ctx context.Context, scan *entities.ReceiptScan) error

		// Shopping list
		CreateShoppingItem(ctx context.Context, item *entities.ShoppingListItem) error
		GetShoppingItems(ctx context.Context, userID string) ([]*entities.ShoppingListItem, error)
		GetShoppingItemByID(ctx context.Context, id string) (*entities.ShoppingListItem, error)
		UpdateShoppingItem(ctx context.Context, item *entities.ShoppingListItem) error
		DeleteShoppingItem(ctx context.Context, id string) error
		HasShoppingItemForPantryItem(ctx context.Context, userID string, pantryItemID string) (bool, error)
	}

	pantryRepository struct {
		db *gorm.DB
	}
)

func NewPantryRepository(db *gorm.DB) PantryRepository {
	return &pantryRepository{db: db}
}

func (r *pantryRepository) AddPantryItem(ctx context.Context, item *entities.PantryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *pantryRepository) GetPantryItemByID(ctx context.Context, id string) (*entities.PantryItem, error) {
	var item entities.PantryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *pantryRepository) UpdatePantryItem(ctx context.Context, item *entities.PantryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *pantryRepository) DeletePantryItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.PantryItem{}).Error
}

func (r *pantryRepository) GetPantryItems(ctx context.Context, userID string, status string, page, limit int) ([]*entities.PantryItem, int64, error) {
	var items []*entities.PantryItem
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if status != "all" && status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Model(&entities.PantryItem{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("expiry_date asc").Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, count, nil
}

func (r *pantryRepository) GetAllByUser(ctx context.Context, userID string) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("expiry_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pantryRepository) CreateReceiptScan(ctx context.Context, scan *entities.ReceiptScan) error {
	return r.db.WithContext(ctx).Create(scan).Error
}

func (r *pantryRepository) GetReceiptScanByID(ctx context.Context, id string) (*entities.ReceiptScan, error) {
	var scan entities.ReceiptScan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&scan).Error; err != nil {
		return nil, err
	}
	return &scan, nil
}

func (r *pantryRepository) UpdateReceiptScan(ctx context.Context, scan *entities.ReceiptScan) error {
	return r.db.WithContext(ctx).Save(scan).Error
}

func (r *pantryRepository) CreateShoppingItem(ctx context.Context, item *entities.ShoppingListItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *pantryRepository) GetShoppingItems(ctx context.Context, userID string) ([]*entities.ShoppingListItem, error) {
	var items []*entities.ShoppingListItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pantryRepository) GetShoppingItemByID(ctx context.Context, id string) (*entities.ShoppingListItem, error) {
	var item entities.ShoppingListItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *pantryRepository) UpdateShoppingItem(ctx context.Context, item *entities.ShoppingListItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *pantryRepository) DeleteShoppingItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.ShoppingListItem{}).Error
}

func (r *pantryRepository) HasShoppingItemForPantryItem(ctx context.Context, userID string, pantryItemID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.ShoppingListItem{}).
		Where("user_id = ? AND pantry_item_id = ? AND is_purchased = ?", userID, pantryItemID, false).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
