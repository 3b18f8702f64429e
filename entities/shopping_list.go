package entities

import (
	"github.com/google/uuid"
)

type ShoppingListItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Name         string    `json:"name"`
	Quantity     float64   `json:"quantity"`
	UnitMeasure  string    `json:"unit_measure"`
	Category     string    `json:"category"`
	Reason       string    `json:"reason"` // "expired", "expiring-soon", "manual"
	IsPurchased  bool      `json:"is_purchased"`
	PantryItemID *string   `json:"pantry_item_id,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
