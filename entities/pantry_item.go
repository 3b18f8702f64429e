package entities

import (
	"time"

	"github.com/google/uuid"
)

type PantryItem struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	Name             string    `json:"name"`
	Quantity         float64   `json:"quantity"`
	UnitMeasure      string    `json:"unit_measure"`
	Category         string    `json:"category"`
	ExpiryDate       time.Time `json:"expiry_date"`
	IsPackaged       bool      `json:"is_packaged"`
	Status           string    `json:"status"` // "fresh", "warning", "expiring-soon", "expired"
	CaloriesEstimate int       `json:"calories_estimate,omitempty"`
	ImageURL         string    `json:"image_url,omitempty"`
	AddedManually    bool      `json:"added_manually"`
	ReceiptScanID    *string   `json:"receipt_scan_id,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
