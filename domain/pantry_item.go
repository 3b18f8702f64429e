package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddPantryItem     = "pantry item added successfully"
	MessageSuccessUpdatePantryItem  = "pantry item updated successfully"
	MessageSuccessDeletePantryItem  = "pantry item deleted successfully"
	MessageSuccessGetPantryItems    = "pantry items retrieved successfully"
	MessageSuccessUploadReceipt     = "receipt uploaded successfully"
	MessageSuccessSaveScannedItems  = "scanned items saved successfully"
	MessageSuccessGetDashboardStats = "dashboard statistics retrieved successfully"
	MessageSuccessShoppingList      = "shopping list retrieved successfully"
	MessageSuccessExpiryDigest      = "expiry digest sent successfully"

	MessageFailedAddPantryItem     = "failed to add pantry item"
	MessageFailedUpdatePantryItem  = "failed to update pantry item"
	MessageFailedDeletePantryItem  = "failed to delete pantry item"
	MessageFailedGetPantryItems    = "failed to retrieve pantry items"
	MessageFailedUploadReceipt     = "failed to upload receipt"
	MessageFailedSaveScannedItems  = "failed to save scanned items"
	MessageFailedGetDashboardStats = "failed to retrieve dashboard statistics"
	MessageFailedShoppingList      = "failed to retrieve shopping list"
	MessageFailedExpiryDigest      = "failed to send expiry digest"

	ErrPantryItemNotFound      = errors.New("pantry item not found")
	ErrReceiptProcessingFailed = errors.New("receipt processing failed")
	ErrInvalidExpiryDate       = errors.New("invalid expiry date")
	ErrInvalidQuantity         = errors.New("quantity must be positive")
	ErrInvalidReceiptScan      = errors.New("invalid receipt scan ID")
	ErrUnauthorizedAccess      = errors.New("unauthorized access to pantry item")
)

type (
	AddPantryItemRequest struct {
		Name        string  `json:"name" validate:"required"`
		Quantity    float64 `json:"quantity" validate:"required,gt=0"`
		UnitMeasure string  `json:"unit_measure" validate:"required"`
		Category    string  `json:"category" validate:"omitempty"`
		// ExpiryDate is ISO YYYY-MM-DD; when omitted it is predicted from
		// the item name.
		ExpiryDate     string `json:"expiry_date" validate:"omitempty"`
		IsPackaged     bool   `json:"is_packaged"`
		IsRefrigerated bool   `json:"is_refrigerated"`
	}

	UpdatePantryItemRequest struct {
		Name        string  `json:"name" validate:"omitempty"`
		Quantity    float64 `json:"quantity" validate:"omitempty,gt=0"`
		UnitMeasure string  `json:"unit_measure" validate:"omitempty"`
		Category    string  `json:"category" validate:"omitempty"`
		ExpiryDate  string  `json:"expiry_date" validate:"omitempty"`
		IsPackaged  bool    `json:"is_packaged"`
	}

	PantryItemResponse struct {
		ID               string    `json:"id"`
		Name             string    `json:"name"`
		Quantity         float64   `json:"quantity"`
		UnitMeasure      string    `json:"unit_measure"`
		Category         string    `json:"category"`
		ExpiryDate       time.Time `json:"expiry_date"`
		ExpiryText       string    `json:"expiry_text"`
		IsPackaged       bool      `json:"is_packaged"`
		Status           string    `json:"status"`
		CaloriesEstimate int       `json:"calories_estimate,omitempty"`
		ImageURL         string    `json:"image_url,omitempty"`
		CreatedAt        time.Time `json:"created_at"`
	}

	UploadItemImageRequest struct {
		PantryItemID string                `json:"item_id" form:"item_id" validate:"required,uuid"`
		Image        *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	UploadReceiptRequest struct {
		ReceiptImage *multipart.FileHeader `json:"receipt_image" form:"receipt_image" validate:"required"`
	}

	UploadReceiptResponse struct {
		ScanID   string `json:"scan_id"`
		ImageURL string `json:"image_url"`
		Status   string `json:"status"`
	}

	ScannedItemRequest struct {
		Name        string  `json:"name" validate:"required"`
		Quantity    float64 `json:"quantity" validate:"required,gt=0"`
		UnitMeasure string  `json:"unit_measure" validate:"required"`
		ExpiryDate  string  `json:"expiry_date" validate:"omitempty"`
		IsPackaged  bool    `json:"is_packaged"`
	}

	SaveScannedItemsRequest struct {
		ScanID string               `json:"scan_id" validate:"required,uuid"`
		Items  []ScannedItemRequest `json:"items" validate:"required,dive"`
	}

	ReceiptScanResponse struct {
		ScanID     string `json:"scan_id"`
		ImageURL   string `json:"image_url"`
		Status     string `json:"status"`
		OcrResults string `json:"ocr_results,omitempty"`
	}

	DashboardStatsResponse struct {
		TotalItems        int `json:"total_items"`
		FreshItems        int `json:"fresh_items"`
		WarningItems      int `json:"warning_items"`
		ExpiringSoonItems int `json:"expiring_soon_items"`
		ExpiredItems      int `json:"expired_items"`
	}

	ShoppingListItemResponse struct {
		ID          string  `json:"id"`
		Name        string  `json:"name"`
		Quantity    float64 `json:"quantity"`
		UnitMeasure string  `json:"unit_measure"`
		Category    string  `json:"category"`
		Reason      string  `json:"reason"`
		IsPurchased bool    `json:"is_purchased"`
	}

	AddShoppingItemRequest struct {
		Name        string  `json:"name" validate:"required"`
		Quantity    float64 `json:"quantity" validate:"required,gt=0"`
		UnitMeasure string  `json:"unit_measure" validate:"required"`
	}

	TogglePurchasedRequest struct {
		ItemID string `json:"item_id" validate:"required,uuid"`
	}
)
