package domain

var (
	MessageSuccessEstimateExpiry = "expiration estimated successfully"
	MessageSuccessCategorize     = "item categorized successfully"
	MessageSuccessCalorieLookup  = "calorie lookup completed"

	MessageFailedEstimateExpiry = "failed to estimate expiration"
	MessageFailedCalorieLookup  = "failed to look up calories"
)

type (
	EstimateExpiryRequest struct {
		ItemName       string `json:"item_name" validate:"required"`
		Category       string `json:"category" validate:"omitempty"`
		IsRefrigerated *bool  `json:"is_refrigerated" validate:"omitempty"`
	}

	CategorizeResponse struct {
		ItemName string `json:"item_name"`
		Category string `json:"category"`
	}

	CalorieLookupResponse struct {
		ItemName        string  `json:"item_name"`
		Quantity        float64 `json:"quantity"`
		Unit            string  `json:"unit"`
		Calories        int     `json:"calories"`
		CaloriesPerUnit float64 `json:"calories_per_unit"`
		Source          string  `json:"source"`
	}
)
