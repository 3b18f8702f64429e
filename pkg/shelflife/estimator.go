package shelflife

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// defaultFallbackDays is used when neither the static tables nor the remote
// predictor produce an estimate.
const defaultFallbackDays = 7

type (
	// Estimate is the result of an expiration estimation. ExpirationDate is
	// in the user-facing MM/DD/YYYY form.
	Estimate struct {
		ExpirationDate  string `json:"expiration_date"`
		IsEarliestDate  bool   `json:"is_earliest_date"`
		EstimationText  string `json:"estimation_text"`
		DaysUntilExpiry int    `json:"days_until_expiry"`
	}

	Estimator interface {
		// Estimate never fails: remote prediction errors are absorbed into
		// the 7-day default.
		Estimate(ctx context.Context, itemName, category string, isRefrigerated bool) Estimate
		// PredictDate is the synchronous variant. It returns an ISO
		// YYYY-MM-DD string and performs no network calls.
		PredictDate(itemName string, isRefrigerated bool) string
	}

	estimator struct {
		predictURL string
		httpClient *http.Client
		now        func() time.Time
	}
)

// NewEstimator creates an estimator. predictURL may be empty, in which case
// unmatched items fall straight through to the 7-day default.
func NewEstimator(predictURL string) Estimator {
	return &estimator{
		predictURL: predictURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		now:        time.Now,
	}
}

// Both the static-table path here and PredictDate use the MinDays offset
// (earliest-date policy). isRefrigerated is forwarded to the remote
// predictor, which may take storage conditions into account.
func (e *estimator) Estimate(ctx context.Context, itemName, category string, isRefrigerated bool) Estimate {
	name := normalize(itemName)
	now := e.now()

	if rec, ok := findRecord(name); ok {
		expiry := now.AddDate(0, 0, rec.MinDays)
		return Estimate{
			ExpirationDate: FormatDateToMMDDYYYY(expiry),
			IsEarliestDate: true,
			EstimationText: fmt.Sprintf("%s usually keep %d-%d days. %s",
				rec.Category, rec.MinDays, rec.MaxDays, rec.StorageNote),
			DaysUntilExpiry: rec.MinDays,
		}
	}

	if rule, ok := findPackagedRule(name); ok {
		expiry := now.AddDate(0, 0, rule.DaysToAdd)
		return Estimate{
			ExpirationDate: FormatDateToMMDDYYYY(expiry),
			IsEarliestDate: false,
			EstimationText: fmt.Sprintf("%s typically keep about %d days unopened.",
				rule.Description, rule.DaysToAdd),
			DaysUntilExpiry: rule.DaysToAdd,
		}
	}

	est, err := e.predictRemote(ctx, itemName, category, isRefrigerated)
	if err != nil {
		log.Printf("expiry prediction fallback failed for %q: %v", itemName, err)
		expiry := now.AddDate(0, 0, defaultFallbackDays)
		return Estimate{
			ExpirationDate:  FormatDateToMMDDYYYY(expiry),
			IsEarliestDate:  false,
			EstimationText:  "No shelf life data found. Defaulting to 7 days, please verify the expiration date.",
			DaysUntilExpiry: defaultFallbackDays,
		}
	}
	return est
}

func (e *estimator) PredictDate(itemName string, isRefrigerated bool) string {
	name := normalize(itemName)
	now := e.now()

	if rec, ok := findRecord(name); ok {
		return now.AddDate(0, 0, rec.MinDays).Format("2006-01-02")
	}
	return now.AddDate(0, 0, defaultFallbackDays).Format("2006-01-02")
}

func (e *estimator) predictRemote(ctx context.Context, itemName, category string, isRefrigerated bool) (Estimate, error) {
	if e.predictURL == "" {
		return Estimate{}, fmt.Errorf("expiry predictor URL not configured")
	}

	requestBody := map[string]interface{}{
		"itemName":       itemName,
		"category":       category,
		"isRefrigerated": isRefrigerated,
	}
	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return Estimate{}, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", e.predictURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return Estimate{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return Estimate{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Estimate{}, fmt.Errorf("expiry predictor error: %s", resp.Status)
	}

	var wire struct {
		ExpirationDate  string `json:"expirationDate"`
		IsEarliestDate  bool   `json:"isEarliestDate"`
		EstimationText  string `json:"estimationText"`
		DaysUntilExpiry int    `json:"daysUntilExpiry"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return Estimate{}, err
	}

	// Returned verbatim; the predictor owns the estimate.
	return Estimate{
		ExpirationDate:  wire.ExpirationDate,
		IsEarliestDate:  wire.IsEarliestDate,
		EstimationText:  wire.EstimationText,
		DaysUntilExpiry: wire.DaysUntilExpiry,
	}, nil
}
