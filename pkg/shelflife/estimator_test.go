package shelflife

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEstimator(predictURL string) *estimator {
	return &estimator{
		predictURL: predictURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		now:        func() time.Time { return testNow },
	}
}

func TestEstimateUsesFreshFoodTable(t *testing.T) {
	e := newTestEstimator("")

	est := e.Estimate(context.Background(), "Milk", "dairy", true)
	assert.Equal(t, 5, est.DaysUntilExpiry)
	assert.True(t, est.IsEarliestDate)
	assert.Equal(t, FormatDateToMMDDYYYY(testNow.AddDate(0, 0, 5)), est.ExpirationDate)
	assert.Contains(t, est.EstimationText, "5-7 days")
}

func TestEstimateMatchesKeywordsBidirectionally(t *testing.T) {
	e := newTestEstimator("")

	// "Grapes" is not a table keyword but contains "grape".
	est := e.Estimate(context.Background(), "Grapes", "", true)
	assert.Equal(t, 5, est.DaysUntilExpiry)
	assert.True(t, est.IsEarliestDate)
}

func TestEstimateUsesPackagedRules(t *testing.T) {
	e := newTestEstimator("")

	est := e.Estimate(context.Background(), "Canned Soup", "", false)
	assert.Equal(t, 365, est.DaysUntilExpiry)
	assert.False(t, est.IsEarliestDate)
	assert.Equal(t, FormatDateToMMDDYYYY(testNow.AddDate(0, 0, 365)), est.ExpirationDate)
}

func TestEstimateReturnsRemotePredictionVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		fmt.Fprint(w, `{
			"expirationDate": "04/01/2026",
			"isEarliestDate": true,
			"estimationText": "Model estimate.",
			"daysUntilExpiry": 22
		}`)
	}))
	defer server.Close()

	e := newTestEstimator(server.URL)
	est := e.Estimate(context.Background(), "Dragonfruit", "fruits", true)

	assert.Equal(t, "04/01/2026", est.ExpirationDate)
	assert.True(t, est.IsEarliestDate)
	assert.Equal(t, "Model estimate.", est.EstimationText)
	assert.Equal(t, 22, est.DaysUntilExpiry)
}

func TestEstimateFallsBackWhenRemoteFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	e := newTestEstimator(server.URL)
	est := e.Estimate(context.Background(), "Dragonfruit", "", true)

	assert.Equal(t, defaultFallbackDays, est.DaysUntilExpiry)
	assert.False(t, est.IsEarliestDate)
	assert.Equal(t, FormatDateToMMDDYYYY(testNow.AddDate(0, 0, defaultFallbackDays)), est.ExpirationDate)
	assert.Contains(t, est.EstimationText, "Defaulting to 7 days")
}

func TestEstimateFallsBackWithoutPredictorURL(t *testing.T) {
	e := newTestEstimator("")

	est := e.Estimate(context.Background(), "Dragonfruit", "", true)
	assert.Equal(t, defaultFallbackDays, est.DaysUntilExpiry)
}

func TestPredictDate(t *testing.T) {
	e := newTestEstimator("")

	assert.Equal(t, testNow.AddDate(0, 0, 5).Format("2006-01-02"), e.PredictDate("milk", true))
	assert.Equal(t, testNow.AddDate(0, 0, defaultFallbackDays).Format("2006-01-02"), e.PredictDate("dragonfruit", true))
}

func TestRecordTableIsConsistent(t *testing.T) {
	e := newTestEstimator("")

	for _, rec := range Records {
		require.NotEmpty(t, rec.Keywords, "record %q has no keywords", rec.Category)
		assert.LessOrEqual(t, rec.MinDays, rec.MaxDays, "record %q", rec.Category)
		assert.LessOrEqual(t, rec.MinDays, rec.RefrigeratedDays, "record %q", rec.Category)
		assert.Greater(t, rec.MinDays, 0, "record %q", rec.Category)

		// Every keyword resolves to some record, and estimating by that
		// keyword uses the matched record's conservative window.
		for _, kw := range rec.Keywords {
			matched, ok := findRecord(kw)
			require.True(t, ok, "keyword %q matched nothing", kw)

			est := e.Estimate(context.Background(), kw, "", true)
			assert.Equal(t, matched.MinDays, est.DaysUntilExpiry, "keyword %q", kw)
			assert.True(t, est.IsEarliestDate, "keyword %q", kw)
		}
	}
}
