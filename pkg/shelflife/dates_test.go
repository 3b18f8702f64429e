package shelflife

import (
	"testing"
	"time"

	"pantry-tracker-api/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)

func TestExpiryStatusAt(t *testing.T) {
	cases := []struct {
		name     string
		daysAway int
		want     string
	}{
		{"yesterday is expired", -1, StatusExpired},
		{"today is expiring soon", 0, StatusExpiringSoon},
		{"three days is expiring soon", 3, StatusExpiringSoon},
		{"four days is warning", 4, StatusWarning},
		{"seven days is warning", 7, StatusWarning},
		{"eight days is fresh", 8, StatusFresh},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			expiry := testNow.AddDate(0, 0, tc.daysAway)
			assert.Equal(t, tc.want, ExpiryStatusAt(testNow, expiry))
		})
	}
}

func TestDaysBetweenTruncatesToMidnight(t *testing.T) {
	// The clock never shifts the day count: an expiry later today is 0 days
	// away, earlier yesterday is -1, early tomorrow is 1.
	assert.Equal(t, 0, DaysBetween(testNow, time.Date(2026, time.March, 10, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, -1, DaysBetween(testNow, time.Date(2026, time.March, 9, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, 1, DaysBetween(testNow, time.Date(2026, time.March, 11, 0, 1, 0, 0, time.UTC)))
	assert.Equal(t, 7, DaysBetween(testNow, testNow.AddDate(0, 0, 7)))
}

func TestExpiryStatusIgnoresTimeOfDay(t *testing.T) {
	// An item expiring later today is still "today" regardless of the clock.
	lateToday := time.Date(2026, time.March, 10, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, StatusExpiringSoon, ExpiryStatusAt(testNow, lateToday))

	earlyYesterday := time.Date(2026, time.March, 9, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, StatusExpired, ExpiryStatusAt(testNow, earlyYesterday))
}

func TestFormatExpirationTextAt(t *testing.T) {
	cases := []struct {
		daysAway int
		want     string
	}{
		{-3, "Expired 3 days ago"},
		{-1, "Expired 1 day ago"},
		{0, "Expires today"},
		{1, "Expires tomorrow"},
		{5, "Expires in 5 days"},
		{7, "Expires in 7 days"},
		{10, "Expires in 1 week"},
		{20, "Expires in 3 weeks"},
		{31, "Expires in 1 month"},
		{45, "Expires in 2 months"},
	}

	for _, tc := range cases {
		expiry := testNow.AddDate(0, 0, tc.daysAway)
		assert.Equal(t, tc.want, FormatExpirationTextAt(testNow, expiry), "days away: %d", tc.daysAway)
	}
}

func TestParseMMDDYYYY(t *testing.T) {
	parsed, err := ParseMMDDYYYY("12/31/2026")
	require.NoError(t, err)
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.December, parsed.Month())
	assert.Equal(t, 31, parsed.Day())

	invalid := []string{
		"2026-12-31",
		"12/31",
		"13/01/2026",
		"00/15/2026",
		"01/32/2026",
		"01/01/2020",
		"ab/cd/2026",
		"",
	}
	for _, s := range invalid {
		_, err := ParseMMDDYYYY(s)
		assert.ErrorIs(t, err, domain.ErrInvalidDate, "input: %q", s)
	}
}

func TestParseMMDDYYYYToISO(t *testing.T) {
	iso, err := ParseMMDDYYYYToISO("03/05/2026")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-05", iso)

	_, err = ParseMMDDYYYYToISO("not a date")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestFormatDateToMMDDYYYY(t *testing.T) {
	assert.Equal(t, "03/10/2026", FormatDateToMMDDYYYY(testNow))
}
