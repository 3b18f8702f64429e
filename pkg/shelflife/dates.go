package shelflife

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"pantry-tracker-api/domain"
)

// Expiry statuses derived from the day difference between today and the
// expiration date. Boundaries: <0 expired, <=3 expiring-soon, <=7 warning.
const (
	StatusExpired      = "expired"
	StatusExpiringSoon = "expiring-soon"
	StatusWarning      = "warning"
	StatusFresh        = "fresh"
)

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween is the whole-day difference between two instants after
// truncating both to midnight, so an expiry later today is 0 days away no
// matter the clock.
func DaysBetween(from, to time.Time) int {
	return int(truncateToDay(to).Sub(truncateToDay(from)).Hours() / 24)
}

func ExpiryStatus(expiry time.Time) string {
	return ExpiryStatusAt(time.Now(), expiry)
}

func ExpiryStatusAt(now, expiry time.Time) string {
	d := DaysBetween(now, expiry)
	switch {
	case d < 0:
		return StatusExpired
	case d <= 3:
		return StatusExpiringSoon
	case d <= 7:
		return StatusWarning
	default:
		return StatusFresh
	}
}

func FormatExpirationText(expiry time.Time) string {
	return FormatExpirationTextAt(time.Now(), expiry)
}

// FormatExpirationTextAt renders a human expiry phrase. Days are used up to
// a week, weeks up to a month, months beyond that.
func FormatExpirationTextAt(now, expiry time.Time) string {
	d := DaysBetween(now, expiry)
	switch {
	case d < 0:
		if d == -1 {
			return "Expired 1 day ago"
		}
		return fmt.Sprintf("Expired %d days ago", -d)
	case d == 0:
		return "Expires today"
	case d == 1:
		return "Expires tomorrow"
	case d <= 7:
		return fmt.Sprintf("Expires in %d days", d)
	case d <= 30:
		w := int(math.Round(float64(d) / 7))
		if w == 1 {
			return "Expires in 1 week"
		}
		return fmt.Sprintf("Expires in %d weeks", w)
	default:
		m := int(math.Round(float64(d) / 30))
		if m == 1 {
			return "Expires in 1 month"
		}
		return fmt.Sprintf("Expires in %d months", m)
	}
}

// FormatDateToMMDDYYYY renders the user-facing date form.
func FormatDateToMMDDYYYY(t time.Time) string {
	return t.Format("01/02/2006")
}

// ParseMMDDYYYY parses the user-facing MM/DD/YYYY form. It rejects a wrong
// part count, non-numeric parts, month > 12, day > 31 and years before 2024.
func ParseMMDDYYYY(s string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return time.Time{}, domain.ErrInvalidDate
	}

	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, domain.ErrInvalidDate
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, domain.ErrInvalidDate
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, domain.ErrInvalidDate
	}

	if month < 1 || month > 12 {
		return time.Time{}, domain.ErrInvalidDate
	}
	if day < 1 || day > 31 {
		return time.Time{}, domain.ErrInvalidDate
	}
	if year < 2024 {
		return time.Time{}, domain.ErrInvalidDate
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), nil
}

// ParseMMDDYYYYToISO converts MM/DD/YYYY to the storage form YYYY-MM-DD.
func ParseMMDDYYYYToISO(s string) (string, error) {
	t, err := ParseMMDDYYYY(s)
	if err != nil {
		return "", err
	}
	return t.Format("2006-01-02"), nil
}
