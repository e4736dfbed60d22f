// Package month implements the canonical year-month key used throughout the
// tracker. Keys are normalized to YYYY-MM so that plain string comparison is
// also chronological comparison.
package month

import (
	"fmt"
	"strings"
	"time"

	"github.com/fiistracker/fii-income-tracker-backend/internal/apperrors"
)

// Layout is the canonical key format (zero-padded, string-orderable).
const Layout = "2006-01"

// Normalize parses a user-supplied month key and returns its canonical
// YYYY-MM form. Accepted inputs: "2024-03", "2024/03" and the bare six-digit
// "202403". Anything that does not parse as a real calendar year-month
// (e.g. "2024-13") fails with apperrors.ErrInvalidMonth.
//
// Every month key must pass through Normalize before it is stored, compared
// or used as a projection index.
func Normalize(raw string) (string, error) {
	sanitized := strings.ReplaceAll(strings.TrimSpace(raw), "/", "-")
	if len(sanitized) == 6 && isDigits(sanitized) {
		sanitized = sanitized[:4] + "-" + sanitized[4:]
	}

	parsed, err := time.Parse(Layout, sanitized)
	if err != nil {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidMonth, raw)
	}
	return parsed.Format(Layout), nil
}

// After returns the month key offset calendar months after reference.
// The reference must already be in canonical form. Offsets larger than a
// year and multi-year carries are handled by integer month arithmetic.
func After(reference string, offset int) string {
	parsed, err := time.Parse(Layout, reference)
	if err != nil {
		// Callers only pass normalized keys; fall back to the current month
		// rather than propagate an impossible error.
		parsed = time.Now()
	}

	total := parsed.Year()*12 + int(parsed.Month()) - 1 + offset
	year := total / 12
	m := total%12 + 1
	return fmt.Sprintf("%04d-%02d", year, m)
}

// Current returns the canonical key for the current calendar month.
func Current() string {
	return time.Now().Format(Layout)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
