package validation

import (
	"fmt"
	"regexp"

	"github.com/fiistracker/fii-income-tracker-backend/internal/apperrors"
)

// Fund tickers are short exchange codes like KNRI11 or HGLG11.
var tickerPattern = regexp.MustCompile(`^[A-Za-z0-9]{1,12}$`)

// ValidateTicker checks that a ticker is present and well-formed.
func ValidateTicker(ticker string) error {
	if !tickerPattern.MatchString(ticker) {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidTicker, ticker)
	}
	return nil
}

// ValidateProjectionHorizon bounds the months parameter of a projection.
// Projections are in-memory simulations; the cap keeps them cheap and the
// output renderable.
func ValidateProjectionHorizon(months int) error {
	if months < 1 || months > 600 {
		return fmt.Errorf("%w: got %d", apperrors.ErrInvalidProjectionHorizon, months)
	}
	return nil
}
