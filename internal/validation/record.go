package validation

import (
	"fmt"
	"strings"

	"github.com/fiistracker/fii-income-tracker-backend/internal/api/request"
	"github.com/fiistracker/fii-income-tracker-backend/internal/apperrors"
	"github.com/fiistracker/fii-income-tracker-backend/internal/month"
)

// ValidateMonthRecord checks a register/update month payload. The month key
// itself is checked by normalization so the caller gets the same
// ErrInvalidMonth the storage path would raise.
func ValidateMonthRecord(req request.MonthRecordRequest) error {
	if strings.TrimSpace(req.Month) == "" {
		return fmt.Errorf("%w: month", apperrors.ErrMissingRequiredField)
	}
	if _, err := month.Normalize(req.Month); err != nil {
		return err
	}

	if req.UnitsAdded < 0 {
		return fmt.Errorf("%w: units_added", apperrors.ErrNegativeAmount)
	}
	if req.PricePerUnit < 0 {
		return fmt.Errorf("%w: price_per_unit", apperrors.ErrNegativeAmount)
	}
	if req.DividendPerUnit < 0 {
		return fmt.Errorf("%w: dividend_per_unit", apperrors.ErrNegativeAmount)
	}
	if req.DividendTotal != nil && *req.DividendTotal < 0 {
		return fmt.Errorf("%w: dividend_total", apperrors.ErrNegativeAmount)
	}
	return nil
}
