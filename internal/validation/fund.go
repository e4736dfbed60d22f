package validation

import (
	"fmt"
	"strings"

	"github.com/fiistracker/fii-income-tracker-backend/internal/api/request"
	"github.com/fiistracker/fii-income-tracker-backend/internal/apperrors"
)

// ValidateCreateFund checks the add-or-update fund payload. Name is only
// required when the fund is being created for the first time; the caller
// passes isNew accordingly (an empty name on update preserves the stored one).
func ValidateCreateFund(req request.CreateFundRequest, isNew bool) error {
	if err := ValidateTicker(strings.TrimSpace(req.Ticker)); err != nil {
		return err
	}
	if isNew && strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name", apperrors.ErrMissingRequiredField)
	}
	if len(req.Name) > 100 {
		return fmt.Errorf("%w: name must be 100 characters or less", apperrors.ErrMissingRequiredField)
	}
	return nil
}
