package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrFundNotFound indicates that a fund with the given ticker does not exist.
	ErrFundNotFound = errors.New("fund not found")

	// ErrMonthNotFound indicates no record for a specific fund and month combination.
	ErrMonthNotFound = errors.New("month record not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidMonth indicates that a month key could not be parsed as a
	// calendar year-month (expected YYYY-MM, YYYY/MM or YYYYMM).
	ErrInvalidMonth = errors.New("invalid month format")

	// ErrInvalidTicker indicates that a required ticker is empty or malformed.
	ErrInvalidTicker = errors.New("invalid ticker")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidProjectionHorizon indicates a non-positive or oversized months parameter.
	ErrInvalidProjectionHorizon = errors.New("projection horizon must be between 1 and 600 months")

	// ErrMissingRequiredField indicates that a required field is missing or empty.
	ErrMissingRequiredField = errors.New("missing required field")
)

// Operation failure errors represent system-level failures when persisting or
// processing data. These errors indicate that an operation failed, but not due
// to missing entities or validation issues.
var (
	ErrFailedToPersistPortfolio = errors.New("failed to persist portfolio")
	ErrFailedToImportSnapshot   = errors.New("failed to import snapshot")
)
