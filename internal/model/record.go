package model

// MonthlyRecord represents one month's purchase/dividend observation for a
// fund. A fund holds at most one record per month key; the JSON field names
// match the persisted storage shape.
type MonthlyRecord struct {
	Month           string   `json:"month"` // canonical YYYY-MM key
	UnitsAdded      float64  `json:"units_added"`
	PricePerUnit    float64  `json:"price_per_unit"`
	DividendPerUnit float64  `json:"dividend_per_unit"`
	DividendTotal   *float64 `json:"dividend_total"` // nil when not reported; derivable
	Notes           string   `json:"notes"`
}

// DividendReceived returns the dividend amount this record contributed.
// An explicitly reported total wins; otherwise it is derived from the
// per-unit dividend and the units added that month.
func (r MonthlyRecord) DividendReceived() float64 {
	if r.DividendTotal != nil {
		return *r.DividendTotal
	}
	if r.DividendPerUnit > 0 && r.UnitsAdded > 0 {
		return r.DividendPerUnit * r.UnitsAdded
	}
	return 0
}
