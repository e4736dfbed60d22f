package request

import "github.com/fiistracker/fii-income-tracker-backend/internal/model"

// MonthRecordRequest is the payload for registering or editing a monthly
// record. Field names match the persisted record shape; dividend_total may
// be null, in which case the repository derives it.
type MonthRecordRequest struct {
	Month           string   `json:"month"`
	UnitsAdded      float64  `json:"units_added"`
	PricePerUnit    float64  `json:"price_per_unit"`
	DividendPerUnit float64  `json:"dividend_per_unit"`
	DividendTotal   *float64 `json:"dividend_total"`
	Notes           string   `json:"notes"`
}

// ToModel converts the payload into a domain record.
func (r MonthRecordRequest) ToModel() model.MonthlyRecord {
	return model.MonthlyRecord{
		Month:           r.Month,
		UnitsAdded:      r.UnitsAdded,
		PricePerUnit:    r.PricePerUnit,
		DividendPerUnit: r.DividendPerUnit,
		DividendTotal:   r.DividendTotal,
		Notes:           r.Notes,
	}
}
