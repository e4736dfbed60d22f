package request

// CreateFundRequest is the add-or-update fund payload. Empty name/sector on
// an existing fund preserve the stored values.
type CreateFundRequest struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
	Sector string `json:"sector"`
}
