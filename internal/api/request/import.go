package request

import "github.com/fiistracker/fii-income-tracker-backend/internal/model"

// ImportRequest is the snapshot payload accepted by POST /api/import. The
// shape matches the persisted portfolio document.
type ImportRequest struct {
	Funds []model.Fund `json:"funds"`
}
