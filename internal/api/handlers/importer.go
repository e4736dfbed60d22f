package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fiistracker/fii-income-tracker-backend/internal/api/request"
	"github.com/fiistracker/fii-income-tracker-backend/internal/api/response"
	"github.com/fiistracker/fii-income-tracker-backend/internal/apperrors"
	"github.com/fiistracker/fii-income-tracker-backend/internal/service"
)

// ImportHandler handles HTTP requests for portfolio snapshot imports.
type ImportHandler struct {
	importService *service.ImportService
}

// NewImportHandler creates a new ImportHandler with the provided service dependency.
func NewImportHandler(importService *service.ImportService) *ImportHandler {
	return &ImportHandler{
		importService: importService,
	}
}

// ImportResponse is returned after a successful snapshot import.
type ImportResponse struct {
	Status   string                 `json:"status"`
	Imported []service.ImportResult `json:"imported"`
}

// Import handles POST requests to mirror a portfolio snapshot into the
// relational catalog. Re-importing the same snapshot is idempotent.
//
// Endpoint: POST /api/import
// Response: 201 Created with per-fund import counts
// Error: 400 Bad Request if the payload is missing funds or has a bad month key
// Error: 500 Internal Server Error if the import transaction fails
func (h *ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req request.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.Funds == nil {
		response.RespondError(w, http.StatusBadRequest, "invalid payload", "funds field is required")
		return
	}

	imported, err := h.importService.ImportSnapshot(req.Funds)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidMonth) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidMonth.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToImportSnapshot.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, ImportResponse{Status: "ok", Imported: imported})
}
