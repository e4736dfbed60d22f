package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fiistracker/fii-income-tracker-backend/internal/api/request"
	"github.com/fiistracker/fii-income-tracker-backend/internal/api/response"
	"github.com/fiistracker/fii-income-tracker-backend/internal/apperrors"
	"github.com/fiistracker/fii-income-tracker-backend/internal/service"
	"github.com/fiistracker/fii-income-tracker-backend/internal/validation"
)

// MonthHandler handles HTTP requests for a fund's monthly records.
type MonthHandler struct {
	portfolioService *service.PortfolioService
}

// NewMonthHandler creates a new MonthHandler with the provided service dependency.
func NewMonthHandler(portfolioService *service.PortfolioService) *MonthHandler {
	return &MonthHandler{
		portfolioService: portfolioService,
	}
}

// RegisterMonth handles POST requests to add a monthly record to a fund.
// Posting an existing month replaces that month's record in place.
//
// Endpoint: POST /api/fund/{ticker}/months
// Response: 201 Created with the stored MonthlyRecord
// Error: 400 Bad Request if the payload or month key is invalid
// Error: 404 Not Found if the ticker is unknown
func (h *MonthHandler) RegisterMonth(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")

	var req request.MonthRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := validation.ValidateMonthRecord(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	record, err := h.portfolioService.RegisterMonth(ticker, req.ToModel())
	if err != nil {
		if errors.Is(err, apperrors.ErrFundNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrFundNotFound.Error(), err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrInvalidMonth) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidMonth.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToPersistPortfolio.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, record)
}

// UpdateMonth handles PUT requests to edit the record stored under a month.
// The updated payload may carry a different month key, moving the record.
//
// Endpoint: PUT /api/fund/{ticker}/months/{month}
// Response: 200 OK with the updated MonthlyRecord
// Error: 400 Bad Request if the payload or month key is invalid
// Error: 404 Not Found if the ticker or original month is unknown
func (h *MonthHandler) UpdateMonth(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")
	originalMonth := chi.URLParam(r, "month")

	var req request.MonthRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := validation.ValidateMonthRecord(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	record, err := h.portfolioService.UpdateMonthRecord(ticker, originalMonth, req.ToModel())
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrFundNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrFundNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrMonthNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrMonthNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrInvalidMonth):
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidMonth.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToPersistPortfolio.Error(), err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, record)
}
