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

// FundHandler handles HTTP requests for fund endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the portfolio service.
type FundHandler struct {
	portfolioService *service.PortfolioService
}

// NewFundHandler creates a new FundHandler with the provided service dependency.
func NewFundHandler(portfolioService *service.PortfolioService) *FundHandler {
	return &FundHandler{
		portfolioService: portfolioService,
	}
}

// Funds handles GET requests to retrieve all funds with derived metrics.
//
// Endpoint: GET /api/fund/
// Response: 200 OK with array of FundSummary
func (h *FundHandler) Funds(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, h.portfolioService.ListFunds())
}

// CreateFund handles POST requests to register a fund or update its
// name/sector. Empty replacement values preserve what is stored.
//
// Endpoint: POST /api/fund/
// Response: 201 Created with FundSummary for a new fund, 200 OK on update
// Error: 400 Bad Request if the payload is invalid
func (h *FundHandler) CreateFund(w http.ResponseWriter, r *http.Request) {
	var req request.CreateFundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	isNew := h.portfolioService.GetFund(req.Ticker) == nil
	if err := validation.ValidateCreateFund(req, isNew); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	summary, err := h.portfolioService.AddOrUpdateFund(req.Ticker, req.Name, req.Sector)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidTicker) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidTicker.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToPersistPortfolio.Error(), err.Error())
		return
	}

	status := http.StatusOK
	if isNew {
		status = http.StatusCreated
	}
	response.RespondJSON(w, status, summary)
}

// GetFund handles GET requests to retrieve one fund with its full history.
//
// Endpoint: GET /api/fund/{ticker}
// Response: 200 OK with Fund
// Error: 404 Not Found if the ticker is unknown
func (h *FundHandler) GetFund(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")

	fund := h.portfolioService.GetFund(ticker)
	if fund == nil {
		response.RespondError(w, http.StatusNotFound, apperrors.ErrFundNotFound.Error(), ticker)
		return
	}
	response.RespondJSON(w, http.StatusOK, fund)
}
