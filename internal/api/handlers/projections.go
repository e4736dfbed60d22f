package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fiistracker/fii-income-tracker-backend/internal/api/request"
	"github.com/fiistracker/fii-income-tracker-backend/internal/api/response"
	"github.com/fiistracker/fii-income-tracker-backend/internal/apperrors"
	"github.com/fiistracker/fii-income-tracker-backend/internal/service"
	"github.com/fiistracker/fii-income-tracker-backend/internal/validation"
)

// ProjectionHandler handles HTTP requests for income projections.
type ProjectionHandler struct {
	projectionService *service.ProjectionService
}

// NewProjectionHandler creates a new ProjectionHandler with the provided service dependency.
func NewProjectionHandler(projectionService *service.ProjectionService) *ProjectionHandler {
	return &ProjectionHandler{
		projectionService: projectionService,
	}
}

// FundProjection handles GET requests to simulate a single fund's income,
// including whole-unit dividend reinvestment.
//
// Endpoint: GET /api/fund/{ticker}/projection?months=12&monthly_units=1&window=6
// Response: 200 OK with array of ProjectionPoint
// Error: 400 Bad Request if a query parameter is malformed or out of range
// Error: 404 Not Found if the ticker is unknown
func (h *ProjectionHandler) FundProjection(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")

	query, err := request.ParseProjectionQuery(r.URL.Query())
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid projection parameters", err.Error())
		return
	}
	if err := validation.ValidateProjectionHorizon(query.Months); err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidProjectionHorizon.Error(), err.Error())
		return
	}

	points, err := h.projectionService.ProjectIncome(ticker, query.Months, query.MonthlyUnits, query.Window)
	if err != nil {
		if errors.Is(err, apperrors.ErrFundNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrFundNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "projection failed", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, points)
}

// PortfolioProjection handles GET requests to simulate the whole portfolio.
// The per-fund monthly plan comes from the plan query parameter; funds it
// does not name add no units. Portfolio projections never reinvest.
//
// Endpoint: GET /api/portfolio/projection?months=12&window=6&plan=KNRI11:2,HGLG11:1
// Response: 200 OK with array of ProjectionPoint (empty for an empty portfolio)
// Error: 400 Bad Request if a query parameter is malformed or out of range
func (h *ProjectionHandler) PortfolioProjection(w http.ResponseWriter, r *http.Request) {
	query, err := request.ParseProjectionQuery(r.URL.Query())
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid projection parameters", err.Error())
		return
	}
	if err := validation.ValidateProjectionHorizon(query.Months); err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidProjectionHorizon.Error(), err.Error())
		return
	}

	points := h.projectionService.ProjectPortfolio(query.Months, query.Plan, query.Window)
	response.RespondJSON(w, http.StatusOK, points)
}
