package handlers

import (
	"net/http"

	"github.com/fiistracker/fii-income-tracker-backend/internal/api/response"
	"github.com/fiistracker/fii-income-tracker-backend/internal/service"
)

// PortfolioHandler handles HTTP requests for portfolio-wide operations.
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler with the provided service dependency.
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// Summary handles GET requests for portfolio-wide totals.
//
// Endpoint: GET /api/portfolio/summary
// Response: 200 OK with PortfolioSummary
func (h *PortfolioHandler) Summary(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, h.portfolioService.Summary())
}

// Reload handles POST requests to re-read the data file from disk,
// discarding the in-memory fund set.
//
// Endpoint: POST /api/portfolio/reload
// Response: 200 OK with the refreshed fund summaries
// Error: 500 Internal Server Error if the data file cannot be read
func (h *PortfolioHandler) Reload(w http.ResponseWriter, _ *http.Request) {
	if err := h.portfolioService.Reload(); err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to reload portfolio", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, h.portfolioService.ListFunds())
}

// Backup handles POST requests to snapshot the data file.
//
// Endpoint: POST /api/portfolio/backup
// Response: 201 Created with the backup file path
// Error: 500 Internal Server Error if the backup cannot be written
func (h *PortfolioHandler) Backup(w http.ResponseWriter, _ *http.Request) {
	backupPath, err := h.portfolioService.Backup()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create backup", err.Error())
		return
	}
	response.RespondJSON(w, http.StatusCreated, map[string]string{"backup_path": backupPath})
}
