package api

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fiistracker/fii-income-tracker-backend/internal/api/handlers"
	custommiddleware "github.com/fiistracker/fii-income-tracker-backend/internal/api/middleware"
	"github.com/fiistracker/fii-income-tracker-backend/internal/config"
	"github.com/fiistracker/fii-income-tracker-backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	portfolioService *service.PortfolioService,
	projectionService *service.ProjectionService,
	importService *service.ImportService,
	db *sql.DB,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(db)
			r.Get("/health", systemHandler.Health)
		})

		r.Route("/fund", func(r chi.Router) {
			fundHandler := handlers.NewFundHandler(portfolioService)
			monthHandler := handlers.NewMonthHandler(portfolioService)
			projectionHandler := handlers.NewProjectionHandler(projectionService)

			r.Get("/", fundHandler.Funds)
			r.Post("/", fundHandler.CreateFund)

			r.Route("/{ticker}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateTickerMiddleware)
				r.Get("/", fundHandler.GetFund)
				r.Get("/projection", projectionHandler.FundProjection)
				r.Post("/months", monthHandler.RegisterMonth)
				r.Put("/months/{month}", monthHandler.UpdateMonth)
			})
		})

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
			projectionHandler := handlers.NewProjectionHandler(projectionService)

			r.Get("/summary", portfolioHandler.Summary)
			r.Get("/projection", projectionHandler.PortfolioProjection)
			r.Post("/reload", portfolioHandler.Reload)
			r.Post("/backup", portfolioHandler.Backup)
		})

		importHandler := handlers.NewImportHandler(importService)
		r.Post("/import", importHandler.Import)
	})

	return r
}
