package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fiistracker/fii-income-tracker-backend/internal/api"
	"github.com/fiistracker/fii-income-tracker-backend/internal/config"
	"github.com/fiistracker/fii-income-tracker-backend/internal/database"
	"github.com/fiistracker/fii-income-tracker-backend/internal/repository"
	"github.com/fiistracker/fii-income-tracker-backend/internal/scheduler"
	"github.com/fiistracker/fii-income-tracker-backend/internal/service"
	"github.com/fiistracker/fii-income-tracker-backend/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open the portfolio data file
	store := storage.NewFileStore(cfg.Storage.DataPath)
	repo, err := repository.NewPortfolioRepository(store)
	if err != nil {
		log.Fatalf("Failed to load portfolio: %v", err)
	}
	log.Printf("Loaded portfolio from %s (%d funds)", cfg.Storage.DataPath, len(repo.Funds()))

	// Open the snapshot-import database
	db, err := database.Open(cfg.Storage.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Printf("Connected to import database: %s", cfg.Storage.DBPath)

	// Create services
	portfolioService := service.NewPortfolioService(repo)
	projectionService := service.NewProjectionService(repo)
	importService := service.NewImportService(db)

	// Create router
	router := api.NewRouter(portfolioService, projectionService, importService, db, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Schedule automatic data-file backups
	sched := scheduler.New()
	if cfg.Backup.Schedule != "" {
		job := &scheduler.BackupJob{Backup: store.CreateBackup}
		if err := sched.AddJob(cfg.Backup.Schedule, job); err != nil {
			log.Fatalf("Failed to schedule backup job: %v", err)
		}
	}
	sched.Start()

	// Run the server until an interrupt arrives
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Println("Shutting down server...")

		sched.Stop()

		// Graceful shutdown with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}

	log.Println("Server exited")
}
