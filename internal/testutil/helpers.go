package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/fiistracker/fii-income-tracker-backend/internal/repository"
	"github.com/fiistracker/fii-income-tracker-backend/internal/service"
	"github.com/fiistracker/fii-income-tracker-backend/internal/storage"
)

// NewTestStore creates a file store backed by a throwaway temp directory.
func NewTestStore(t *testing.T) *storage.FileStore {
	t.Helper()
	return storage.NewFileStore(filepath.Join(t.TempDir(), "funds_data.json"))
}

// NewTestRepository creates a repository on a fresh temp data file.
func NewTestRepository(t *testing.T) *repository.PortfolioRepository {
	t.Helper()

	repo, err := repository.NewPortfolioRepository(NewTestStore(t))
	if err != nil {
		t.Fatalf("Failed to create test repository: %v", err)
	}
	return repo
}

func NewTestPortfolioService(t *testing.T, repo *repository.PortfolioRepository) *service.PortfolioService {
	t.Helper()
	return service.NewPortfolioService(repo)
}

func NewTestProjectionService(t *testing.T, repo *repository.PortfolioRepository) *service.ProjectionService {
	t.Helper()
	return service.NewProjectionService(repo)
}

func NewTestImportService(t *testing.T, db *sql.DB) *service.ImportService {
	t.Helper()
	return service.NewImportService(db)
}
