package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fiistracker/fii-income-tracker-backend/internal/model"
	"github.com/fiistracker/fii-income-tracker-backend/internal/month"
)

// ImportService mirrors portfolio snapshots into a SQLite catalog so other
// tooling can query the history relationally. Imports are idempotent: funds
// upsert by ticker and entries upsert by (ticker, month).
type ImportService struct {
	db *sql.DB
}

// NewImportService creates a new ImportService on the given database.
func NewImportService(db *sql.DB) *ImportService {
	return &ImportService{db: db}
}

// ImportResult summarizes one imported fund.
type ImportResult struct {
	Ticker  string `json:"ticker"`
	Entries int    `json:"entries"`
}

// ImportSnapshot upserts the given funds and their entries inside a single
// transaction. Funds with an empty ticker are skipped, matching the lenient
// snapshot contract; a malformed month key aborts the import.
func (s *ImportService) ImportSnapshot(funds []model.Fund) ([]ImportResult, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin import transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	imported := make([]ImportResult, 0, len(funds))

	for _, fund := range funds {
		ticker := strings.ToUpper(strings.TrimSpace(fund.Ticker))
		if ticker == "" {
			continue
		}
		name := fund.Name
		if name == "" {
			name = ticker
		}

		// Per-fund summary columns are recomputed from the snapshot itself.
		totalUnits := fund.TotalUnits()
		averagePrice := 0.0
		if totalUnits > 0 {
			averagePrice = fund.TotalInvested() / totalUnits
		}

		_, err := tx.Exec(`
			INSERT INTO fund_catalog (ticker, name, sector, total_units, average_price, imported_at)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT (ticker) DO UPDATE SET
				name = excluded.name,
				sector = excluded.sector,
				total_units = excluded.total_units,
				average_price = excluded.average_price,
				imported_at = excluded.imported_at
		`, ticker, name, fund.Sector, totalUnits, averagePrice, now)
		if err != nil {
			return nil, fmt.Errorf("failed to upsert fund %s: %w", ticker, err)
		}

		for _, entry := range fund.Entries {
			monthKey, err := month.Normalize(entry.Month)
			if err != nil {
				return nil, err
			}

			var dividendTotal sql.NullFloat64
			if entry.DividendTotal != nil {
				dividendTotal = sql.NullFloat64{Float64: *entry.DividendTotal, Valid: true}
			}

			_, err = tx.Exec(`
				INSERT INTO entry (id, ticker, month, units_added, price_per_unit, dividend_per_unit, dividend_total, notes, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT (ticker, month) DO UPDATE SET
					units_added = excluded.units_added,
					price_per_unit = excluded.price_per_unit,
					dividend_per_unit = excluded.dividend_per_unit,
					dividend_total = excluded.dividend_total,
					notes = excluded.notes
			`, uuid.NewString(), ticker, monthKey, entry.UnitsAdded, entry.PricePerUnit,
				entry.DividendPerUnit, dividendTotal, entry.Notes, now)
			if err != nil {
				return nil, fmt.Errorf("failed to upsert entry %s/%s: %w", ticker, monthKey, err)
			}
		}

		imported = append(imported, ImportResult{Ticker: ticker, Entries: len(fund.Entries)})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit import transaction: %w", err)
	}
	return imported, nil
}

// CountEntries returns the number of entry rows stored for a ticker.
func (s *ImportService) CountEntries(ticker string) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM entry WHERE ticker = ?`,
		strings.ToUpper(strings.TrimSpace(ticker))).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return count, nil
}
