package service_test

import (
	"errors"
	"testing"

	"github.com/fiistracker/fii-income-tracker-backend/internal/apperrors"
	"github.com/fiistracker/fii-income-tracker-backend/internal/model"
	"github.com/fiistracker/fii-income-tracker-backend/internal/service"
	"github.com/fiistracker/fii-income-tracker-backend/internal/testutil"
)

func snapshotFund() model.Fund {
	total := 50.0
	return model.Fund{
		Ticker: "abcd11",
		Name:   "Fundo ABCD",
		Sector: "Logistics",
		Entries: []model.MonthlyRecord{
			{Month: "2024-01", UnitsAdded: 100, PricePerUnit: 10, DividendPerUnit: 0.5, DividendTotal: &total},
			{Month: "2024/02", UnitsAdded: 10, PricePerUnit: 11, DividendPerUnit: 0.5},
		},
	}
}

func TestImportSnapshot(t *testing.T) {
	t.Run("imports funds and entries", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		importer := service.NewImportService(db)

		results, err := importer.ImportSnapshot([]model.Fund{snapshotFund()})
		if err != nil {
			t.Fatalf("ImportSnapshot() returned error: %v", err)
		}
		if len(results) != 1 || results[0].Ticker != "ABCD11" || results[0].Entries != 2 {
			t.Fatalf("results = %+v", results)
		}

		count, err := importer.CountEntries("ABCD11")
		if err != nil {
			t.Fatal(err)
		}
		if count != 2 {
			t.Errorf("CountEntries() = %d, want 2", count)
		}

		var name string
		var totalUnits, averagePrice float64
		err = db.QueryRow(`SELECT name, total_units, average_price FROM fund_catalog WHERE ticker = ?`, "ABCD11").
			Scan(&name, &totalUnits, &averagePrice)
		if err != nil {
			t.Fatalf("fund_catalog row missing: %v", err)
		}
		if name != "Fundo ABCD" || totalUnits != 110 {
			t.Errorf("catalog row = %q/%v, want Fundo ABCD/110", name, totalUnits)
		}
		wantAvg := (100*10.0 + 10*11.0) / 110
		if averagePrice != wantAvg {
			t.Errorf("average_price = %v, want %v", averagePrice, wantAvg)
		}
	})

	t.Run("re-import upserts instead of duplicating", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		importer := service.NewImportService(db)

		fund := snapshotFund()
		if _, err := importer.ImportSnapshot([]model.Fund{fund}); err != nil {
			t.Fatal(err)
		}

		fund.Entries[0].UnitsAdded = 150
		if _, err := importer.ImportSnapshot([]model.Fund{fund}); err != nil {
			t.Fatal(err)
		}

		count, err := importer.CountEntries("ABCD11")
		if err != nil {
			t.Fatal(err)
		}
		if count != 2 {
			t.Errorf("CountEntries() after re-import = %d, want 2", count)
		}

		var units float64
		if err := db.QueryRow(`SELECT units_added FROM entry WHERE ticker = ? AND month = ?`, "ABCD11", "2024-01").Scan(&units); err != nil {
			t.Fatal(err)
		}
		if units != 150 {
			t.Errorf("units_added = %v, want 150", units)
		}
	})

	t.Run("skips funds without a ticker", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		importer := service.NewImportService(db)

		results, err := importer.ImportSnapshot([]model.Fund{{Name: "anonymous"}})
		if err != nil {
			t.Fatal(err)
		}
		if len(results) != 0 {
			t.Errorf("results = %+v, want none", results)
		}
	})

	t.Run("malformed month aborts the import", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		importer := service.NewImportService(db)

		fund := snapshotFund()
		fund.Entries[1].Month = "2024-13"
		if _, err := importer.ImportSnapshot([]model.Fund{fund}); !errors.Is(err, apperrors.ErrInvalidMonth) {
			t.Fatalf("error = %v, want ErrInvalidMonth", err)
		}

		// The transaction rolled back; nothing was written.
		count, err := importer.CountEntries("ABCD11")
		if err != nil {
			t.Fatal(err)
		}
		if count != 0 {
			t.Errorf("CountEntries() after failed import = %d, want 0", count)
		}
	})
}
