package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fiistracker/fii-income-tracker-backend/internal/model"
	"github.com/fiistracker/fii-income-tracker-backend/internal/storage"
)

func newTestStore(t *testing.T) *storage.FileStore {
	t.Helper()
	return storage.NewFileStore(filepath.Join(t.TempDir(), "funds_data.json"))
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)

	total := 50.0
	payload := storage.Payload{
		Funds: []model.Fund{
			{
				Ticker: "ABCD11",
				Name:   "Fundo ABCD",
				Sector: "Logistics",
				Entries: []model.MonthlyRecord{
					{Month: "2024-01", UnitsAdded: 100, PricePerUnit: 10, DividendPerUnit: 0.5, DividendTotal: &total},
					{Month: "2024-02", UnitsAdded: 0, DividendPerUnit: 0.55, Notes: "dividend only"},
				},
			},
		},
	}

	if err := store.Save(payload); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if len(loaded.Funds) != 1 {
		t.Fatalf("Load() returned %d funds, want 1", len(loaded.Funds))
	}
	fund := loaded.Funds[0]
	if fund.Ticker != "ABCD11" || fund.Sector != "Logistics" {
		t.Errorf("Loaded fund = %+v", fund)
	}
	if len(fund.Entries) != 2 {
		t.Fatalf("Loaded fund has %d entries, want 2", len(fund.Entries))
	}
	if fund.Entries[0].DividendTotal == nil || *fund.Entries[0].DividendTotal != 50.0 {
		t.Errorf("explicit dividend total not preserved: %+v", fund.Entries[0])
	}
	if fund.Entries[1].DividendTotal != nil {
		t.Errorf("absent dividend total should stay nil: %+v", fund.Entries[1])
	}
}

func TestFileStoreLoadMissingFile(t *testing.T) {
	store := newTestStore(t)

	payload, err := store.Load()
	if err != nil {
		t.Fatalf("Load() on missing file returned error: %v", err)
	}
	if len(payload.Funds) != 0 {
		t.Errorf("Load() on missing file returned %d funds, want 0", len(payload.Funds))
	}
}

func TestFileStoreLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "funds_data.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	store := storage.NewFileStore(path)

	payload, err := store.Load()
	if err != nil {
		t.Fatalf("Load() on corrupt file returned error: %v", err)
	}
	if len(payload.Funds) != 0 {
		t.Errorf("Load() on corrupt file returned %d funds, want 0", len(payload.Funds))
	}
}

func TestFileStoreCreateBackup(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save(storage.Payload{Funds: []model.Fund{{Ticker: "XPTO11", Name: "X"}}}); err != nil {
		t.Fatal(err)
	}

	backupPath, err := store.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() returned error: %v", err)
	}
	if !strings.Contains(filepath.Base(backupPath), "funds_data_backup_") {
		t.Errorf("unexpected backup name: %s", backupPath)
	}

	data, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if !strings.Contains(string(data), "XPTO11") {
		t.Error("backup does not contain portfolio data")
	}
}
