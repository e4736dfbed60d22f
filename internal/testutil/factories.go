package testutil

import (
	"testing"

	"github.com/fiistracker/fii-income-tracker-backend/internal/model"
	"github.com/fiistracker/fii-income-tracker-backend/internal/repository"
)

// FundBuilder provides a fluent interface for seeding test funds.
//
// Example usage:
//
//	// Simple creation with defaults
//	fund := testutil.NewFund().Build(t, repo)
//
//	// Customized fund with history
//	fund := testutil.NewFund().
//	    WithTicker("KNRI11").
//	    WithSector("Offices").
//	    WithRecord(testutil.NewRecord().WithMonth("2024-01").WithUnits(100, 10)).
//	    Build(t, repo)
type FundBuilder struct {
	Ticker  string
	Name    string
	Sector  string
	Records []*RecordBuilder
}

// NewFund creates a FundBuilder with sensible defaults.
func NewFund() *FundBuilder {
	return &FundBuilder{
		Ticker: "TEST11",
		Name:   "Test Fund",
		Sector: "Logistics",
	}
}

// WithTicker sets a custom ticker.
func (b *FundBuilder) WithTicker(ticker string) *FundBuilder {
	b.Ticker = ticker
	return b
}

// WithName sets a custom name.
func (b *FundBuilder) WithName(name string) *FundBuilder {
	b.Name = name
	return b
}

// WithSector sets a custom sector.
func (b *FundBuilder) WithSector(sector string) *FundBuilder {
	b.Sector = sector
	return b
}

// WithRecord queues a monthly record to register after the fund is created.
func (b *FundBuilder) WithRecord(record *RecordBuilder) *FundBuilder {
	b.Records = append(b.Records, record)
	return b
}

// Build registers the fund (and any queued records) in the repository and
// returns the repository-owned fund.
func (b *FundBuilder) Build(t *testing.T, repo *repository.PortfolioRepository) *model.Fund {
	t.Helper()

	fund, err := repo.AddOrUpdateFund(b.Ticker, b.Name, b.Sector)
	if err != nil {
		t.Fatalf("Failed to build test fund: %v", err)
	}
	for _, record := range b.Records {
		if _, err := repo.RegisterMonth(fund.Ticker, record.Record()); err != nil {
			t.Fatalf("Failed to register test record: %v", err)
		}
	}
	return fund
}

// RecordBuilder provides a fluent interface for monthly records.
type RecordBuilder struct {
	record model.MonthlyRecord
}

// NewRecord creates a RecordBuilder for a default month.
func NewRecord() *RecordBuilder {
	return &RecordBuilder{record: model.MonthlyRecord{Month: "2024-01"}}
}

// WithMonth sets the month key.
func (b *RecordBuilder) WithMonth(month string) *RecordBuilder {
	b.record.Month = month
	return b
}

// WithUnits sets the units purchased and their price.
func (b *RecordBuilder) WithUnits(units, pricePerUnit float64) *RecordBuilder {
	b.record.UnitsAdded = units
	b.record.PricePerUnit = pricePerUnit
	return b
}

// WithDividend sets the per-unit dividend.
func (b *RecordBuilder) WithDividend(perUnit float64) *RecordBuilder {
	b.record.DividendPerUnit = perUnit
	return b
}

// WithDividendTotal sets an explicit dividend total.
func (b *RecordBuilder) WithDividendTotal(total float64) *RecordBuilder {
	b.record.DividendTotal = &total
	return b
}

// WithNotes sets free-text notes.
func (b *RecordBuilder) WithNotes(notes string) *RecordBuilder {
	b.record.Notes = notes
	return b
}

// Record returns the built record value.
func (b *RecordBuilder) Record() model.MonthlyRecord {
	return b.record
}
