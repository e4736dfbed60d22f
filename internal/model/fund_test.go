package model_test

import (
	"testing"

	"github.com/fiistracker/fii-income-tracker-backend/internal/model"
)

func ptr(v float64) *float64 { return &v }

func TestFundDerivedMetrics(t *testing.T) {
	fund := &model.Fund{
		Ticker: "ABCD11",
		Name:   "Test Fund",
		Entries: []model.MonthlyRecord{
			{Month: "2024-01", UnitsAdded: 100, PricePerUnit: 10, DividendPerUnit: 0.3},
			{Month: "2024-02", UnitsAdded: 50, PricePerUnit: 12, DividendPerUnit: 0},
			{Month: "2024-03", UnitsAdded: 0, PricePerUnit: 0, DividendPerUnit: 0.5, DividendTotal: ptr(75.0)},
			{Month: "2024-04", UnitsAdded: 50, PricePerUnit: 11, DividendPerUnit: 0.4},
		},
	}

	t.Run("total units and invested", func(t *testing.T) {
		if got := fund.TotalUnits(); got != 200 {
			t.Errorf("TotalUnits() = %v, want 200", got)
		}
		want := 100*10.0 + 50*12.0 + 50*11.0
		if got := fund.TotalInvested(); got != want {
			t.Errorf("TotalInvested() = %v, want %v", got, want)
		}
	})

	t.Run("average price is invested over units", func(t *testing.T) {
		want := fund.TotalInvested() / 200
		if got := fund.AveragePrice(); got != want {
			t.Errorf("AveragePrice() = %v, want %v", got, want)
		}
	})

	t.Run("windowed dividend average skips zero months", func(t *testing.T) {
		// History of positive observations: 0.3, 0.5, 0.4.
		if got := fund.AverageDividendPerUnit(2); got != 0.45 {
			t.Errorf("AverageDividendPerUnit(2) = %v, want 0.45", got)
		}
		want := (0.3 + 0.5 + 0.4) / 3
		if got := fund.AverageDividendPerUnit(0); got != want {
			t.Errorf("AverageDividendPerUnit(0) = %v, want %v", got, want)
		}
	})

	t.Run("most recent record has greatest month key", func(t *testing.T) {
		latest := fund.MostRecentRecord()
		if latest == nil || latest.Month != "2024-04" {
			t.Fatalf("MostRecentRecord() = %+v, want month 2024-04", latest)
		}
	})

	t.Run("dividends prefer explicit totals", func(t *testing.T) {
		want := 0.3*100 + 75.0 + 0.4*50
		if got := fund.TotalDividendsReceived(); got != want {
			t.Errorf("TotalDividendsReceived() = %v, want %v", got, want)
		}
	})
}

func TestFundEmpty(t *testing.T) {
	fund := &model.Fund{Ticker: "EMPT11", Name: "Empty"}

	if got := fund.AveragePrice(); got != 0 {
		t.Errorf("AveragePrice() on empty fund = %v, want 0", got)
	}
	if got := fund.AverageDividendPerUnit(6); got != 0 {
		t.Errorf("AverageDividendPerUnit() on empty fund = %v, want 0", got)
	}
	if fund.MostRecentRecord() != nil {
		t.Error("MostRecentRecord() on empty fund should be nil")
	}
}

func TestSortEntries(t *testing.T) {
	fund := &model.Fund{
		Ticker: "SORT11",
		Entries: []model.MonthlyRecord{
			{Month: "2024-05"},
			{Month: "2023-12"},
			{Month: "2024-01"},
		},
	}
	fund.SortEntries()

	want := []string{"2023-12", "2024-01", "2024-05"}
	for i, entry := range fund.Entries {
		if entry.Month != want[i] {
			t.Errorf("Entries[%d].Month = %q, want %q", i, entry.Month, want[i])
		}
	}
}
