package model

import "sort"

// Fund represents a tracked real-estate fund position, keyed by ticker.
// Entries are kept sorted by month key; since keys are canonical YYYY-MM,
// string order is chronological order.
type Fund struct {
	Ticker  string          `json:"ticker"` // uppercase-normalized unique key
	Name    string          `json:"name"`
	Sector  string          `json:"sector"`
	Entries []MonthlyRecord `json:"entries"`
}

// SortEntries re-sorts the fund's records chronologically. Must be called
// after any mutation that appends or changes a month key.
func (f *Fund) SortEntries() {
	sort.Slice(f.Entries, func(i, j int) bool {
		return f.Entries[i].Month < f.Entries[j].Month
	})
}

// TotalUnits returns the number of units accumulated across all records.
func (f *Fund) TotalUnits() float64 {
	var total float64
	for _, entry := range f.Entries {
		total += entry.UnitsAdded
	}
	return total
}

// TotalInvested returns the total purchase cost across all records.
func (f *Fund) TotalInvested() float64 {
	var total float64
	for _, entry := range f.Entries {
		total += entry.UnitsAdded * entry.PricePerUnit
	}
	return total
}

// AveragePrice returns the weighted average purchase price per unit, or 0
// for a fund with no units (never a division error).
func (f *Fund) AveragePrice() float64 {
	units := f.TotalUnits()
	if units == 0 {
		return 0
	}
	return f.TotalInvested() / units
}

// AverageDividendPerUnit returns the arithmetic mean of the strictly
// positive dividend-per-unit observations. Zero-dividend months carry no
// signal and are excluded. When window > 0 only the most recent window
// qualifying observations are averaged. Returns 0 when no observation
// qualifies.
func (f *Fund) AverageDividendPerUnit(window int) float64 {
	dividends := make([]float64, 0, len(f.Entries))
	for _, entry := range f.Entries {
		if entry.DividendPerUnit > 0 {
			dividends = append(dividends, entry.DividendPerUnit)
		}
	}
	if len(dividends) == 0 {
		return 0
	}
	if window > 0 && window < len(dividends) {
		dividends = dividends[len(dividends)-window:]
	}

	var sum float64
	for _, d := range dividends {
		sum += d
	}
	return sum / float64(len(dividends))
}

// MostRecentRecord returns the record with the greatest month key, or nil
// for a fund with no records.
func (f *Fund) MostRecentRecord() *MonthlyRecord {
	if len(f.Entries) == 0 {
		return nil
	}
	latest := &f.Entries[0]
	for i := range f.Entries {
		if f.Entries[i].Month > latest.Month {
			latest = &f.Entries[i]
		}
	}
	return latest
}

// FindEntry returns the record for the given canonical month key, or nil.
func (f *Fund) FindEntry(monthKey string) *MonthlyRecord {
	for i := range f.Entries {
		if f.Entries[i].Month == monthKey {
			return &f.Entries[i]
		}
	}
	return nil
}

// TotalDividendsReceived sums the dividend amounts across all records,
// preferring each record's explicit total over the derived value.
func (f *Fund) TotalDividendsReceived() float64 {
	var total float64
	for _, entry := range f.Entries {
		total += entry.DividendReceived()
	}
	return total
}
