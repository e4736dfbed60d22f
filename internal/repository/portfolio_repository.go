package repository

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fiistracker/fii-income-tracker-backend/internal/apperrors"
	"github.com/fiistracker/fii-income-tracker-backend/internal/model"
	"github.com/fiistracker/fii-income-tracker-backend/internal/month"
	"github.com/fiistracker/fii-income-tracker-backend/internal/storage"
)

// PortfolioRepository owns the in-memory set of funds for one data file.
// Funds handed out by Funds/FindFund are owned by the repository: Reload
// discards and rebuilds the whole set, so previously returned *model.Fund
// pointers become stale and must be re-fetched by ticker.
//
// Every mutating operation persists the full portfolio immediately. The
// repository is not safe for concurrent writers; two processes mutating the
// same data file end up last-write-wins (single-user-process assumption).
type PortfolioRepository struct {
	store *storage.FileStore
	funds []*model.Fund
}

// NewPortfolioRepository creates a repository bound to the given store and
// loads the current portfolio. A missing or corrupt data file yields an
// empty portfolio, not an error.
func NewPortfolioRepository(store *storage.FileStore) (*PortfolioRepository, error) {
	r := &PortfolioRepository{store: store}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload replaces the in-memory fund set with the current store contents.
func (r *PortfolioRepository) Reload() error {
	payload, err := r.store.Load()
	if err != nil {
		return fmt.Errorf("failed to load portfolio: %w", err)
	}

	funds := make([]*model.Fund, 0, len(payload.Funds))
	for i := range payload.Funds {
		fund := payload.Funds[i]
		fund.Ticker = normalizeTicker(fund.Ticker)
		fund.SortEntries()
		funds = append(funds, &fund)
	}
	sort.Slice(funds, func(i, j int) bool { return funds[i].Ticker < funds[j].Ticker })

	r.funds = funds
	return nil
}

// Funds returns all funds ordered by ticker.
func (r *PortfolioRepository) Funds() []*model.Fund {
	out := make([]*model.Fund, len(r.funds))
	copy(out, r.funds)
	return out
}

// FindFund looks a fund up by ticker, case-insensitively.
// Returns nil when the ticker is unknown.
func (r *PortfolioRepository) FindFund(ticker string) *model.Fund {
	upper := normalizeTicker(ticker)
	for _, fund := range r.funds {
		if fund.Ticker == upper {
			return fund
		}
	}
	return nil
}

// AddOrUpdateFund creates a fund, or updates an existing fund's name and
// sector. Empty replacements preserve the existing values. The portfolio is
// persisted before returning.
func (r *PortfolioRepository) AddOrUpdateFund(ticker, name, sector string) (*model.Fund, error) {
	upper := normalizeTicker(ticker)
	if upper == "" {
		return nil, apperrors.ErrInvalidTicker
	}

	if existing := r.FindFund(upper); existing != nil {
		if name != "" {
			existing.Name = name
		}
		if sector != "" {
			existing.Sector = sector
		}
		if err := r.persist(); err != nil {
			return nil, err
		}
		return existing, nil
	}

	fund := &model.Fund{Ticker: upper, Name: name, Sector: sector, Entries: []model.MonthlyRecord{}}
	r.funds = append(r.funds, fund)
	sort.Slice(r.funds, func(i, j int) bool { return r.funds[i].Ticker < r.funds[j].Ticker })

	if err := r.persist(); err != nil {
		return nil, err
	}
	return fund, nil
}

// RegisterMonth adds a monthly record to a fund, or replaces the record
// already stored under the same month key. When the record has no explicit
// dividend total but does have a per-unit dividend, the total is derived on
// the post-purchase unit count. Records are kept sorted and the portfolio is
// persisted before returning.
func (r *PortfolioRepository) RegisterMonth(ticker string, record model.MonthlyRecord) (model.MonthlyRecord, error) {
	fund := r.FindFund(ticker)
	if fund == nil {
		return model.MonthlyRecord{}, fmt.Errorf("%w: %s", apperrors.ErrFundNotFound, normalizeTicker(ticker))
	}

	normalized, err := month.Normalize(record.Month)
	if err != nil {
		return model.MonthlyRecord{}, err
	}
	record.Month = normalized

	if record.DividendTotal == nil && record.DividendPerUnit > 0 {
		// The dividend is assumed paid on the unit count after this
		// month's purchase, not before it.
		unitsAfter := fund.TotalUnits() + record.UnitsAdded
		total := model.Round2(record.DividendPerUnit * unitsAfter)
		record.DividendTotal = &total
	}

	if existing := fund.FindEntry(record.Month); existing != nil {
		*existing = record
	} else {
		fund.Entries = append(fund.Entries, record)
	}
	fund.SortEntries()

	if err := r.persist(); err != nil {
		return model.MonthlyRecord{}, err
	}
	return record, nil
}

// UpdateMonthRecord replaces the record stored under originalMonth. The
// updated record may carry a different month key; uniqueness is re-checked
// against the new key, so moving onto an occupied month replaces that
// month's record rather than duplicating it.
func (r *PortfolioRepository) UpdateMonthRecord(ticker, originalMonth string, updated model.MonthlyRecord) (model.MonthlyRecord, error) {
	fund := r.FindFund(ticker)
	if fund == nil {
		return model.MonthlyRecord{}, fmt.Errorf("%w: %s", apperrors.ErrFundNotFound, normalizeTicker(ticker))
	}

	origKey, err := month.Normalize(originalMonth)
	if err != nil {
		return model.MonthlyRecord{}, err
	}
	newKey, err := month.Normalize(updated.Month)
	if err != nil {
		return model.MonthlyRecord{}, err
	}
	updated.Month = newKey

	origIdx := -1
	for i := range fund.Entries {
		if fund.Entries[i].Month == origKey {
			origIdx = i
			break
		}
	}
	if origIdx < 0 {
		return model.MonthlyRecord{}, fmt.Errorf("%w: %s for %s", apperrors.ErrMonthNotFound, origKey, fund.Ticker)
	}

	fund.Entries[origIdx] = updated
	if newKey != origKey {
		// The record moved; drop any pre-existing record under the new key.
		for i := len(fund.Entries) - 1; i >= 0; i-- {
			if i != origIdx && fund.Entries[i].Month == newKey {
				fund.Entries = append(fund.Entries[:i], fund.Entries[i+1:]...)
			}
		}
	}
	fund.SortEntries()

	if err := r.persist(); err != nil {
		return model.MonthlyRecord{}, err
	}
	return updated, nil
}

// TotalPortfolioDividends sums dividends received across all funds.
func (r *PortfolioRepository) TotalPortfolioDividends() float64 {
	var total float64
	for _, fund := range r.funds {
		total += fund.TotalDividendsReceived()
	}
	return total
}

// Store exposes the underlying file store for backup and status reporting.
func (r *PortfolioRepository) Store() *storage.FileStore {
	return r.store
}

func (r *PortfolioRepository) persist() error {
	payload := storage.Payload{Funds: make([]model.Fund, 0, len(r.funds))}
	for _, fund := range r.funds {
		payload.Funds = append(payload.Funds, *fund)
	}
	if err := r.store.Save(payload); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrFailedToPersistPortfolio, err)
	}
	return nil
}

func normalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}
