package service

import (
	"time"

	"github.com/fiistracker/fii-income-tracker-backend/internal/model"
	"github.com/fiistracker/fii-income-tracker-backend/internal/repository"
)

// PortfolioService exposes portfolio queries and mutations to the HTTP
// layer. All business state lives in the repository; this service adds the
// derived per-fund summaries the API returns.
type PortfolioService struct {
	repo *repository.PortfolioRepository
}

// NewPortfolioService creates a new PortfolioService.
func NewPortfolioService(repo *repository.PortfolioRepository) *PortfolioService {
	return &PortfolioService{repo: repo}
}

// FundSummary combines a fund's identity with its derived metrics.
type FundSummary struct {
	Ticker             string  `json:"ticker"`
	Name               string  `json:"name"`
	Sector             string  `json:"sector"`
	TotalUnits         float64 `json:"total_units"`
	TotalInvested      float64 `json:"total_invested"`
	AveragePrice       float64 `json:"average_price"`
	AverageDividend    float64 `json:"average_dividend_per_unit"`
	DividendsReceived  float64 `json:"dividends_received"`
	LastRecordedMonth  string  `json:"last_recorded_month,omitempty"`
	RecordedMonthCount int     `json:"recorded_month_count"`
}

// PortfolioSummary aggregates portfolio-wide totals.
type PortfolioSummary struct {
	FundCount      int        `json:"fund_count"`
	TotalInvested  float64    `json:"total_invested"`
	TotalDividends float64    `json:"total_dividends"`
	LastUpdatedAt  *time.Time `json:"last_updated_at,omitempty"`
}

// summaryWindow is the trailing observation count used for the dividend
// average shown on fund summaries.
const summaryWindow = 6

func newFundSummary(fund *model.Fund) FundSummary {
	summary := FundSummary{
		Ticker:             fund.Ticker,
		Name:               fund.Name,
		Sector:             fund.Sector,
		TotalUnits:         fund.TotalUnits(),
		TotalInvested:      model.Round2(fund.TotalInvested()),
		AveragePrice:       model.Round2(fund.AveragePrice()),
		AverageDividend:    fund.AverageDividendPerUnit(summaryWindow),
		DividendsReceived:  model.Round2(fund.TotalDividendsReceived()),
		RecordedMonthCount: len(fund.Entries),
	}
	if latest := fund.MostRecentRecord(); latest != nil {
		summary.LastRecordedMonth = latest.Month
	}
	return summary
}

// ListFunds returns summaries for every fund, ordered by ticker.
func (s *PortfolioService) ListFunds() []FundSummary {
	funds := s.repo.Funds()
	summaries := make([]FundSummary, 0, len(funds))
	for _, fund := range funds {
		summaries = append(summaries, newFundSummary(fund))
	}
	return summaries
}

// GetFund returns a single fund with its full entry history, or nil when
// the ticker is unknown.
func (s *PortfolioService) GetFund(ticker string) *model.Fund {
	return s.repo.FindFund(ticker)
}

// AddOrUpdateFund registers a fund or updates its name/sector.
func (s *PortfolioService) AddOrUpdateFund(ticker, name, sector string) (FundSummary, error) {
	fund, err := s.repo.AddOrUpdateFund(ticker, name, sector)
	if err != nil {
		return FundSummary{}, err
	}
	return newFundSummary(fund), nil
}

// RegisterMonth stores a monthly record for a fund.
func (s *PortfolioService) RegisterMonth(ticker string, record model.MonthlyRecord) (model.MonthlyRecord, error) {
	return s.repo.RegisterMonth(ticker, record)
}

// UpdateMonthRecord edits the record stored under originalMonth.
func (s *PortfolioService) UpdateMonthRecord(ticker, originalMonth string, updated model.MonthlyRecord) (model.MonthlyRecord, error) {
	return s.repo.UpdateMonthRecord(ticker, originalMonth, updated)
}

// Summary returns the portfolio-wide totals.
func (s *PortfolioService) Summary() PortfolioSummary {
	funds := s.repo.Funds()
	summary := PortfolioSummary{
		FundCount:      len(funds),
		TotalDividends: model.Round2(s.repo.TotalPortfolioDividends()),
	}
	for _, fund := range funds {
		summary.TotalInvested += fund.TotalInvested()
	}
	summary.TotalInvested = model.Round2(summary.TotalInvested)

	if mtime := s.repo.Store().LastModified(); !mtime.IsZero() {
		summary.LastUpdatedAt = &mtime
	}
	return summary
}

// Reload discards the in-memory fund set and re-reads the data file.
// Fund references obtained before the call are stale afterwards.
func (s *PortfolioService) Reload() error {
	return s.repo.Reload()
}

// Backup snapshots the data file and returns the backup path.
func (s *PortfolioService) Backup() (string, error) {
	return s.repo.Store().CreateBackup()
}

// ExportPayload returns the persisted document shape for the whole
// portfolio, used by the snapshot import/export surface.
func (s *PortfolioService) ExportPayload() []model.Fund {
	funds := s.repo.Funds()
	out := make([]model.Fund, 0, len(funds))
	for _, fund := range funds {
		out = append(out, *fund)
	}
	return out
}
