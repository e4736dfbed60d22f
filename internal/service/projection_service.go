package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/fiistracker/fii-income-tracker-backend/internal/apperrors"
	"github.com/fiistracker/fii-income-tracker-backend/internal/model"
	"github.com/fiistracker/fii-income-tracker-backend/internal/month"
	"github.com/fiistracker/fii-income-tracker-backend/internal/repository"
)

// ProjectionService runs the forward income simulations. Projections are
// deterministic, bounded, in-memory computations: the same fund history and
// parameters always produce the same point sequence.
type ProjectionService struct {
	repo *repository.PortfolioRepository
}

// NewProjectionService creates a new ProjectionService.
func NewProjectionService(repo *repository.PortfolioRepository) *ProjectionService {
	return &ProjectionService{repo: repo}
}

// ProjectIncome simulates a single fund's income over the given number of
// months. monthlyUnits is added to the position every step (planned ongoing
// purchases), and dividend cash is reinvested into whole units at the fund's
// historical average price; fractional cash carries into the next step.
//
// The dividend yield per unit is estimated once from the trailing window and
// held constant over the whole horizon; it is not re-estimated per step.
// Accumulators are rounded to 2 decimals at every step.
func (s *ProjectionService) ProjectIncome(ticker string, months int, monthlyUnits float64, window int) ([]model.ProjectionPoint, error) {
	fund := s.repo.FindFund(ticker)
	if fund == nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrFundNotFound, strings.ToUpper(strings.TrimSpace(ticker)))
	}

	avgDividend := fund.AverageDividendPerUnit(window)
	avgPrice := fund.AveragePrice()
	if avgPrice <= 0 {
		// A fund with no purchase history would otherwise buy unbounded
		// units with any dividend cash.
		avgPrice = 1.0
	}

	lastMonth := month.Current()
	if latest := fund.MostRecentRecord(); latest != nil {
		lastMonth = latest.Month
	}

	currentUnits := fund.TotalUnits()
	points := make([]model.ProjectionPoint, 0, months)
	var cumulative, cashRemainder, reinvestedTotal float64

	for offset := 1; offset <= months; offset++ {
		currentUnits += monthlyUnits
		unitsBeforeReinvest := currentUnits

		projectedIncome := model.Round2(unitsBeforeReinvest * avgDividend)
		cumulative = model.Round2(cumulative + projectedIncome)
		cashRemainder = model.Round2(cashRemainder + projectedIncome)

		// Reinvestment buys whole units only; leftover cash carries forward.
		if purchasable := math.Floor(cashRemainder / avgPrice); purchasable >= 1 {
			reinvestedTotal += purchasable
			currentUnits += purchasable
			cashRemainder = model.Round2(cashRemainder - purchasable*avgPrice)
		}

		combinedUnits := currentUnits
		points = append(points, model.ProjectionPoint{
			Month:            month.After(lastMonth, offset),
			ProjectedUnits:   unitsBeforeReinvest,
			ProjectedIncome:  projectedIncome,
			CumulativeIncome: cumulative,
			ReinvestedUnits:  reinvestedTotal,
			CombinedUnits:    combinedUnits,
			CombinedIncome:   model.Round2(combinedUnits * avgDividend),
		})
	}
	return points, nil
}

// ProjectPortfolio simulates the whole portfolio. Every fund's position is
// advanced by its own monthly plan amount (funds absent from the plan add
// 0). Unlike the single-fund projection, dividend cash is never converted
// back into units at this level, so reinvested units stay 0 and the
// combined_* fields repeat the plain totals.
func (s *ProjectionService) ProjectPortfolio(months int, plan map[string]float64, window int) []model.ProjectionPoint {
	funds := s.repo.Funds()
	if len(funds) == 0 {
		return []model.ProjectionPoint{}
	}

	normalizedPlan := make(map[string]float64, len(plan))
	for ticker, amount := range plan {
		normalizedPlan[strings.ToUpper(strings.TrimSpace(ticker))] = amount
	}

	// Reference month: the most recent record across all funds, or the
	// current calendar month when nothing has been recorded yet.
	reference := ""
	for _, fund := range funds {
		if latest := fund.MostRecentRecord(); latest != nil && latest.Month > reference {
			reference = latest.Month
		}
	}
	if reference == "" {
		reference = month.Current()
	}

	type fundState struct {
		units       float64
		monthlyAdd  float64
		avgDividend float64
	}
	states := make([]fundState, len(funds))
	for i, fund := range funds {
		states[i] = fundState{
			units:       fund.TotalUnits(),
			monthlyAdd:  normalizedPlan[fund.Ticker],
			avgDividend: fund.AverageDividendPerUnit(window),
		}
	}

	points := make([]model.ProjectionPoint, 0, months)
	var cumulative float64

	for offset := 1; offset <= months; offset++ {
		var monthIncome, totalUnits float64
		for i := range states {
			states[i].units += states[i].monthlyAdd
			monthIncome += states[i].units * states[i].avgDividend
			totalUnits += states[i].units
		}
		monthIncome = model.Round2(monthIncome)
		cumulative = model.Round2(cumulative + monthIncome)

		points = append(points, model.ProjectionPoint{
			Month:            month.After(reference, offset),
			ProjectedUnits:   totalUnits,
			ProjectedIncome:  monthIncome,
			CumulativeIncome: cumulative,
			ReinvestedUnits:  0,
			CombinedUnits:    totalUnits,
			CombinedIncome:   monthIncome,
		})
	}
	return points
}
