package request

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Projection query defaults: a year ahead, one planned unit per month for
// the single-fund simulation, dividend average over the last six payouts.
const (
	DefaultProjectionMonths = 12
	DefaultMonthlyUnits     = 1.0
	DefaultDividendWindow   = 6
)

// ProjectionQuery carries the parsed projection parameters.
type ProjectionQuery struct {
	Months       int
	MonthlyUnits float64
	Window       int
	Plan         map[string]float64
}

// ParseProjectionQuery extracts projection parameters from a query string,
// applying defaults for absent values. The portfolio plan parameter has the
// form "plan=KNRI11:2,HGLG11:1.5".
func ParseProjectionQuery(values url.Values) (ProjectionQuery, error) {
	query := ProjectionQuery{
		Months:       DefaultProjectionMonths,
		MonthlyUnits: DefaultMonthlyUnits,
		Window:       DefaultDividendWindow,
	}

	if raw := values.Get("months"); raw != "" {
		months, err := strconv.Atoi(raw)
		if err != nil {
			return ProjectionQuery{}, fmt.Errorf("invalid months parameter: %q", raw)
		}
		query.Months = months
	}

	if raw := values.Get("monthly_units"); raw != "" {
		units, err := strconv.ParseFloat(raw, 64)
		if err != nil || units < 0 {
			return ProjectionQuery{}, fmt.Errorf("invalid monthly_units parameter: %q", raw)
		}
		query.MonthlyUnits = units
	}

	if raw := values.Get("window"); raw != "" {
		window, err := strconv.Atoi(raw)
		if err != nil || window < 0 {
			return ProjectionQuery{}, fmt.Errorf("invalid window parameter: %q", raw)
		}
		query.Window = window
	}

	if raw := values.Get("plan"); raw != "" {
		plan, err := parsePlan(raw)
		if err != nil {
			return ProjectionQuery{}, err
		}
		query.Plan = plan
	}

	return query, nil
}

func parsePlan(raw string) (map[string]float64, error) {
	plan := make(map[string]float64)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		ticker, amount, found := strings.Cut(pair, ":")
		if !found {
			return nil, fmt.Errorf("invalid plan entry: %q (expected TICKER:UNITS)", pair)
		}
		units, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
		if err != nil || units < 0 {
			return nil, fmt.Errorf("invalid plan units for %q: %q", ticker, amount)
		}
		plan[strings.ToUpper(strings.TrimSpace(ticker))] = units
	}
	return plan, nil
}
