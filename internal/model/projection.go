package model

// ProjectionPoint is one step of a forward income simulation.
type ProjectionPoint struct {
	Month            string  `json:"month"`             // projected calendar month (YYYY-MM)
	ProjectedUnits   float64 `json:"projected_units"`   // units before reinvestment this step
	ProjectedIncome  float64 `json:"projected_income"`  // income earned this step
	CumulativeIncome float64 `json:"cumulative_income"` // income accumulated up to this step
	ReinvestedUnits  float64 `json:"reinvested_units"`  // running total of units bought with dividend cash
	CombinedUnits    float64 `json:"combined_units"`    // units after reinvestment this step
	CombinedIncome   float64 `json:"combined_income"`   // income implied by the combined unit count
}
