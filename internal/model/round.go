package model

import "math"

// Round2 rounds a monetary amount to 2 decimal places. Accumulators in the
// projection engine and derived dividend totals are rounded at every step,
// not only at output, so long-horizon compounding drift stays reproducible.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
