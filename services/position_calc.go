package services

import (
	"time"

	"portfolio-monitor/models"
)

const dateLayout = "2006-01-02"

// ComputePosition derives the metrics for one position from the fetched
// market data. It is pure: no I/O, deterministic given its arguments, and
// safe for any combination of absent inputs. row may be nil when the chain
// fetch failed or found no matching strike; every row-derived field is then
// absent. today is the caller's local calendar date, so DTE moves across a
// day boundary even when market data is served from cache.
func ComputePosition(spec models.PositionSpec, stockPrice *float64, row *models.OptionRow, today time.Time) models.PositionResult {
	result := models.PositionResult{
		PositionSpec: spec,
		CostBasis:    float64(spec.Contracts) * spec.CostPer * 100,
		DTE:          daysUntil(spec.Expiry, today),
	}
	if row != nil {
		result.OptionRow = *row
	}

	// Mid prefers the bid/ask midpoint, then the last trade, then whichever
	// side of the book exists.
	switch {
	case result.Bid != nil && result.Ask != nil:
		result.Mid = models.Float64Ptr((*result.Bid + *result.Ask) / 2)
	case result.Last != nil:
		result.Mid = result.Last
	case result.Bid != nil:
		result.Mid = result.Bid
	case result.Ask != nil:
		result.Mid = result.Ask
	}

	if result.Mid != nil {
		result.Value = models.Float64Ptr(float64(spec.Contracts) * *result.Mid * 100)
	}
	if result.Value != nil {
		result.PnL = models.Float64Ptr(*result.Value - result.CostBasis)
	}
	if result.PnL != nil {
		result.PnLPct = models.Float64Ptr(*result.PnL / result.CostBasis)
	}

	if stockPrice != nil {
		result.Intrinsic = models.Float64Ptr(max(0, *stockPrice-spec.StrikeNum))
	}
	if result.Mid != nil && result.Intrinsic != nil {
		result.TimeValue = models.Float64Ptr(max(0, *result.Mid-*result.Intrinsic))
	}

	return result
}

// ComputeTotals sums the present position values; absent values contribute
// zero. Total P&L is measured against the fixed basis.
func ComputeTotals(results []models.PositionResult, totalCostBasis float64) (totalValue, totalPnL, totalPnLPct float64) {
	for _, r := range results {
		if r.Value != nil {
			totalValue += *r.Value
		}
	}
	totalPnL = totalValue - totalCostBasis
	totalPnLPct = totalPnL / totalCostBasis
	return totalValue, totalPnL, totalPnLPct
}

// daysUntil counts whole calendar days from today to the expiry date.
// Negative after expiry.
func daysUntil(expiry string, today time.Time) int {
	target, err := time.Parse(dateLayout, expiry)
	if err != nil {
		return 0
	}
	y, m, d := today.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(target.Sub(midnight).Hours() / 24)
}
