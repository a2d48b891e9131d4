package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"portfolio-monitor/models"
)

var testToday = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func testSpec() models.PositionSpec {
	return models.PositionSpec{
		Label:     "Nov 20 '26 $13 Call",
		Strike:    "13.00",
		StrikeNum: 13,
		Expiry:    "2026-11-20",
		Contracts: 220,
		CostPer:   5.007,
		FromDate:  "2026-11-20",
		ToDate:    "2026-11-20",
	}
}

func TestComputePositionMidFallback(t *testing.T) {
	spec := testSpec()

	cases := []struct {
		name string
		row  models.OptionRow
		want *float64
	}{
		{"bid and ask", models.OptionRow{Bid: models.Float64Ptr(4.50), Ask: models.Float64Ptr(4.70)}, models.Float64Ptr(4.60)},
		{"bid and last prefers last", models.OptionRow{Bid: models.Float64Ptr(4.50), Last: models.Float64Ptr(4.40)}, models.Float64Ptr(4.40)},
		{"ask and last prefers last", models.OptionRow{Ask: models.Float64Ptr(4.70), Last: models.Float64Ptr(4.40)}, models.Float64Ptr(4.40)},
		{"bid only", models.OptionRow{Bid: models.Float64Ptr(4.50)}, models.Float64Ptr(4.50)},
		{"ask only", models.OptionRow{Ask: models.Float64Ptr(4.70)}, models.Float64Ptr(4.70)},
		{"last only", models.OptionRow{Last: models.Float64Ptr(4.55)}, models.Float64Ptr(4.55)},
		{"all absent", models.OptionRow{}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			row := tc.row
			result := ComputePosition(spec, nil, &row, testToday)
			if tc.want == nil {
				require.Nil(t, result.Mid)
			} else {
				require.NotNil(t, result.Mid)
				require.Equal(t, *tc.want, *result.Mid)
			}
		})
	}
}

func TestComputePositionCostBasis(t *testing.T) {
	result := ComputePosition(testSpec(), nil, nil, testToday)
	require.Equal(t, 110154.00, result.CostBasis)
}

func TestComputePositionValue(t *testing.T) {
	spec := testSpec()
	spec.Contracts = 100
	row := models.OptionRow{Bid: models.Float64Ptr(4.50), Ask: models.Float64Ptr(4.70)}

	result := ComputePosition(spec, nil, &row, testToday)
	require.NotNil(t, result.Mid)
	require.Equal(t, 4.60, *result.Mid)
	require.NotNil(t, result.Value)
	require.InDelta(t, 46000.00, *result.Value, 1e-6)
}

func TestComputePositionAbsenceChain(t *testing.T) {
	// No chain row at all: everything market-derived is absent, but the
	// static fields still compute.
	result := ComputePosition(testSpec(), models.Float64Ptr(18.25), nil, testToday)

	require.Nil(t, result.Bid)
	require.Nil(t, result.Ask)
	require.Nil(t, result.Last)
	require.Nil(t, result.Mid)
	require.Nil(t, result.Value)
	require.Nil(t, result.PnL)
	require.Nil(t, result.PnLPct)
	require.Nil(t, result.TimeValue)

	require.Equal(t, 110154.00, result.CostBasis)
	require.NotNil(t, result.Intrinsic)
	require.InDelta(t, 5.25, *result.Intrinsic, 1e-9)
}

func TestComputePositionPnL(t *testing.T) {
	spec := testSpec()
	row := models.OptionRow{Bid: models.Float64Ptr(6.00), Ask: models.Float64Ptr(6.20)}

	result := ComputePosition(spec, models.Float64Ptr(17.50), &row, testToday)

	require.NotNil(t, result.Value)
	require.InDelta(t, 220*6.10*100, *result.Value, 1e-9)
	require.NotNil(t, result.PnL)
	require.InDelta(t, *result.Value-110154.00, *result.PnL, 1e-9)
	require.NotNil(t, result.PnLPct)
	require.InDelta(t, *result.PnL/110154.00, *result.PnLPct, 1e-9)
}

func TestComputePositionIntrinsicAndTimeValue(t *testing.T) {
	spec := testSpec()
	row := models.OptionRow{Bid: models.Float64Ptr(5.40), Ask: models.Float64Ptr(5.60)}

	// In the money: intrinsic = underlying - strike, time value = mid - intrinsic.
	result := ComputePosition(spec, models.Float64Ptr(18.00), &row, testToday)
	require.NotNil(t, result.Intrinsic)
	require.InDelta(t, 5.00, *result.Intrinsic, 1e-9)
	require.NotNil(t, result.TimeValue)
	require.InDelta(t, 0.50, *result.TimeValue, 1e-9)

	// Out of the money: intrinsic clamps at zero, time value is the whole mid.
	result = ComputePosition(spec, models.Float64Ptr(10.00), &row, testToday)
	require.NotNil(t, result.Intrinsic)
	require.Equal(t, 0.0, *result.Intrinsic)
	require.NotNil(t, result.TimeValue)
	require.InDelta(t, 5.50, *result.TimeValue, 1e-9)

	// No underlying price: intrinsic and time value are absent even with a mid.
	result = ComputePosition(spec, nil, &row, testToday)
	require.Nil(t, result.Intrinsic)
	require.Nil(t, result.TimeValue)
}

func TestDaysUntil(t *testing.T) {
	require.Equal(t, 251, daysUntil("2026-11-20", testToday))
	require.Equal(t, 0, daysUntil("2026-03-14", testToday))
	require.Equal(t, -13, daysUntil("2026-03-01", testToday))
}

func TestComputeTotals(t *testing.T) {
	results := []models.PositionResult{
		{Value: models.Float64Ptr(46000)},
		{Value: nil}, // absent contributes zero
		{Value: models.Float64Ptr(54000)},
	}

	totalValue, totalPnL, totalPnLPct := ComputeTotals(results, 80000)
	require.Equal(t, 100000.0, totalValue)
	require.Equal(t, 20000.0, totalPnL)
	require.InDelta(t, 0.25, totalPnLPct, 1e-9)

	// All absent: total value is zero, P&L is the full basis drawdown.
	totalValue, totalPnL, _ = ComputeTotals([]models.PositionResult{{}, {}}, 80000)
	require.Equal(t, 0.0, totalValue)
	require.Equal(t, -80000.0, totalPnL)
}
