package models

import (
	"strconv"
	"strings"
	"time"
)

// PositionSpec describes a single option position held in the portfolio.
// The list of specs is fixed at deploy time; see the config package.
type PositionSpec struct {
	Label     string  `json:"label"`
	Strike    string  `json:"strike"`     // string form, matched against the chain response
	StrikeNum float64 `json:"strike_num"` // numeric form, used for intrinsic value
	Expiry    string  `json:"expiry"`     // YYYY-MM-DD
	Contracts int     `json:"contracts"`
	CostPer   float64 `json:"cost_per"`
	FromDate  string  `json:"fromdate"`
	ToDate    string  `json:"todate"`
}

// OptionRow holds the market fields for one contract as reported by the
// chain source. Every field is independently optional: nil means the source
// reported a placeholder, the field failed to parse, or the fetch failed.
type OptionRow struct {
	Bid          *float64 `json:"bid"`
	Ask          *float64 `json:"ask"`
	Last         *float64 `json:"last"`
	Volume       *float64 `json:"vol"`
	OpenInterest *float64 `json:"oi"`
}

// PositionResult is a PositionSpec combined with fetched market data and the
// metrics derived from it. Derived pointer fields are nil whenever a value
// they depend on is absent.
type PositionResult struct {
	PositionSpec
	OptionRow

	Mid       *float64 `json:"mid"`
	CostBasis float64  `json:"cost_basis"`
	Value     *float64 `json:"value"`
	PnL       *float64 `json:"pnl"`
	PnLPct    *float64 `json:"pnl_pct"`
	DTE       int      `json:"dte"`
	Intrinsic *float64 `json:"intrinsic"`
	TimeValue *float64 `json:"time_val"`
}

// PortfolioAggregate is one full computed snapshot of the portfolio.
type PortfolioAggregate struct {
	StockPrice  *float64         `json:"stock_price"`
	Positions   []PositionResult `json:"positions"`
	TotalValue  float64          `json:"total_value"`
	TotalPnL    float64          `json:"total_pnl"`
	TotalPnLPct float64          `json:"total_pnl_pct"`
	Timestamp   string           `json:"timestamp"`
	GeneratedAt time.Time        `json:"generated_at"`
}

// CacheState classifies a CacheEntry relative to a TTL.
type CacheState int

const (
	CacheEmpty CacheState = iota
	CacheFresh
	CacheStale
)

// CacheEntry is the most recently computed aggregate plus the wall-clock
// time it was computed. A zero CacheEntry means no pass has succeeded yet.
type CacheEntry struct {
	Aggregate *PortfolioAggregate
	FetchedAt time.Time
}

// State reports whether the entry can be served as-is at the given time.
// It is a pure function of (entry, now, ttl) so the EMPTY/FRESH/STALE
// transitions can be tested without a clock.
func (e CacheEntry) State(now time.Time, ttl time.Duration) CacheState {
	if e.Aggregate == nil {
		return CacheEmpty
	}
	if now.Sub(e.FetchedAt) < ttl {
		return CacheFresh
	}
	return CacheStale
}

// ParseOptionalFloat converts a market field reported as a string into an
// optional float. The chain source uses "--" and empty strings as
// placeholders; those and anything non-numeric parse to nil, never an error.
func ParseOptionalFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "--" {
		return nil
	}
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// Float64Ptr returns a pointer to v. Convenience for literals in config and
// tests.
func Float64Ptr(v float64) *float64 {
	return &v
}
