package interfaces

import (
	"context"
	"time"

	"portfolio-monitor/models"
)

// QuoteSource fetches the current underlying price. A nil price with a nil
// error means the source responded but no price could be extracted.
type QuoteSource interface {
	FetchPrice(ctx context.Context) (*float64, error)
}

// OptionChainSource fetches the chain row for one contract. A nil row with a
// nil error means the chain had no row for the requested strike.
type OptionChainSource interface {
	FetchRow(ctx context.Context, fromDate, toDate, strike string) (*models.OptionRow, error)
}

// PortfolioProvider serves the cached portfolio aggregate, recomputing it
// when stale.
type PortfolioProvider interface {
	GetAggregate(ctx context.Context) (*models.PortfolioAggregate, error)
	TotalCostBasis() float64
	TTL() time.Duration
}
