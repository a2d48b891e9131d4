package services

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"portfolio-monitor/interfaces"
	"portfolio-monitor/models"
)

// timestampLayout is the human-readable generation time shown on the page.
const timestampLayout = "Jan 02, 2006 03:04:05 PM"

// PortfolioService runs the aggregation pass over all positions and caches
// the result for a fixed TTL.
type PortfolioService struct {
	quotes         interfaces.QuoteSource
	chain          interfaces.OptionChainSource
	positions      []models.PositionSpec
	totalCostBasis float64
	ttl            time.Duration
	logger         *logrus.Logger

	// now is swapped out in tests to drive the TTL clock.
	now func() time.Time

	// mu guards entry load/store only. Recomputation runs outside the
	// lock, so concurrent stale readers may each run a pass and the last
	// writer wins. Accepted for a single-user dashboard.
	mu    sync.Mutex
	entry models.CacheEntry
}

// NewPortfolioService creates a new portfolio service.
func NewPortfolioService(quotes interfaces.QuoteSource, chain interfaces.OptionChainSource, positions []models.PositionSpec, totalCostBasis float64, ttl time.Duration) *PortfolioService {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	return &PortfolioService{
		quotes:         quotes,
		chain:          chain,
		positions:      positions,
		totalCostBasis: totalCostBasis,
		ttl:            ttl,
		logger:         logger,
		now:            time.Now,
	}
}

// GetAggregate returns the cached aggregate when it is still fresh,
// otherwise runs one synchronous recomputation pass. A failed pass leaves
// the previous entry in place and returns the error; there is no retry and
// no background refresh.
func (ps *PortfolioService) GetAggregate(ctx context.Context) (*models.PortfolioAggregate, error) {
	now := ps.now()

	ps.mu.Lock()
	entry := ps.entry
	ps.mu.Unlock()

	if entry.State(now, ps.ttl) == models.CacheFresh {
		return entry.Aggregate, nil
	}

	aggregate, err := ps.refresh(ctx, now)
	if err != nil {
		return nil, err
	}

	ps.mu.Lock()
	ps.entry = models.CacheEntry{Aggregate: aggregate, FetchedAt: now}
	ps.mu.Unlock()

	return aggregate, nil
}

// refresh performs one full fetch-and-compute pass. A quote transport error
// fails the whole pass; a per-position chain error only degrades that
// position to absent market data.
func (ps *PortfolioService) refresh(ctx context.Context, now time.Time) (*models.PortfolioAggregate, error) {
	stockPrice, err := ps.quotes.FetchPrice(ctx)
	if err != nil {
		ps.logger.WithError(err).Error("Quote fetch failed, aborting pass")
		return nil, err
	}

	results := make([]models.PositionResult, 0, len(ps.positions))
	for _, pos := range ps.positions {
		row, err := ps.chain.FetchRow(ctx, pos.FromDate, pos.ToDate, pos.Strike)
		if err != nil {
			ps.logger.WithError(err).WithField("label", pos.Label).Warn("Chain fetch failed, marking position data absent")
			row = nil
		}
		results = append(results, ComputePosition(pos, stockPrice, row, now))
	}

	totalValue, totalPnL, totalPnLPct := ComputeTotals(results, ps.totalCostBasis)

	ps.logger.WithFields(logrus.Fields{
		"total_value": totalValue,
		"total_pnl":   totalPnL,
		"positions":   len(results),
	}).Info("Portfolio recomputed")

	return &models.PortfolioAggregate{
		StockPrice:  stockPrice,
		Positions:   results,
		TotalValue:  totalValue,
		TotalPnL:    totalPnL,
		TotalPnLPct: totalPnLPct,
		Timestamp:   now.Format(timestampLayout) + " ET",
		GeneratedAt: now,
	}, nil
}

// TotalCostBasis exposes the configured basis for rendering.
func (ps *PortfolioService) TotalCostBasis() float64 {
	return ps.totalCostBasis
}

// TTL exposes the cache threshold for rendering.
func (ps *PortfolioService) TTL() time.Duration {
	return ps.ttl
}
