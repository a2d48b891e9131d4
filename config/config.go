package config

import (
	"fmt"
	"os"
	"time"

	"portfolio-monitor/models"
)

// Deploy-time configuration. Edit Positions and TotalCostBasis when opening
// or closing positions; everything else rarely changes.

const (
	// Symbol is the underlying for every position below.
	Symbol = "CIFR"

	// TotalCostBasis is the fixed dollar basis the portfolio P&L is
	// measured against.
	TotalCostBasis = 252425.0

	// CacheTTL bounds how often the upstream sources are hit.
	CacheTTL = 120 * time.Second

	// QuoteURL is the quote page scraped for the underlying price.
	QuoteURL = "https://www.google.com/finance/quote/CIFR:NASDAQ"

	// ChainURL is the option-chain endpoint; fromdate and todate are
	// appended per position.
	ChainURL = "https://api.nasdaq.com/api/quote/CIFR/option-chain?assetclass=stocks&limit=100&money=all&callput=call"

	QuoteTimeout = 10 * time.Second
	ChainTimeout = 15 * time.Second

	// UserAgent is sent on every upstream request; both sources reject
	// the default Go client UA.
	UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"
)

// Positions returns the open positions in display order.
func Positions() []models.PositionSpec {
	return []models.PositionSpec{
		{
			Label: "Nov 20 '26 $13 Call", Strike: "13.00", StrikeNum: 13,
			Expiry: "2026-11-20", Contracts: 220, CostPer: 5.007,
			FromDate: "2026-11-20", ToDate: "2026-11-20",
		},
		{
			Label: "Jun 18 '26 $15 Call", Strike: "15.00", StrikeNum: 15,
			Expiry: "2026-06-18", Contracts: 105, CostPer: 5.054,
			FromDate: "2026-06-18", ToDate: "2026-06-18",
		},
		{
			Label: "Oct 16 '26 $16 Call", Strike: "16.00", StrikeNum: 16,
			Expiry: "2026-10-16", Contracts: 134, CostPer: 6.658,
			FromDate: "2026-10-16", ToDate: "2026-10-16",
		},
	}
}

// Validate checks the deploy-time position specs. Run once at startup so a
// bad edit fails the boot instead of rendering bogus metrics.
func Validate(specs []models.PositionSpec) error {
	for _, spec := range specs {
		if spec.Contracts <= 0 {
			return fmt.Errorf("position %q: contracts must be positive, got %d", spec.Label, spec.Contracts)
		}
		if spec.CostPer <= 0 {
			return fmt.Errorf("position %q: cost per contract must be positive, got %v", spec.Label, spec.CostPer)
		}
		for _, date := range []string{spec.Expiry, spec.FromDate, spec.ToDate} {
			if _, err := time.Parse("2006-01-02", date); err != nil {
				return fmt.Errorf("position %q: invalid date %q: %w", spec.Label, date, err)
			}
		}
	}
	return nil
}

// Port returns the HTTP listen port from the environment, defaulting to 5000.
func Port() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "5000"
}
