package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// lastPricePattern matches the quoted price attribute embedded in the quote
// page markup.
var lastPricePattern = regexp.MustCompile(`data-last-price="([^"]+)"`)

// QuoteService scrapes the current underlying price from a quote page.
type QuoteService struct {
	url       string
	userAgent string
	logger    *logrus.Logger
	client    *http.Client
}

// NewQuoteService creates a new quote service.
func NewQuoteService(url, userAgent string, timeout time.Duration) *QuoteService {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	return &QuoteService{
		url:       url,
		userAgent: userAgent,
		logger:    logger,
		client:    &http.Client{Timeout: timeout},
	}
}

// FetchPrice issues a single GET against the quote page and extracts the
// price. A page that loads but carries no recognizable price yields
// (nil, nil); transport failures and non-200 responses are errors and are
// never retried.
func (qs *QuoteService) FetchPrice(ctx context.Context) (*float64, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", qs.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", qs.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := qs.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quote page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote page returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read quote page: %w", err)
	}

	m := lastPricePattern.FindSubmatch(body)
	if m == nil {
		qs.logger.Warn("No price found in quote page")
		return nil, nil
	}

	price, err := strconv.ParseFloat(string(m[1]), 64)
	if err != nil {
		qs.logger.WithField("value", string(m[1])).Warn("Non-numeric price in quote page")
		return nil, nil
	}

	qs.logger.WithField("price", price).Debug("Fetched underlying price")
	return &price, nil
}
