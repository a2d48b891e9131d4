package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"portfolio-monitor/models"
)

// OptionChainService fetches option chain rows from the chain endpoint.
type OptionChainService struct {
	baseURL   string
	userAgent string
	logger    *logrus.Logger
	client    *http.Client
}

// NewOptionChainService creates a new option chain service. baseURL already
// carries the fixed query parameters (asset class, side, limit); the date
// bounds are appended per request.
func NewOptionChainService(baseURL, userAgent string, timeout time.Duration) *OptionChainService {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	return &OptionChainService{
		baseURL:   baseURL,
		userAgent: userAgent,
		logger:    logger,
		client:    &http.Client{Timeout: timeout},
	}
}

// chainResponse mirrors the chain endpoint's envelope. Every market field
// arrives as string-or-null; values are parsed individually so one bad field
// never poisons the row.
type chainResponse struct {
	Data struct {
		Table struct {
			Rows []chainRow `json:"rows"`
		} `json:"table"`
	} `json:"data"`
}

type chainRow struct {
	Strike       string `json:"strike"`
	Bid          string `json:"c_Bid"`
	Ask          string `json:"c_Ask"`
	Last         string `json:"c_Last"`
	Volume       string `json:"c_Volume"`
	OpenInterest string `json:"c_Openinterest"`
}

// FetchRow retrieves the chain for the given expiry-date bounds and returns
// the first row whose strike matches exactly, or (nil, nil) when the chain
// has no such row. Placeholder or malformed fields come back as nil fields.
func (ocs *OptionChainService) FetchRow(ctx context.Context, fromDate, toDate, strike string) (*models.OptionRow, error) {
	url := fmt.Sprintf("%s&fromdate=%s&todate=%s", ocs.baseURL, fromDate, toDate)

	ocs.logger.WithFields(logrus.Fields{
		"fromdate": fromDate,
		"todate":   toDate,
		"strike":   strike,
	}).Debug("Fetching option chain")

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", ocs.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := ocs.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch option chain: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("chain API error %d: %s", resp.StatusCode, string(body))
	}

	var chain chainResponse
	if err := json.NewDecoder(resp.Body).Decode(&chain); err != nil {
		return nil, fmt.Errorf("failed to decode chain response: %w", err)
	}

	for _, row := range chain.Data.Table.Rows {
		if row.Strike == strike {
			return &models.OptionRow{
				Bid:          models.ParseOptionalFloat(row.Bid),
				Ask:          models.ParseOptionalFloat(row.Ask),
				Last:         models.ParseOptionalFloat(row.Last),
				Volume:       models.ParseOptionalFloat(row.Volume),
				OpenInterest: models.ParseOptionalFloat(row.OpenInterest),
			}, nil
		}
	}

	ocs.logger.WithField("strike", strike).Warn("Strike not found in chain")
	return nil, nil
}
