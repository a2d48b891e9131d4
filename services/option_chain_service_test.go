package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const chainBody = `{
  "data": {
    "table": {
      "rows": [
        {"strike": "12.00", "c_Bid": "5.10", "c_Ask": "5.30", "c_Last": "5.20", "c_Volume": "12", "c_Openinterest": "1,004"},
        {"strike": "13.00", "c_Bid": "4.50", "c_Ask": "4.70", "c_Last": "--", "c_Volume": "--", "c_Openinterest": "2,310"}
      ]
    }
  }
}`

func newChainTestServer(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "2026-11-20", r.URL.Query().Get("fromdate"))
		require.Equal(t, "2026-11-20", r.URL.Query().Get("todate"))
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func chainService(baseURL string) *OptionChainService {
	return NewOptionChainService(baseURL+"/option-chain?assetclass=stocks&limit=100&money=all&callput=call", "test-agent", time.Second)
}

func TestOptionChainServiceMatchesStrike(t *testing.T) {
	server := newChainTestServer(t, chainBody, http.StatusOK)
	defer server.Close()

	row, err := chainService(server.URL).FetchRow(context.Background(), "2026-11-20", "2026-11-20", "13.00")
	require.NoError(t, err)
	require.NotNil(t, row)

	require.NotNil(t, row.Bid)
	require.Equal(t, 4.50, *row.Bid)
	require.NotNil(t, row.Ask)
	require.Equal(t, 4.70, *row.Ask)
	require.Nil(t, row.Last, "placeholder should parse to absent")
	require.Nil(t, row.Volume)
	require.NotNil(t, row.OpenInterest)
	require.Equal(t, 2310.0, *row.OpenInterest)
}

func TestOptionChainServiceMissingStrikeIsNotAnError(t *testing.T) {
	server := newChainTestServer(t, chainBody, http.StatusOK)
	defer server.Close()

	row, err := chainService(server.URL).FetchRow(context.Background(), "2026-11-20", "2026-11-20", "99.00")
	require.NoError(t, err)
	require.Nil(t, row)
}

func TestOptionChainServiceEmptyTableIsNotAnError(t *testing.T) {
	server := newChainTestServer(t, `{"data":{"table":{"rows":[]}}}`, http.StatusOK)
	defer server.Close()

	row, err := chainService(server.URL).FetchRow(context.Background(), "2026-11-20", "2026-11-20", "13.00")
	require.NoError(t, err)
	require.Nil(t, row)
}

func TestOptionChainServiceBadStatusIsAnError(t *testing.T) {
	server := newChainTestServer(t, "throttled", http.StatusTooManyRequests)
	defer server.Close()

	_, err := chainService(server.URL).FetchRow(context.Background(), "2026-11-20", "2026-11-20", "13.00")
	require.Error(t, err)
}

func TestOptionChainServiceMalformedBodyIsAnError(t *testing.T) {
	server := newChainTestServer(t, "<html>maintenance</html>", http.StatusOK)
	defer server.Close()

	_, err := chainService(server.URL).FetchRow(context.Background(), "2026-11-20", "2026-11-20", "13.00")
	require.Error(t, err)
}
