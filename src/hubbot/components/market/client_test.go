package market

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopMoversRequestShape(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"symbol":"btc","current_price":67123.45,"price_change_percentage_24h":1.23},
			{"symbol":"eth","current_price":3200.1,"price_change_percentage_24h":-2.5}
		]`))
	}))
	defer srv.Close()

	coins, err := NewClient(srv.URL).TopMovers(context.Background())
	require.NoError(t, err)
	require.Len(t, coins, 2)

	assert.Equal(t, "/coins/markets", gotPath)
	assert.Equal(t, []string{"usd"}, gotQuery["vs_currency"])
	assert.Equal(t, []string{"market_cap_desc"}, gotQuery["order"])
	assert.Equal(t, []string{"5"}, gotQuery["per_page"])
	assert.Equal(t, []string{"24h"}, gotQuery["price_change_percentage"])

	assert.Equal(t, "btc", coins[0].Symbol)
	assert.InDelta(t, 67123.45, coins[0].CurrentPrice, 0.001)
}

func TestTopMoversNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).TopMovers(context.Background())
	assert.Error(t, err)
}

func TestTopMoversTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewClient(srv.URL).TopMovers(ctx)
	assert.Error(t, err)
}

func TestFormatTrends(t *testing.T) {
	text := FormatTrends([]Coin{
		{Symbol: "btc", CurrentPrice: 67123.45, Change24h: 1.23},
		{Symbol: "eth", CurrentPrice: 0.5, Change24h: -2.5},
	})

	assert.Contains(t, text, "BTC: $67,123.45 (+1.2%)")
	assert.Contains(t, text, "ETH: $0.500000 (-2.5%)")
	assert.Contains(t, text, "24h price change")
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "1,234,567.89", formatPrice(1234567.89))
	assert.Equal(t, "999.00", formatPrice(999))
	assert.Equal(t, "0.000035", formatPrice(0.000035))
}
