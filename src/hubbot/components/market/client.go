// Package market wraps the CoinGecko markets endpoint. One request, fixed
// timeout, no retries and no caching; callers turn any error into the
// user-facing fallback text.
package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	topCount       = 5
	requestTimeout = 10 * time.Second
)

type Coin struct {
	Symbol       string  `json:"symbol"`
	CurrentPrice float64 `json:"current_price"`
	Change24h    float64 `json:"price_change_percentage_24h"`
}

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// TopMovers fetches the top assets by market cap with 24h change data.
func (c *Client) TopMovers(ctx context.Context) ([]Coin, error) {
	params := url.Values{}
	params.Set("vs_currency", "usd")
	params.Set("order", "market_cap_desc")
	params.Set("per_page", fmt.Sprint(topCount))
	params.Set("page", "1")
	params.Set("price_change_percentage", "24h")

	reqURL := fmt.Sprintf("%s/coins/markets?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("coingecko returned status %d", resp.StatusCode)
	}

	var coins []Coin
	if err := json.NewDecoder(resp.Body).Decode(&coins); err != nil {
		return nil, fmt.Errorf("decode markets response: %w", err)
	}
	return coins, nil
}

// FormatTrends renders one line per asset: symbol, price, signed 24h change.
func FormatTrends(coins []Coin) string {
	var b strings.Builder
	b.WriteString("🔥 Top 5 Cryptocurrencies:\n")
	for _, coin := range coins {
		fmt.Fprintf(&b, "\n%s: $%s (%+.1f%%)",
			strings.ToUpper(coin.Symbol), formatPrice(coin.CurrentPrice), coin.Change24h)
	}
	b.WriteString("\n\n📊 24h price change")
	return b.String()
}

// FallbackText is the reply used when the endpoint cannot be reached.
const FallbackText = "⚠️ Couldn't fetch trends. Try again later.\nMeanwhile check /wallets or /vote"

// formatPrice adds thousand separators and trims sub-cent noise on large
// prices while keeping precision on small ones.
func formatPrice(price float64) string {
	var raw string
	if price >= 1 {
		raw = fmt.Sprintf("%.2f", price)
	} else {
		raw = fmt.Sprintf("%.6f", price)
	}

	parts := strings.SplitN(raw, ".", 2)
	whole := parts[0]

	var b strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	if len(parts) == 2 {
		b.WriteByte('.')
		b.WriteString(parts[1])
	}
	return b.String()
}
