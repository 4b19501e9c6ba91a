package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// RatesClient fetches exchange rates relative to the base currency.
// Best effort: display formatting falls back to rate 1 for anything missing,
// so a failed fetch degrades to showing native prices.
type RatesClient interface {
	Fetch(ctx context.Context) (map[string]float64, error)
}

type HTTPRatesClient struct {
	URL    string
	Client *http.Client
}

type ratesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

func (c HTTPRatesClient) httpClient() *http.Client {
	if c.Client != nil {
		return c.Client
	}
	return &http.Client{Timeout: 10 * time.Second}
}

func (c HTTPRatesClient) Fetch(ctx context.Context) (map[string]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return map[string]float64{}, err
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return map[string]float64{}, err
	}
	defer resp.Body.Close()

	var parsed ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return map[string]float64{}, err
	}
	if parsed.Rates == nil {
		return map[string]float64{}, nil
	}
	return parsed.Rates, nil
}
