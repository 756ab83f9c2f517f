package di

import (
	"market_metrics/internal/feature/news/adapters/finnhub"
	infrahttp "market_metrics/internal/platform/http"
)

// NewNewsClient creates a fully configured Finnhub client with HTTP client.
func NewNewsClient() *finnhub.Client {
	cfg := finnhub.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return finnhub.NewClient(cfg, httpClient)
}
