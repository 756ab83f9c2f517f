// Package di provides dependency injection factories for creating application components.
package di

import (
	"market_metrics/internal/feature/candles/adapters/twelvedata"
	infrahttp "market_metrics/internal/platform/http"
)

// NewMarket creates a fully configured Twelve Data market client with HTTP client.
func NewMarket() *twelvedata.Market {
	cfg := twelvedata.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return twelvedata.NewMarket(cfg, httpClient)
}
