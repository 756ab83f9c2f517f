package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"market_metrics/internal/app/di"
	candleadapters "market_metrics/internal/feature/candles/adapters"
	"market_metrics/internal/feature/candles/usecase"
	infradb "market_metrics/internal/platform/db"
	"market_metrics/internal/shared/ratelimiter"
)

func main() {

	db := infradb.OpenDB()
	marketRepo := di.NewMarket()
	candleRepo := candleadapters.NewCandleRepository(db)
	// Twelve Data 無料枠は 8 req/min
	limiter := ratelimiter.NewRateLimiter(8, time.Minute)
	uc := usecase.NewIngestUsecase(marketRepo, candleRepo, limiter)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	symbols := parseSymbols(os.Getenv("SYMBOLS"))
	if len(symbols) == 0 {
		log.Fatal("SYMBOLS is not set. Example: SYMBOLS=AAPL,MSFT,7203.T")
	}

	if err := uc.IngestAll(ctx, symbols); err != nil {
		log.Fatal(err)
	}
	log.Println("ingest ok")
}

// parseSymbols はカンマ区切りの銘柄リストを分解します。空要素は無視します。
func parseSymbols(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
