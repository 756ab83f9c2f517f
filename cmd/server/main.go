package main

import (
	"context"
	"log"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"market_metrics/internal/app/di"
	"market_metrics/internal/app/router"
	authadapters "market_metrics/internal/feature/auth/adapters"
	authhandler "market_metrics/internal/feature/auth/transport/handler"
	authusecase "market_metrics/internal/feature/auth/usecase"
	candleadapters "market_metrics/internal/feature/candles/adapters"
	candleshandler "market_metrics/internal/feature/candles/transport/handler"
	candlesusecase "market_metrics/internal/feature/candles/usecase"
	kpihandler "market_metrics/internal/feature/kpi/transport/handler"
	kpiusecase "market_metrics/internal/feature/kpi/usecase"
	newshandler "market_metrics/internal/feature/news/transport/handler"
	newsusecase "market_metrics/internal/feature/news/usecase"
	sentimenthandler "market_metrics/internal/feature/sentiment/transport/handler"
	sentimentusecase "market_metrics/internal/feature/sentiment/usecase"
	"market_metrics/internal/platform/cache"
	infradb "market_metrics/internal/platform/db"
	jwtmw "market_metrics/internal/platform/jwt"
	infraredis "market_metrics/internal/platform/redis"
)

const newsCacheTTL = 15 * time.Minute

func main() {
	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	candleRepo := candleadapters.NewCandleRepository(db)
	newsRepo := di.NewNewsClient()

	// Redisキャッシュでラップ
	ttl := cache.TimeUntilNextRefresh(os.Getenv("CACHE_TZ"))
	cachedCandleRepo := cache.NewCachingCandleRepository(rdb, ttl, candleRepo, "candles")
	cachedNewsRepo := cache.NewCachingNewsRepository(rdb, newsCacheTTL, newsRepo, "news")

	// Gemini分類器（APIキー未設定なら起動失敗）
	classifier, err := di.NewClassifier(context.Background())
	if err != nil {
		log.Fatal("failed to create sentiment classifier: ", err)
	}

	// Usecase
	jwtGen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), 24*time.Hour)
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	candlesUC := candlesusecase.NewCandlesUsecase(cachedCandleRepo)
	kpiUC := kpiusecase.NewKPIUsecase(cachedCandleRepo)
	newsUC := newsusecase.NewNewsUsecase(cachedNewsRepo)
	sentimentUC := sentimentusecase.NewSentimentUsecase(newsUC, classifier)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	candlesH := candleshandler.NewCandlesHandler(candlesUC)
	metricsH := kpihandler.NewMetricsHandler(kpiUC)
	newsH := newshandler.NewNewsHandler(newsUC)
	sentimentH := sentimenthandler.NewSentimentHandler(sentimentUC)

	// ルータ生成
	router := router.NewRouter(authH, candlesH, metricsH, newsH, sentimentH)

	// JWT_SECRETチェック（開発中の注意喚起）
	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
