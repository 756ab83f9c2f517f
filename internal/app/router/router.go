// Package router はHTTPルーティングを定義します。
package router

import (
	authhandler "market_metrics/internal/feature/auth/transport/handler"
	candleshandler "market_metrics/internal/feature/candles/transport/handler"
	kpihandler "market_metrics/internal/feature/kpi/transport/handler"
	newshandler "market_metrics/internal/feature/news/transport/handler"
	sentimenthandler "market_metrics/internal/feature/sentiment/transport/handler"
	"market_metrics/internal/platform/http/handler"
	jwtmw "market_metrics/internal/platform/jwt"

	"github.com/gin-gonic/gin"
)

func NewRouter(authHandler *authhandler.AuthHandler, candles *candleshandler.CandlesHandler,
	metrics *kpihandler.MetricsHandler, news *newshandler.NewsHandler,
	sentiment *sentimenthandler.SentimentHandler) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/signup", authHandler.Signup)
	// ログイン（JWT 発行）
	r.POST("/login", authHandler.Login)

	// 認証必須のルート
	// r.Group("/") でルートグループを作成
	auth := r.Group("/")
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	auth.Use(jwtmw.AuthRequired())
	{
		auth.GET("/candles/:code", candles.GetCandlesHandler)
		auth.GET("/metrics/:code", metrics.GetMetricsHandler)
		auth.GET("/news/:code", news.GetNewsHandler)
		auth.GET("/sentiment/:code", sentiment.GetSentimentHandler)
	}

	return r
}
