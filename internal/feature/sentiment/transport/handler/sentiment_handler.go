// Package handler はsentimentフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"market_metrics/internal/api"
	newsusecase "market_metrics/internal/feature/news/usecase"
	"market_metrics/internal/feature/sentiment/domain/entity"
)

const publishedLayout = "2006-01-02 15:04:05"

// SentimentUsecase はセンチメント分析のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type SentimentUsecase interface {
	GetSentiment(ctx context.Context, symbol string, from, to time.Time, limit int) ([]entity.ScoredArticle, entity.Summary, error)
}

// SentimentHandler はセンチメント分析のHTTPリクエストを処理します。
type SentimentHandler struct {
	uc SentimentUsecase
}

// NewSentimentHandler は指定されたusecaseでSentimentHandlerの新しいインスタンスを生成します。
func NewSentimentHandler(uc SentimentUsecase) *SentimentHandler {
	return &SentimentHandler{uc: uc}
}

// GetSentimentHandler は銘柄コードと期間を受け取り、スコア付きニュースと
// BUY/HOLD/SELLの分布をJSONで返します。
//
// エンドポイント例:
// GET /sentiment/:code?from=2025-01-01&to=2025-02-01&limit=10
func (h *SentimentHandler) GetSentimentHandler(c *gin.Context) {
	code := c.Param("code")

	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid from date, use YYYY-MM-DD"})
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid to date, use YYYY-MM-DD"})
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))

	scored, summary, err := h.uc.GetSentiment(c.Request.Context(), code, from, to, limit)
	if err != nil {
		if errors.Is(err, newsusecase.ErrSymbolRequired) || errors.Is(err, newsusecase.ErrInvalidDateRange) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	out := api.SentimentResponse{
		Symbol: code,
		Summary: api.SentimentSummary{
			Buy:   summary.Buy,
			Hold:  summary.Hold,
			Sell:  summary.Sell,
			Total: summary.Total,
		},
		Articles: make([]api.ScoredArticleResponse, 0, len(scored)),
	}
	for _, a := range scored {
		published := "Unknown date"
		if !a.PublishedAt.IsZero() {
			published = a.PublishedAt.UTC().Format(publishedLayout)
		}
		out.Articles = append(out.Articles, api.ScoredArticleResponse{
			Title:     a.Title,
			Publisher: a.Publisher,
			Summary:   a.Summary,
			Link:      a.URL,
			Published: published,
			Sentiment: api.ScoredArticleResponseSentiment(a.Signal),
			RawLabel:  a.RawLabel,
			Score:     a.Score,
		})
	}

	c.JSON(http.StatusOK, out)
}
