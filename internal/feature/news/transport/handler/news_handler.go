// Package handler はnewsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"market_metrics/internal/api"
	"market_metrics/internal/feature/news/domain/entity"
	"market_metrics/internal/feature/news/usecase"
)

// publishedLayout は公開日時のレスポンス表記です。
const publishedLayout = "2006-01-02 15:04:05"

// NewsUsecase は企業ニュース取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type NewsUsecase interface {
	FetchNews(ctx context.Context, symbol string, from, to time.Time, limit int) ([]entity.Article, error)
}

// NewsHandler は企業ニュースのHTTPリクエストを処理します。
type NewsHandler struct {
	uc NewsUsecase
}

// NewNewsHandler は指定されたusecaseでNewsHandlerの新しいインスタンスを生成します。
func NewNewsHandler(uc NewsUsecase) *NewsHandler {
	return &NewsHandler{uc: uc}
}

// GetNewsHandler は銘柄コードと期間を受け取り、企業ニュースをJSONで返します。
//
// エンドポイント例:
// GET /news/:code?from=2025-01-01&to=2025-02-01&limit=10
func (h *NewsHandler) GetNewsHandler(c *gin.Context) {
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
	// 不正な値は0となり、usecase側でデフォルトに変換される
	limit, _ := strconv.Atoi(c.Query("limit"))

	articles, err := h.uc.FetchNews(c.Request.Context(), code, from, to, limit)
	if err != nil {
		if errors.Is(err, usecase.ErrSymbolRequired) || errors.Is(err, usecase.ErrInvalidDateRange) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]api.ArticleResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, api.ArticleResponse{
			Title:     a.Title,
			Publisher: a.Publisher,
			Summary:   a.Summary,
			Link:      a.URL,
			Published: formatPublished(a.PublishedAt),
		})
	}

	c.JSON(http.StatusOK, out)
}

// formatPublished は公開日時を表示用文字列に変換します。ゼロ値は「不明」扱いです。
func formatPublished(t time.Time) string {
	if t.IsZero() {
		return "Unknown date"
	}
	return t.UTC().Format(publishedLayout)
}
