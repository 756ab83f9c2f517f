// Package handler はkpiフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"market_metrics/internal/api"
	"market_metrics/internal/feature/kpi/domain/entity"
	"market_metrics/internal/feature/kpi/usecase"
)

// MetricsUsecase はKPI計算のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type MetricsUsecase interface {
	GetMetrics(ctx context.Context, symbol, interval string, outputsize int) (entity.SummaryMetrics, []entity.ChartPoint, error)
}

// MetricsHandler はKPIメトリクスのHTTPリクエストを処理します。
type MetricsHandler struct {
	uc MetricsUsecase
}

// NewMetricsHandler は指定されたusecaseでMetricsHandlerの新しいインスタンスを生成します。
func NewMetricsHandler(uc MetricsUsecase) *MetricsHandler {
	return &MetricsHandler{uc: uc}
}

// GetMetricsHandler は銘柄コードを受け取り、スカラーKPIとチャート用の派生系列をJSONで返します。
// NaNや±InfはJSONで表現できないため、レスポンス境界でnullに変換します。
// エンジン内部の値はサニタイズされません（伝播仕様）。
//
// エンドポイント例:
// GET /metrics/:code?interval=1day&outputsize=200
func (h *MetricsHandler) GetMetricsHandler(c *gin.Context) {
	code := c.Param("code")
	interval := c.DefaultQuery("interval", "1day")
	outputsizeStr := c.DefaultQuery("outputsize", "200")
	outputsize, _ := strconv.Atoi(outputsizeStr)

	metrics, series, err := h.uc.GetMetrics(c.Request.Context(), code, interval, outputsize)
	if err != nil {
		// データが存在しない場合は呼び出し側の問題として422を返す
		if errors.Is(err, usecase.ErrEmptySeries) {
			c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: "no price data for " + code})
			return
		}
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	out := api.MetricsResponse{
		Symbol:   code,
		Interval: interval,
		Summary: api.MetricsSummary{
			AvgClose:   metrics.AvgClose,
			MaxClose:   metrics.MaxClose,
			MinClose:   metrics.MinClose,
			Volatility: finiteOrNull(metrics.Volatility),
		},
		Series: make([]api.SeriesPointResponse, 0, len(series)),
	}
	for _, p := range series {
		out.Series = append(out.Series, api.SeriesPointResponse{
			// Dateは日単位の精度しか持たない（取り込み対象は1day以上の間隔のみ）
			Time:        openapi_types.Date{Time: p.Time.UTC()},
			Close:       p.Close,
			DailyReturn: finiteOrNull(p.DailyReturn),
			SmaShort:    finiteOrNull(p.SMAShort),
			SmaLong:     finiteOrNull(p.SMALong),
		})
	}

	c.JSON(http.StatusOK, out)
}

// finiteOrNull は有限値をポインタで、NaN・±Infをnilで返します。
func finiteOrNull(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
