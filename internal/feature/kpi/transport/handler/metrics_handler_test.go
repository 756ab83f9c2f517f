package handler

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market_metrics/internal/api"
	"market_metrics/internal/feature/kpi/domain/entity"
	"market_metrics/internal/feature/kpi/usecase"
)

// mockMetricsUsecase はMetricsUsecaseインターフェースのモック実装です。
type mockMetricsUsecase struct {
	GetMetricsFunc func(ctx context.Context, symbol, interval string, outputsize int) (entity.SummaryMetrics, []entity.ChartPoint, error)
}

func (m *mockMetricsUsecase) GetMetrics(ctx context.Context, symbol, interval string, outputsize int) (entity.SummaryMetrics, []entity.ChartPoint, error) {
	if m.GetMetricsFunc != nil {
		return m.GetMetricsFunc(ctx, symbol, interval, outputsize)
	}
	return entity.SummaryMetrics{}, nil, errors.New("GetMetricsFunc is not implemented")
}

func performMetricsRequest(uc MetricsUsecase, url string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/metrics/:code", NewMetricsHandler(uc).GetMetricsHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	r.ServeHTTP(w, req)
	return w
}

// TestGetMetricsHandler_Success は正常系のレスポンス形式を検証します。
// NaNはJSONのnullへ、有限値はそのまま出力されます。
func TestGetMetricsHandler_Success(t *testing.T) {
	day1 := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	mock := &mockMetricsUsecase{
		GetMetricsFunc: func(ctx context.Context, symbol, interval string, outputsize int) (entity.SummaryMetrics, []entity.ChartPoint, error) {
			assert.Equal(t, "AAPL", symbol)
			assert.Equal(t, "1day", interval)
			assert.Equal(t, 200, outputsize)

			summary := entity.SummaryMetrics{
				AvgClose:   100.5,
				MaxClose:   101,
				MinClose:   100,
				Volatility: math.NaN(), // リターンが1つしかないので未定義
			}
			series := []entity.ChartPoint{
				{Time: day1, SeriesPoint: entity.SeriesPoint{
					Close: 100, DailyReturn: math.NaN(), SMAShort: math.NaN(), SMALong: math.NaN(),
				}},
				{Time: day2, SeriesPoint: entity.SeriesPoint{
					Close: 101, DailyReturn: 0.01, SMAShort: 100.5, SMALong: math.NaN(),
				}},
			}
			return summary, series, nil
		},
	}

	w := performMetricsRequest(mock, "/metrics/AAPL")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "AAPL", body["symbol"])
	assert.Equal(t, "1day", body["interval"])

	summary, ok := body["summary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 100.5, summary["avg_close"])
	assert.Nil(t, summary["volatility"], "NaN volatility must serialize as null")

	series, ok := body["series"].([]any)
	require.True(t, ok)
	require.Len(t, series, 2)

	first := series[0].(map[string]any)
	assert.Equal(t, "2024-06-03", first["time"])
	assert.Equal(t, 100.0, first["close"])
	assert.Nil(t, first["daily_return"], "first daily return must be null")
	assert.Nil(t, first["sma_short"])
	assert.Nil(t, first["sma_long"])

	second := series[1].(map[string]any)
	assert.Equal(t, 0.01, second["daily_return"])
	assert.Equal(t, 100.5, second["sma_short"])
	assert.Nil(t, second["sma_long"])
}

// TestGetMetricsHandler_QueryParams はクエリパラメータがusecaseへ渡ることを検証します。
func TestGetMetricsHandler_QueryParams(t *testing.T) {
	mock := &mockMetricsUsecase{
		GetMetricsFunc: func(ctx context.Context, symbol, interval string, outputsize int) (entity.SummaryMetrics, []entity.ChartPoint, error) {
			assert.Equal(t, "7203.T", symbol)
			assert.Equal(t, "1week", interval)
			assert.Equal(t, 30, outputsize)
			return entity.SummaryMetrics{}, []entity.ChartPoint{}, nil
		},
	}

	w := performMetricsRequest(mock, "/metrics/7203.T?interval=1week&outputsize=30")
	assert.Equal(t, http.StatusOK, w.Code)
}

// TestGetMetricsHandler_EmptySeries はデータなしのとき422が返ることを検証します。
func TestGetMetricsHandler_EmptySeries(t *testing.T) {
	mock := &mockMetricsUsecase{
		GetMetricsFunc: func(ctx context.Context, symbol, interval string, outputsize int) (entity.SummaryMetrics, []entity.ChartPoint, error) {
			return entity.SummaryMetrics{}, nil, usecase.ErrEmptySeries
		},
	}

	w := performMetricsRequest(mock, "/metrics/NOPE")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body api.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "no price data for NOPE", body.Error)
}

// TestGetMetricsHandler_UpstreamError はその他のエラーのとき502が返ることを検証します。
func TestGetMetricsHandler_UpstreamError(t *testing.T) {
	mock := &mockMetricsUsecase{
		GetMetricsFunc: func(ctx context.Context, symbol, interval string, outputsize int) (entity.SummaryMetrics, []entity.ChartPoint, error) {
			return entity.SummaryMetrics{}, nil, errors.New("db connection lost")
		},
	}

	w := performMetricsRequest(mock, "/metrics/AAPL")
	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"error":"db connection lost"}`, w.Body.String())
}
