package usecase

import (
	"context"
	"sort"

	candleentity "market_metrics/internal/feature/candles/domain/entity"
	"market_metrics/internal/feature/kpi/domain/entity"
)

const (
	// DefaultInterval はKPI計算に使うローソク足のデフォルト時間間隔です。
	DefaultInterval = "1day"
	// DefaultOutputSize はデフォルトの取得件数です。
	DefaultOutputSize = 200
	// MaxOutputSize は最大取得件数です。
	MaxOutputSize = 5000
)

// CandleRepository はローソク足データの読み取りを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type CandleRepository interface {
	// Find はローソク足データを検索します。返却順序は新しい順です。
	Find(ctx context.Context, symbol, interval string, outputsize int) ([]candleentity.Candle, error)
}

// kpiUsecase はKPI計算のユースケースを定義します。
type kpiUsecase struct {
	candle CandleRepository
}

// NewKPIUsecase はkpiUsecaseの新しいインスタンスを生成します。
func NewKPIUsecase(candle CandleRepository) *kpiUsecase {
	return &kpiUsecase{candle: candle}
}

// GetMetrics は保存済みのローソク足からスカラーKPIと派生系列を計算します。
// リポジトリは新しい順で返すため、計算前に時刻の昇順へ並べ替えます。
// データが1件も無い場合は ErrEmptySeries を返します。
func (ku *kpiUsecase) GetMetrics(ctx context.Context, symbol, interval string, outputsize int) (entity.SummaryMetrics, []entity.ChartPoint, error) {
	if interval == "" {
		interval = DefaultInterval
	}
	if outputsize <= 0 || outputsize > MaxOutputSize {
		outputsize = DefaultOutputSize
	}

	candles, err := ku.candle.Find(ctx, symbol, interval, outputsize)
	if err != nil {
		return entity.SummaryMetrics{}, nil, err
	}
	if len(candles) == 0 {
		return entity.SummaryMetrics{}, nil, ErrEmptySeries
	}

	// 日次リターンとSMAは時系列の昇順が前提
	sort.Slice(candles, func(i, j int) bool {
		return candles[i].Time.Before(candles[j].Time)
	})

	closes := make([]float64, len(candles))
	for i, c := range candles {
		closes[i] = c.Close
	}

	summary, points, err := ComputeKPIs(closes)
	if err != nil {
		return entity.SummaryMetrics{}, nil, err
	}

	chart := make([]entity.ChartPoint, len(points))
	for i := range points {
		chart[i] = entity.ChartPoint{Time: candles[i].Time, SeriesPoint: points[i]}
	}

	return summary, chart, nil
}
