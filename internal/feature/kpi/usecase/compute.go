// Package usecase はKPI計算エンジンとその公開ユースケースを実装します。
package usecase

import (
	"errors"
	"math"

	"market_metrics/internal/feature/kpi/domain/entity"
)

const (
	// ShortWindowMin は短期SMAウィンドウの下限です。
	ShortWindowMin = 2
	// ShortWindowMax は短期SMAウィンドウの上限です。
	ShortWindowMax = 20
	// LongWindowMin は長期SMAウィンドウの下限です。
	LongWindowMin = 3
	// LongWindowMax は長期SMAウィンドウの上限です。
	LongWindowMax = 50
)

// ErrEmptySeries は入力の価格系列が空であることを示します。
var ErrEmptySeries = errors.New("kpi: empty price series")

// AdaptiveWindows は系列長nに適応したSMAウィンドウ幅を返します。
// 短期は n/2 を [2,20] に、長期は n-1 を [3,50] にクランプします。
// 系列が短い場合、短期と長期が同じ幅になることがあります。
func AdaptiveWindows(n int) (short, long int) {
	short = clamp(n/2, ShortWindowMin, ShortWindowMax)
	long = clamp(n-1, LongWindowMin, LongWindowMax)
	return short, long
}

// ComputeKPIs は終値系列からスカラーKPIと行ごとの派生系列を計算します。
//
// 派生系列の未定義値（先頭行のリターン、ウィンドウが埋まる前のSMA）は NaN で表現します。
// 前日終値が0の場合のリターンは ±Inf / NaN となり、そのまま下流へ伝播します。
// 丸めるのはスカラーKPIの4フィールドのみです。派生系列（リターン・SMA）は
// フル精度のまま返し、表示用の丸めは呼び出し側に委ねます。
func ComputeKPIs(closes []float64) (entity.SummaryMetrics, []entity.SeriesPoint, error) {
	n := len(closes)
	if n == 0 {
		return entity.SummaryMetrics{}, nil, ErrEmptySeries
	}

	short, long := AdaptiveWindows(n)

	points := make([]entity.SeriesPoint, n)
	returns := make([]float64, n)
	returns[0] = math.NaN()

	for i := 0; i < n; i++ {
		p := entity.SeriesPoint{
			Close:       closes[i],
			DailyReturn: math.NaN(),
			SMAShort:    math.NaN(),
			SMALong:     math.NaN(),
		}
		if i > 0 {
			// 前日終値が0なら IEEE754 に従い ±Inf / NaN になる
			r := closes[i]/closes[i-1] - 1
			returns[i] = r
			p.DailyReturn = r
		}
		// ウィンドウごとに素朴に再集計する。
		// 差分更新（incremental sum）は浮動小数の加算順が変わり結果がずれるため使わない。
		if i+1 >= short {
			p.SMAShort = windowMean(closes[i+1-short : i+1])
		}
		if i+1 >= long {
			p.SMALong = windowMean(closes[i+1-long : i+1])
		}
		points[i] = p
	}

	sum, maxC, minC := 0.0, closes[0], closes[0]
	for _, c := range closes {
		sum += c
		if c > maxC {
			maxC = c
		}
		if c < minC {
			minC = c
		}
	}

	summary := entity.SummaryMetrics{
		AvgClose:   roundTo(sum/float64(n), 2),
		MaxClose:   roundTo(maxC, 2),
		MinClose:   roundTo(minC, 2),
		Volatility: roundTo(sampleStdDev(returns), 4),
	}

	return summary, points, nil
}

// windowMean はウィンドウ内の算術平均を返します。
func windowMean(window []float64) float64 {
	sum := 0.0
	for _, v := range window {
		sum += v
	}
	return sum / float64(len(window))
}

// sampleStdDev はNaNを除外した標本標準偏差（n-1分母）を返します。
// 有効サンプルが2未満の場合は NaN を返します。
func sampleStdDev(values []float64) float64 {
	valid := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			valid = append(valid, v)
		}
	}
	if len(valid) < 2 {
		return math.NaN()
	}

	mean := 0.0
	for _, v := range valid {
		mean += v
	}
	mean /= float64(len(valid))

	ss := 0.0
	for _, v := range valid {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(valid)-1))
}

// roundTo は小数点以下digits桁に四捨五入します（half away from zero）。
// NaN・±Inf はそのまま返ります。
func roundTo(x float64, digits int) float64 {
	pow := math.Pow(10, float64(digits))
	return math.Round(x*pow) / pow
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
