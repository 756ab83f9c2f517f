// Package entity はkpiフィーチャーのドメインモデルを定義します。
package entity

import "time"

// SummaryMetrics は価格系列全体から導出されるスカラーKPIです。
// Volatility はサンプル数が不足する場合 NaN になります（未定義の表現）。
type SummaryMetrics struct {
	AvgClose   float64 // 終値の算術平均（2桁丸め）
	MaxClose   float64 // 終値の最大値（2桁丸め）
	MinClose   float64 // 終値の最小値（2桁丸め）
	Volatility float64 // 日次リターンの標本標準偏差（4桁丸め）
}

// SeriesPoint は1行分の派生系列値です。
// ウィンドウが埋まるまでの行や先頭行では NaN が「未定義」を表します。
// 派生値は丸めずフル精度で保持します（丸めはスカラーKPIのみ）。
type SeriesPoint struct {
	Close       float64 // 終値（入力をそのまま保持）
	DailyReturn float64 // 前日比リターン。先頭行は NaN
	SMAShort    float64 // 短期単純移動平均（フル精度）
	SMALong     float64 // 長期単純移動平均（フル精度）
}

// ChartPoint は時刻付きの派生系列値です。チャート描画用のフィードに使います。
type ChartPoint struct {
	Time time.Time
	SeriesPoint
}
