// Package entity はcandlesフィーチャーのドメインモデルを定義します。
package entity

import "time"

// Candle は特定の時間間隔における1本のOHLCV（四本値+出来高）データです。
// KPIエンジンはこのうちCloseとTimeのみを消費します。
type Candle struct {
	Symbol   string    // ティッカーシンボル（例: "AAPL", "7203.T"）
	Interval string    // 時間間隔（例: "1day", "1week", "1month"）
	Time     time.Time // このローソク足期間の開始時刻
	Open     float64   // 始値
	High     float64   // 高値
	Low      float64   // 安値
	Close    float64   // 終値
	Volume   int64     // 出来高
	Currency string    // 価格の通貨コード（例: "USD", "JPY"）
}
