// Package entity はsentimentフィーチャーのドメインモデルを定義します。
package entity

import newsentity "market_metrics/internal/feature/news/domain/entity"

// Signal はニュース記事から導かれる売買シグナルです。
type Signal string

const (
	SignalBuy  Signal = "BUY"  // ポジティブな記事
	SignalHold Signal = "HOLD" // ニュートラルな記事
	SignalSell Signal = "SELL" // ネガティブな記事
)

// ScoredArticle はセンチメント分類の結果を付与した記事です。
// 元の記事は変更せず、新しい値として生成されます。
type ScoredArticle struct {
	newsentity.Article
	Signal   Signal  // BUY / HOLD / SELL
	RawLabel string  // モデルの生ラベル（positive / neutral / negative）
	Score    float64 // 信頼度スコア（0.0 ~ 1.0）
}

// Summary は記事集合のシグナル分布です。
type Summary struct {
	Buy   int
	Hold  int
	Sell  int
	Total int
}
