package di

import (
	"context"

	"market_metrics/internal/feature/sentiment/adapters/gemini"
)

// NewClassifier creates the Gemini-backed article classifier.
// モデルクライアントはここで1回だけ生成し、以降は読み取り専用で共有します。
// アンビエントなグローバル状態は持たず、usecaseへ明示的に注入されます。
func NewClassifier(ctx context.Context) (*gemini.Classifier, error) {
	return gemini.NewClassifier(ctx)
}
