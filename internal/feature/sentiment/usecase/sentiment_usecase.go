// Package usecase はsentimentフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	newsentity "market_metrics/internal/feature/news/domain/entity"
	"market_metrics/internal/feature/sentiment/domain/entity"
)

// モデルが返す生ラベル。
const (
	LabelPositive = "positive"
	LabelNeutral  = "neutral"
	LabelNegative = "negative"
)

// ArticleClassifier は記事テキストのセンチメント分類を抽象化します。
// モデルの初期化と共有は実装側（adapters）の責務で、ここには状態を持ち込みません。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type ArticleClassifier interface {
	// Classify はテキストを分類し、生ラベルと信頼度スコアを返します。
	Classify(ctx context.Context, text string) (label string, score float64, err error)
}

// NewsReader は分類対象の記事を取得します。newsフィーチャーのusecaseが実装します。
type NewsReader interface {
	FetchNews(ctx context.Context, symbol string, from, to time.Time, limit int) ([]newsentity.Article, error)
}

// sentimentUsecase はニュース記事のセンチメント分析ユースケースを定義します。
type sentimentUsecase struct {
	news       NewsReader
	classifier ArticleClassifier
}

// NewSentimentUsecase はsentimentUsecaseの新しいインスタンスを生成します。
func NewSentimentUsecase(news NewsReader, classifier ArticleClassifier) *sentimentUsecase {
	return &sentimentUsecase{news: news, classifier: classifier}
}

// AnalyzeArticles は記事リストにセンチメント分類を付与します。
// テキストが空の記事はモデルを呼ばずにHOLD/neutral/0として扱います。
func (su *sentimentUsecase) AnalyzeArticles(ctx context.Context, articles []newsentity.Article) ([]entity.ScoredArticle, error) {
	out := make([]entity.ScoredArticle, 0, len(articles))
	for _, a := range articles {
		text := buildText(a)
		if text == "" {
			out = append(out, entity.ScoredArticle{
				Article:  a,
				Signal:   entity.SignalHold,
				RawLabel: LabelNeutral,
				Score:    0,
			})
			continue
		}

		label, score, err := su.classifier.Classify(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("classify %q: %w", a.Title, err)
		}
		signal, err := toSignal(label)
		if err != nil {
			return nil, err
		}
		out = append(out, entity.ScoredArticle{
			Article:  a,
			Signal:   signal,
			RawLabel: label,
			Score:    score,
		})
	}
	return out, nil
}

// GetSentiment は指定銘柄のニュースを取得してセンチメント分類し、
// スコア付き記事とシグナル分布を返します。
func (su *sentimentUsecase) GetSentiment(ctx context.Context, symbol string, from, to time.Time, limit int) ([]entity.ScoredArticle, entity.Summary, error) {
	articles, err := su.news.FetchNews(ctx, symbol, from, to, limit)
	if err != nil {
		return nil, entity.Summary{}, err
	}

	scored, err := su.AnalyzeArticles(ctx, articles)
	if err != nil {
		return nil, entity.Summary{}, err
	}

	return scored, summarize(scored), nil
}

// buildText は見出しと要約を1つのテキストに結合します。どちらかが空でも動作します。
// 両方空の場合は空文字列を返し、呼び出し側がモデル呼び出しを省略します。
func buildText(a newsentity.Article) string {
	if a.Title == "" && a.Summary == "" {
		return ""
	}
	return strings.TrimSpace(a.Title + ". " + a.Summary)
}

// toSignal はモデルの生ラベルを売買シグナルに変換します。
func toSignal(label string) (entity.Signal, error) {
	switch label {
	case LabelPositive:
		return entity.SignalBuy, nil
	case LabelNeutral:
		return entity.SignalHold, nil
	case LabelNegative:
		return entity.SignalSell, nil
	default:
		return "", fmt.Errorf("sentiment: unknown label %q", label)
	}
}

// summarize はスコア付き記事のシグナル分布を集計します。
func summarize(scored []entity.ScoredArticle) entity.Summary {
	var s entity.Summary
	for _, a := range scored {
		switch a.Signal {
		case entity.SignalBuy:
			s.Buy++
		case entity.SignalHold:
			s.Hold++
		case entity.SignalSell:
			s.Sell++
		}
	}
	s.Total = len(scored)
	return s
}
