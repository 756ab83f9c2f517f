// Package usecase は企業ニュース取得のビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"time"

	"market_metrics/internal/feature/news/domain/entity"
)

const (
	// DefaultLimit はニュース記事のデフォルト返却件数です。
	DefaultLimit = 10
	// MaxLimit はニュース記事の最大返却件数です。
	MaxLimit = 50
)

var (
	// ErrSymbolRequired は銘柄コードが空の場合に返されます。
	ErrSymbolRequired = errors.New("news: symbol is required")
	// ErrInvalidDateRange は開始日が終了日より後の場合に返されます。
	ErrInvalidDateRange = errors.New("news: from date must not be after to date")
)

// NewsRepository は企業ニュースの取得レイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type NewsRepository interface {
	// CompanyNews は指定銘柄・期間の企業ニュースを取得します。
	CompanyNews(ctx context.Context, symbol string, from, to time.Time) ([]entity.Article, error)
}

// newsUsecase は企業ニュース取得のユースケースを定義します。
type newsUsecase struct {
	news NewsRepository
}

// NewNewsUsecase はnewsUsecaseの新しいインスタンスを生成します。
func NewNewsUsecase(news NewsRepository) *newsUsecase {
	return &newsUsecase{news: news}
}

// FetchNews は指定銘柄・期間の企業ニュースを最大limit件取得します。
// 入力境界でバリデーションを行い、limitは範囲外の場合デフォルト値に丸めます。
func (nu *newsUsecase) FetchNews(ctx context.Context, symbol string, from, to time.Time, limit int) ([]entity.Article, error) {
	if symbol == "" {
		return nil, ErrSymbolRequired
	}
	if from.After(to) {
		return nil, ErrInvalidDateRange
	}
	if limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}

	articles, err := nu.news.CompanyNews(ctx, symbol, from, to)
	if err != nil {
		return nil, err
	}
	if len(articles) > limit {
		articles = articles[:limit]
	}
	return articles, nil
}
