package finnhub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"market_metrics/internal/feature/news/adapters/finnhub/dto"
	"market_metrics/internal/feature/news/domain/entity"
	"market_metrics/internal/feature/news/usecase"
)

// プロバイダー側の欠落フィールドに対するフォールバック値。
const (
	fallbackTitle     = "No title available"
	fallbackPublisher = "Unknown publisher"
	fallbackSummary   = "No summary available"
)

// Client はFinnhub外部APIから企業ニュースを取得するNewsRepository実装です。
type Client struct {
	cfg    Config
	client *http.Client
}

// ClientがNewsRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.NewsRepository = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// CompanyNews はFinnhub APIから指定銘柄・期間の企業ニュースを取得します。
// 日付はYYYY-MM-DD形式でAPIへ渡されます。欠落フィールドはフォールバック値で埋めます。
func (f *Client) CompanyNews(ctx context.Context, symbol string, from, to time.Time) ([]entity.Article, error) {
	if f.cfg.APIKey == "" {
		return nil, fmt.Errorf("finnhub: FINNHUB_API_KEY is not set")
	}

	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("from", from.Format("2006-01-02"))
	q.Set("to", to.Format("2006-01-02"))
	q.Set("token", f.cfg.APIKey)

	u := fmt.Sprintf("%s/api/v1/company-news?%s", f.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("finnhub http %d", res.StatusCode)
	}

	var items []dto.CompanyNewsItem
	if err := json.NewDecoder(res.Body).Decode(&items); err != nil {
		return nil, err
	}

	articles := make([]entity.Article, 0, len(items))
	for _, it := range items {
		a := entity.Article{
			Title:     it.Headline,
			Publisher: it.Source,
			Summary:   it.Summary,
			URL:       it.URL,
		}
		if a.Title == "" {
			a.Title = fallbackTitle
		}
		if a.Publisher == "" {
			a.Publisher = fallbackPublisher
		}
		if a.Summary == "" {
			a.Summary = fallbackSummary
		}
		// FinnhubはUnix秒で日時を返す。0は「不明」としてゼロ値のまま残す
		if it.Datetime > 0 {
			a.PublishedAt = time.Unix(it.Datetime, 0).UTC()
		}
		articles = append(articles, a)
	}
	return articles, nil
}
