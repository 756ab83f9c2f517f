package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"market_metrics/internal/feature/news/domain/entity"
	"market_metrics/internal/feature/news/usecase"
)

// CachingNewsRepository はNewsRepositoryにリードスルーキャッシュを重ねる
// デコレータです。同一クエリ(symbol, from, to)のニュースは短時間では
// 変化しないため、TTL失効のみで無効化パスは持ちません。
type CachingNewsRepository struct {
	next      usecase.NewsRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingNewsRepository はキャッシュ付きニュースリポジトリを生成します。
// ttlが0以下なら15分、namespaceが空なら "news" を使います。
func NewCachingNewsRepository(rdb *redis.Client, ttl time.Duration, next usecase.NewsRepository, namespace string) *CachingNewsRepository {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	if namespace == "" {
		namespace = "news"
	}
	return &CachingNewsRepository{next: next, rdb: rdb, ttl: ttl, namespace: namespace}
}

// CompanyNews はキャッシュを参照し、ミス時にプロバイダへフォールバックして
// 結果を格納します。格納はベストエフォートです。
func (c *CachingNewsRepository) CompanyNews(ctx context.Context, symbol string, from, to time.Time) ([]entity.Article, error) {
	if c.rdb == nil {
		return c.next.CompanyNews(ctx, symbol, from, to)
	}

	key := fmt.Sprintf("%s:%s:%s:%s",
		c.namespace, keyToken(symbol), from.Format("2006-01-02"), to.Format("2006-01-02"))

	if raw, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(raw) > 0 {
		var cached []entity.Article
		if json.Unmarshal(raw, &cached) == nil {
			return cached, nil
		}
		// デコードできないエントリは捨てる
		_ = c.rdb.Del(ctx, key).Err()
	}

	fetched, err := c.next.CompanyNews(ctx, symbol, from, to)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(fetched); err == nil {
		_ = c.rdb.Set(ctx, key, raw, c.ttl).Err()
	}
	return fetched, nil
}
