// Package cache はリポジトリをRedisでラップするキャッシュデコレータを提供します。
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"market_metrics/internal/feature/candles/domain/entity"
	"market_metrics/internal/feature/candles/usecase"
)

const invalidateScanCount = 200

// CachingCandleRepository はCandleRepositoryにリードスルーキャッシュを重ねる
// デコレータです。rdbがnilの場合はそのまま内側のリポジトリへ委譲します。
type CachingCandleRepository struct {
	next      usecase.CandleRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingCandleRepository はキャッシュ付きリポジトリを生成します。
// ttlが0以下なら5分、namespaceが空なら "candles" を使います。
func NewCachingCandleRepository(rdb *redis.Client, ttl time.Duration, next usecase.CandleRepository, namespace string) *CachingCandleRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "candles"
	}
	return &CachingCandleRepository{next: next, rdb: rdb, ttl: ttl, namespace: namespace}
}

// UpsertBatch は内側のリポジトリへ書き込んだ後、書き込んだ銘柄×間隔に
// 紐づくキャッシュエントリを無効化します。無効化はベストエフォートです。
func (c *CachingCandleRepository) UpsertBatch(ctx context.Context, candles []entity.Candle) error {
	if err := c.next.UpsertBatch(ctx, candles); err != nil {
		return err
	}
	if c.rdb == nil || len(candles) == 0 {
		return nil
	}

	done := map[string]struct{}{}
	for _, cd := range candles {
		prefix := fmt.Sprintf("%s:%s:%s:", c.namespace, keyToken(cd.Symbol), keyToken(cd.Interval))
		if _, ok := done[prefix]; ok {
			continue
		}
		done[prefix] = struct{}{}
		_ = c.invalidate(ctx, prefix+"*")
	}
	return nil
}

// Find はキャッシュを参照し、ミス時にDBへフォールバックして結果を格納します。
func (c *CachingCandleRepository) Find(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error) {
	if c.rdb == nil {
		return c.next.Find(ctx, symbol, interval, outputsize)
	}

	key := fmt.Sprintf("%s:%s:%s:%d", c.namespace, keyToken(symbol), keyToken(interval), outputsize)

	if raw, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(raw) > 0 {
		var cached []entity.Candle
		if json.Unmarshal(raw, &cached) == nil {
			return cached, nil
		}
		// デコードできないエントリは捨てる
		_ = c.rdb.Del(ctx, key).Err()
	}

	found, err := c.next.Find(ctx, symbol, interval, outputsize)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(found); err == nil {
		_ = c.rdb.Set(ctx, key, raw, c.ttl).Err()
	}
	return found, nil
}

// invalidate はSCANでパターンに一致するキーを集めて削除します。
func (c *CachingCandleRepository) invalidate(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, next, err := c.rdb.Scan(ctx, cursor, pattern, invalidateScanCount).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		if cursor = next; cursor == 0 {
			return nil
		}
	}
}

// keyToken はRedisキーの区切り文字と衝突する文字を置換します。
func keyToken(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	return strings.ReplaceAll(s, ":", "_")
}
