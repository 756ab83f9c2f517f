// Package ratelimiter は外部API呼び出しの頻度制限を提供します。
package ratelimiter

import (
	"log"
	"time"
)

// RateLimiterInterface は、API呼び出しなどの操作の頻度を制限するインターフェースです。
type RateLimiterInterface interface {
	WaitIfNeeded()
}

// RateLimiter は固定ウィンドウ方式のレートリミッタです。
// ウィンドウ内の呼び出し回数がlimitを超えたら、ウィンドウ終了まで呼び出し側をブロックします。
type RateLimiter struct {
	limit       int
	interval    time.Duration
	used        int       // 現在のウィンドウで消費した回数
	windowStart time.Time // 現在のウィンドウの開始時刻
}

// NewRateLimiter は interval あたり limit 回まで許可するリミッタを生成します。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:       limit,
		interval:    interval,
		windowStart: time.Now(),
	}
}

// WaitIfNeeded は1回分の呼び出し枠を消費します。枠が尽きている場合は
// ウィンドウの残り時間だけスリープしてから新しいウィンドウを開始します。
func (rl *RateLimiter) WaitIfNeeded() {
	now := time.Now()
	if elapsed := now.Sub(rl.windowStart); elapsed >= rl.interval {
		rl.used = 0
		rl.windowStart = now
	}

	rl.used++
	if rl.used <= rl.limit {
		return
	}

	if remain := rl.interval - now.Sub(rl.windowStart); remain > 0 {
		log.Printf("[RATE LIMIT] hit %d calls, sleeping for %v...", rl.limit, remain)
		time.Sleep(remain)
	}
	rl.used = 1
	rl.windowStart = time.Now()
}
