package cache

import (
	"time"
)

// refreshHour はローソク足キャッシュを破棄する時刻（取引所タイムゾーンの時）です。
// 日次のインジェストが走る朝8時に合わせています。
const refreshHour = 8

// TimeUntilNextRefresh は指定タイムゾーンで次の午前8時までの期間を返します。
// タイムゾーンが不正または空の場合はUTCを使用します。
func TimeUntilNextRefresh(tz string) time.Duration {
	loc, err := time.LoadLocation(tz)
	if err != nil || tz == "" {
		loc = time.UTC
	}
	now := time.Now().In(loc)

	// 次の午前8時を計算
	next := time.Date(now.Year(), now.Month(), now.Day(), refreshHour, 0, 0, 0, loc)

	// 今日の午前8時が既に過ぎている場合は明日を使用
	if now.After(next) {
		next = next.Add(24 * time.Hour)
	}

	return next.Sub(now)
}
