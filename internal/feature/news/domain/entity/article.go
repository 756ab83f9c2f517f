// Package entity はnewsフィーチャーのドメインモデルを定義します。
package entity

import "time"

// Article は企業ニュース1件を表します。
// プロバイダー側で欠落したフィールドはアダプターがフォールバック値で埋めます。
type Article struct {
	Title       string    // 見出し
	Publisher   string    // 配信元
	Summary     string    // 要約
	URL         string    // 記事リンク
	PublishedAt time.Time // 公開日時。不明な場合はゼロ値
}
