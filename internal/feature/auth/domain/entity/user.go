// Package entity はauthフィーチャーのドメインモデルを定義します。
package entity

import "time"

// User は登録済みユーザーを表します。Passwordはbcryptハッシュのみを保持し、
// 平文を格納してはいけません。
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;size:255;not null"` // ログインIDとして一意
	Password  string `gorm:"size:255;not null"`             // bcryptハッシュ
	CreatedAt time.Time
	UpdatedAt time.Time
}
