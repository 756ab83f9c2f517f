package usecase

import "errors"

var (
	// ErrEmailAlreadyExists は同じメールアドレスのユーザーが既に存在する場合に返されます。
	ErrEmailAlreadyExists = errors.New("auth: email already exists")
	// ErrUserNotFound は指定されたユーザーが存在しない場合に返されます。
	ErrUserNotFound = errors.New("auth: user not found")
)
