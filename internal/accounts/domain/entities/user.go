package entities

import (
	"errors"
	"time"
)

// Ошибки домена пользователя.
var (
	ErrEmptyUserID      = errors.New("user ID cannot be empty")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrPasswordTooShort = errors.New("password must contain at least 6 characters")
	ErrUserNotFound     = errors.New("user not found")
)

// User представляет учетную запись пользователя.
// PasswordResetToken и PasswordResetExpires либо оба nil, либо оба заданы;
// токен с истекшим сроком считается отсутствующим.
type User struct {
	ID                   string
	Email                string
	PasswordHash         string
	PasswordResetToken   *string
	PasswordResetExpires *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// HasActiveReset сообщает, есть ли у пользователя действующий токен сброса пароля.
func (u *User) HasActiveReset(now time.Time) bool {
	return u.PasswordResetToken != nil && u.PasswordResetExpires != nil && now.Before(*u.PasswordResetExpires)
}
