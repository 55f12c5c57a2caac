package services

import (
	"errors"
	"time"
)

// Ошибки домена аутентификации.
// Тексты ошибок намеренно не раскрывают, существует ли учетная запись
// и чем именно невалиден токен сброса.
var (
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrEmailAlreadyExists    = errors.New("user with this email already exists")
	ErrUsernameAlreadyExists = errors.New("profile with this username already exists")
	ErrInvalidResetToken     = errors.New("invalid or expired reset token")
)

// Параметры токена сброса пароля.
const (
	ResetTokenBytes = 32
	ResetTokenTTL   = time.Hour
)

// AccessToken представляет подписанный bearer-токен доступа.
type AccessToken struct {
	Token     string
	ExpiresAt time.Time
}
