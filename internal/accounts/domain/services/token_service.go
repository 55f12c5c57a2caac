package services

import (
	"errors"
	"time"
)

// Ошибки, связанные с токенами доступа.
var (
	ErrInvalidToken         = errors.New("invalid access token")
	ErrExpiredToken         = errors.New("access token has expired")
	ErrTokenSigningFailed   = errors.New("failed to sign access token")
	ErrEmptyTokenSubject    = errors.New("access token subject is empty")
	ErrTokenSecretUndefined = errors.New("token secret key is not configured")
)

// TokenConfig содержит настройки подписи токенов доступа.
type TokenConfig struct {
	SecretKey []byte
	TTL       time.Duration
}
