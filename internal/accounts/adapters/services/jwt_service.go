package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"betola/internal/accounts/domain/services"
	svc "betola/internal/accounts/ports/services"
	"betola/pkg/logger"
)

// Константы для работы с JWT.
const (
	methodSign   = "Sign"
	methodVerify = "Verify"

	msgSigningToken   = "signing access token"
	msgVerifyingToken = "verifying access token"
	msgTokenSigned    = "access token signed successfully"
	msgTokenVerified  = "access token verified successfully"
	msgInvalidToken   = "invalid token format"
	msgTokenExpired   = "token has expired"

	//nolint:gosec
	errSigningToken = "error signing token"
	//nolint:gosec
	errParsingToken      = "error parsing token"
	errCtxSigningToken   = "signing token"
	errCtxParsingToken   = "parsing token"
	errCtxVerifyingToken = "verifying token"
)

// ErrInvalidAlgorithm представляет статическую ошибку неверного алгоритма подписи.
var ErrInvalidAlgorithm = errors.New("invalid signing algorithm")

// ServiceJWT реализует интерфейс TokenService поверх HS256 JWT.
// Идентификатор пользователя кладется в subject-claim.
type ServiceJWT struct {
	config services.TokenConfig
}

// NewJWT создает новый экземпляр сервиса JWT.
func NewJWT(secretKey string, ttl time.Duration) svc.TokenService {
	return &ServiceJWT{
		config: services.TokenConfig{
			SecretKey: []byte(secretKey),
			TTL:       ttl,
		},
	}
}

// Sign выпускает подписанный bearer-токен для пользователя.
func (s *ServiceJWT) Sign(ctx context.Context, userID string) (string, time.Time, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodSign),
		zap.String("userID", userID),
	)
	log.Debug(ctx, msgSigningToken)

	if len(s.config.SecretKey) == 0 {
		log.Error(ctx, "empty secret key provided")
		return "", time.Time{}, fmt.Errorf("%s: %w", errCtxSigningToken, services.ErrTokenSecretUndefined)
	}

	now := time.Now()
	expiresAt := now.Add(s.config.TTL)

	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.config.SecretKey)
	if err != nil {
		log.Error(ctx, errSigningToken, zap.Error(err))
		return "", time.Time{}, fmt.Errorf("%s: %w: %w", errCtxSigningToken, services.ErrTokenSigningFailed, err)
	}

	log.Debug(ctx, msgTokenSigned, zap.Time("expiresAt", expiresAt))
	return tokenString, expiresAt, nil
}

// Verify проверяет подпись токена и возвращает идентификатор пользователя.
func (s *ServiceJWT) Verify(ctx context.Context, tokenString string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodVerify))
	log.Debug(ctx, msgVerifyingToken)

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAlgorithm, token.Header["alg"])
		}
		return s.config.SecretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug(ctx, msgTokenExpired)
			return "", fmt.Errorf("%s: %w", errCtxVerifyingToken, services.ErrExpiredToken)
		}
		log.Debug(ctx, errParsingToken, zap.Error(err))
		return "", fmt.Errorf("%s: %w: %w", errCtxParsingToken, services.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		log.Debug(ctx, msgInvalidToken)
		return "", fmt.Errorf("%s: %w", errCtxVerifyingToken, services.ErrInvalidToken)
	}

	if claims.Subject == "" {
		log.Debug(ctx, "subject claim is empty")
		return "", fmt.Errorf("%s: %w", errCtxVerifyingToken, services.ErrEmptyTokenSubject)
	}

	log.Debug(ctx, msgTokenVerified, zap.String("userID", claims.Subject))
	return claims.Subject, nil
}
