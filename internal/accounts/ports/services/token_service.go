package services

import (
	"context"
	"time"
)

// TokenService определяет операции подписи и проверки bearer-токенов.
// Подпись встраивает идентификатор пользователя в subject-claim;
// проверку выполняет только HTTP-граница, не слой use-case.
type TokenService interface {
	Sign(ctx context.Context, userID string) (string, time.Time, error)

	Verify(ctx context.Context, token string) (string, error)
}
