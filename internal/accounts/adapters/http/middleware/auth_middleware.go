// Package middleware содержит промежуточное ПО HTTP-границы сервиса аккаунтов.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	svc "betola/internal/accounts/ports/services"
	"betola/pkg/logger"
)

// Константы для логирования.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoToken            = "no bearer token provided"
	ErrorInvalidTokenFormat = "invalid token format"
	ErrorTokenRejected      = "token verification failed"
)

// Ключи локальных значений запроса.
const (
	// UserIDKey - ключ идентификатора аутентифицированного пользователя.
	UserIDKey = "userID"
	// AuthTokenCookie - имя cookie с токеном доступа.
	AuthTokenCookie = "auth_token"
)

// NewAuthMiddleware создает промежуточное ПО защиты маршрутов.
// Токен берется из заголовка Authorization или, как в веб-клиенте,
// из cookie auth_token.
func NewAuthMiddleware(tokenService svc.TokenService) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		token := ""
		authHeader := ctx.Get("Authorization")
		switch {
		case authHeader != "":
			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Debug(requestCtx, ErrorInvalidTokenFormat)
				return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": ErrorInvalidTokenFormat,
				})
			}
			token = strings.TrimPrefix(authHeader, "Bearer ")
		default:
			token = ctx.Cookies(AuthTokenCookie)
		}

		if token == "" {
			log.Debug(requestCtx, ErrorNoToken)
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorNoToken,
			})
		}

		userID, err := tokenService.Verify(requestCtx, token)
		if err != nil {
			log.Debug(requestCtx, ErrorTokenRejected, zap.Error(err))
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorTokenRejected,
			})
		}

		ctx.Locals(UserIDKey, userID)

		return ctx.Next()
	}
}
