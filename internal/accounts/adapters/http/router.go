// Package http содержит маршрутизацию HTTP-границы сервиса аккаунтов.
package http

import (
	"github.com/gofiber/fiber/v3"

	"betola/internal/accounts/adapters/http/auth"
	"betola/internal/accounts/adapters/http/middleware"
	"betola/internal/accounts/adapters/http/profile"
	"betola/internal/accounts/ports/api"
	svc "betola/internal/accounts/ports/services"
)

// SetupRouter настраивает маршрутизацию HTTP сервера.
func SetupRouter(
	app *fiber.App,
	authUseCase api.AuthUseCase,
	resetUseCase api.PasswordResetUseCase,
	profileUseCase api.ProfileUseCase,
	tokenService svc.TokenService,
) {
	authHandler := auth.NewHandler(authUseCase, resetUseCase, tokenService)
	profileHandler := profile.NewHandler(profileUseCase)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// API версии 1.
	apiV1 := app.Group("/api/v1")

	// Auth routes (публичные).
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/password-reset", authHandler.RequestPasswordReset)
	authRoutes.Post("/password-reset/confirm", authHandler.ResetPassword)

	// Защищенные маршруты.
	profileRoutes := apiV1.Group("/profile")
	profileRoutes.Use(middleware.NewAuthMiddleware(tokenService))
	profileRoutes.Get("/", profileHandler.GetProfile)
	profileRoutes.Patch("/", profileHandler.UpdateProfile)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
