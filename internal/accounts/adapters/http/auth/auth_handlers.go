// Package auth содержит HTTP обработчики операций с учетными данными.
package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"betola/internal/accounts/adapters/http/dto"
	"betola/internal/accounts/domain/entities"
	"betola/internal/accounts/domain/services"
	"betola/internal/accounts/ports/api"
	svc "betola/internal/accounts/ports/services"
	"betola/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerRegister      = "auth handler: register"
	LogHandlerLogin         = "auth handler: login"
	LogHandlerResetRequest  = "auth handler: request password reset"
	LogHandlerResetConfirm  = "auth handler: confirm password reset"
	ErrorInvalidRequest     = "invalid request"
	ErrorFailedServeRequest = "failed to serve request"
)

// AuthTokenCookie - имя cookie с токеном доступа.
const AuthTokenCookie = "auth_token"

// Handler содержит HTTP обработчики аутентификации.
type Handler struct {
	authUseCase  api.AuthUseCase
	resetUseCase api.PasswordResetUseCase
	tokenService svc.TokenService
}

// NewHandler создает новый экземпляр обработчика аутентификации.
func NewHandler(
	authUseCase api.AuthUseCase,
	resetUseCase api.PasswordResetUseCase,
	tokenService svc.TokenService,
) *Handler {
	return &Handler{
		authUseCase:  authUseCase,
		resetUseCase: resetUseCase,
		tokenService: tokenService,
	}
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return badRequest(ctx, ErrorInvalidRequest)
	}

	if err := req.Validate(); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return badRequest(ctx, err.Error())
	}

	user, profile, err := h.authUseCase.Register(requestCtx, api.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailAlreadyExists) || errors.Is(err, services.ErrUsernameAlreadyExists) {
			return conflict(ctx, err)
		}
		log.Error(requestCtx, ErrorFailedServeRequest, zap.Error(err))
		return internalError(ctx)
	}

	if err := ctx.Status(http.StatusCreated).JSON(dto.RegisterResponse{
		User:    dto.NewUserResponse(user),
		Profile: dto.NewProfileResponse(profile),
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Login обрабатывает запрос на вход пользователя. Успешный вход
// возвращает токен доступа и устанавливает его в cookie auth_token.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return badRequest(ctx, ErrorInvalidRequest)
	}

	if err := req.Validate(); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return badRequest(ctx, err.Error())
	}

	user, err := h.authUseCase.Authenticate(requestCtx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) || errors.Is(err, entities.ErrUserNotFound) {
			return unauthorized(ctx, services.ErrInvalidCredentials.Error())
		}
		log.Error(requestCtx, ErrorFailedServeRequest, zap.Error(err))
		return internalError(ctx)
	}

	token, expiresAt, err := h.tokenService.Sign(requestCtx, user.ID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedServeRequest, zap.Error(err))
		return internalError(ctx)
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     AuthTokenCookie,
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	if err := ctx.Status(http.StatusOK).JSON(dto.TokenResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// RequestPasswordReset обрабатывает запрос на сброс пароля.
func (h *Handler) RequestPasswordReset(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerResetRequest)

	var req dto.PasswordResetRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return badRequest(ctx, ErrorInvalidRequest)
	}

	if err := req.Validate(); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return badRequest(ctx, err.Error())
	}

	if err := h.resetUseCase.RequestPasswordReset(requestCtx, req.Email); err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return notFound(ctx, entities.ErrUserNotFound.Error())
		}
		log.Error(requestCtx, ErrorFailedServeRequest, zap.Error(err))
		return internalError(ctx)
	}

	if err := ctx.Status(http.StatusAccepted).JSON(fiber.Map{
		"message": "password reset email sent",
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// ResetPassword обрабатывает подтверждение сброса пароля по токену.
func (h *Handler) ResetPassword(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerResetConfirm)

	var req dto.ResetPasswordRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return badRequest(ctx, ErrorInvalidRequest)
	}

	if err := req.Validate(); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return badRequest(ctx, err.Error())
	}

	if err := h.resetUseCase.ResetPassword(requestCtx, req.Token, req.Password); err != nil {
		if errors.Is(err, services.ErrInvalidResetToken) {
			return unauthorized(ctx, services.ErrInvalidResetToken.Error())
		}
		log.Error(requestCtx, ErrorFailedServeRequest, zap.Error(err))
		return internalError(ctx)
	}

	if err := ctx.Status(http.StatusOK).JSON(fiber.Map{
		"message": "password has been reset",
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Ответы с ошибками в едином формате.
func badRequest(ctx fiber.Ctx, msg string) error {
	return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func unauthorized(ctx fiber.Ctx, msg string) error {
	return ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": msg})
}

func notFound(ctx fiber.Ctx, msg string) error {
	return ctx.Status(http.StatusNotFound).JSON(fiber.Map{"error": msg})
}

func conflict(ctx fiber.Ctx, err error) error {
	return ctx.Status(http.StatusConflict).JSON(fiber.Map{"error": unwrapSentinel(err).Error()})
}

func internalError(ctx fiber.Ctx) error {
	return ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}

// unwrapSentinel возвращает последнюю ошибку цепочки для ответа клиенту.
func unwrapSentinel(err error) error {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err
		}
		err = unwrapped
	}
}
