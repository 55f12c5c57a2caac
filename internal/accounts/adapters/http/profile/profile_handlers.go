// Package profile содержит HTTP обработчики операций с профилем пользователя.
package profile

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"betola/internal/accounts/adapters/http/dto"
	"betola/internal/accounts/adapters/http/middleware"
	"betola/internal/accounts/domain/entities"
	"betola/internal/accounts/domain/services"
	"betola/internal/accounts/ports/api"
	"betola/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerGetProfile    = "profile handler: get profile"
	LogHandlerUpdateProfile = "profile handler: update profile"
	ErrorInvalidRequest     = "invalid request"
	ErrorFailedServeRequest = "failed to serve request"
	ErrorMissingIdentity    = "missing authenticated user"
)

// Handler содержит HTTP обработчики профиля.
type Handler struct {
	profileUseCase api.ProfileUseCase
}

// NewHandler создает новый экземпляр обработчика профиля.
func NewHandler(profileUseCase api.ProfileUseCase) *Handler {
	return &Handler{
		profileUseCase: profileUseCase,
	}
}

// GetProfile возвращает профиль аутентифицированного пользователя.
func (h *Handler) GetProfile(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGetProfile)

	userID, ok := ctx.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		log.Debug(requestCtx, ErrorMissingIdentity)
		return ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": ErrorMissingIdentity})
	}

	profile, err := h.profileUseCase.GetProfile(requestCtx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return ctx.Status(http.StatusNotFound).JSON(fiber.Map{"error": entities.ErrUserNotFound.Error()})
		}
		log.Error(requestCtx, ErrorFailedServeRequest, zap.Error(err))
		return ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewProfileResponse(profile)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// UpdateProfile применяет частичное обновление профиля аутентифицированного
// пользователя. Непереданные поля не меняются, явный null очищает поле.
func (h *Handler) UpdateProfile(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdateProfile)

	userID, ok := ctx.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		log.Debug(requestCtx, ErrorMissingIdentity)
		return ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": ErrorMissingIdentity})
	}

	var req dto.UpdateProfileRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{"error": ErrorInvalidRequest})
	}

	if err := req.Validate(); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	profile, err := h.profileUseCase.UpdateProfile(requestCtx, userID, api.UpdateProfileInput{
		Username:  req.Username,
		FirstName: api.Optional[string]{Set: req.FirstName.Set, Value: req.FirstName.Value},
		LastName:  api.Optional[string]{Set: req.LastName.Set, Value: req.LastName.Value},
		AvatarURL: api.Optional[string]{Set: req.AvatarURL.Set, Value: req.AvatarURL.Value},
	})
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrUserNotFound):
			return ctx.Status(http.StatusNotFound).JSON(fiber.Map{"error": entities.ErrUserNotFound.Error()})
		case errors.Is(err, services.ErrUsernameAlreadyExists):
			return ctx.Status(http.StatusConflict).JSON(fiber.Map{"error": services.ErrUsernameAlreadyExists.Error()})
		default:
			log.Error(requestCtx, ErrorFailedServeRequest, zap.Error(err))
			return ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
		}
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewProfileResponse(profile)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
