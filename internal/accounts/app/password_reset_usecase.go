package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"betola/internal/accounts/domain/entities"
	"betola/internal/accounts/domain/services"
	"betola/internal/accounts/ports/api"
	"betola/internal/accounts/ports/repositories"
	svc "betola/internal/accounts/ports/services"
	"betola/pkg/logger"

	"go.uber.org/zap"
)

const (
	methodRequestPasswordReset = "RequestPasswordReset"
	methodResetPassword        = "ResetPassword"

	msgResetRequested      = "password reset requested"
	msgResetUnknownEmail   = "password reset requested for unknown email"
	msgResetTokenIssued    = "password reset token issued"
	msgResetEmailSent      = "password reset email sent"
	msgResettingPassword   = "resetting password"
	msgResetTokenUnknown   = "no user matches the reset token"
	msgResetTokenExpired   = "reset token has expired"
	msgPasswordResetDone   = "password reset completed"
	msgErrLookupUser       = "failed to look up user"
	msgErrGenerateToken    = "failed to generate reset token"
	msgErrSaveResetFields  = "failed to persist reset token"
	msgErrSendResetEmail   = "failed to send password reset email"
	msgErrHashNewPassword  = "failed to hash new password"
	msgErrSaveNewPassword  = "failed to persist new password"
	msgErrLookupResetToken = "failed to look up reset token"

	errCtxLookingUpUser     = "looking up user"
	errCtxGeneratingToken   = "generating reset token"
	errCtxStoringResetToken = "storing reset token"
	errCtxSendingResetEmail = "sending reset email"
	errCtxInvalidResetToken = "validating reset token"
	errCtxHashingNewPass    = "hashing new password"
	errCtxStoringNewPass    = "storing new password"

	resetEmailSubject = "Password Recovery - Betola"
	resetPathFormat   = "%s/reset-password?token=%s"
)

// resetEmailBody составляет тело письма со ссылкой на сброс пароля.
func resetEmailBody(resetLink string) string {
	return fmt.Sprintf(`<h1>Password Recovery</h1>
<p>You requested a password reset. Click the link below to create a new password:</p>
<a href="%s">%s</a>
<p>This link will expire in 1 hour.</p>
<p>If you did not request this, please ignore this email.</p>`, resetLink, resetLink)
}

// PasswordResetUseCaseImpl реализует интерфейс PasswordResetUseCase.
type PasswordResetUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
	emailSvc    svc.EmailService
	appURL      string
}

// NewPasswordResetUseCase создает новый экземпляр сервиса восстановления пароля.
// appURL - базовый адрес веб-приложения для ссылок в письмах.
func NewPasswordResetUseCase(
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
	emailSvc svc.EmailService,
	appURL string,
) api.PasswordResetUseCase {
	return &PasswordResetUseCaseImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		emailSvc:    emailSvc,
		appURL:      appURL,
	}
}

// RequestPasswordReset выпускает токен сброса пароля и отправляет ссылку
// на почту пользователя. Повторный запрос перезаписывает предыдущий токен
// и заново отсчитывает срок действия.
func (p *PasswordResetUseCaseImpl) RequestPasswordReset(ctx context.Context, email string) error {
	log := logger.Log(ctx).With(zap.String("method", methodRequestPasswordReset), zap.String("email", email))
	log.Debug(ctx, msgResetRequested)

	user, err := p.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgResetUnknownEmail)
			return fmt.Errorf("%s: %w", errCtxLookingUpUser, entities.ErrUserNotFound)
		}
		log.Error(ctx, msgErrLookupUser, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxLookingUpUser, err)
	}

	token, err := generateResetToken()
	if err != nil {
		log.Error(ctx, msgErrGenerateToken, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxGeneratingToken, err)
	}

	expires := time.Now().Add(services.ResetTokenTTL)
	user.PasswordResetToken = &token
	user.PasswordResetExpires = &expires

	if _, err := p.userRepo.Save(ctx, user); err != nil {
		log.Error(ctx, msgErrSaveResetFields, zap.Error(err), zap.String("userID", user.ID))
		return fmt.Errorf("%s: %w", errCtxStoringResetToken, err)
	}

	log.Info(ctx, msgResetTokenIssued,
		zap.String("userID", user.ID),
		zap.Time("expiresAt", expires))

	resetLink := fmt.Sprintf(resetPathFormat, p.appURL, token)
	if err := p.emailSvc.Send(ctx, user.Email, resetEmailSubject, resetEmailBody(resetLink)); err != nil {
		log.Error(ctx, msgErrSendResetEmail, zap.Error(err), zap.String("userID", user.ID))
		return fmt.Errorf("%s: %w", errCtxSendingResetEmail, err)
	}

	log.Info(ctx, msgResetEmailSent, zap.String("userID", user.ID))
	return nil
}

// ResetPassword меняет пароль по действующему токену сброса.
// Успешный сброс всегда очищает оба reset-поля, исключая повторное
// использование токена.
func (p *PasswordResetUseCaseImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	log := logger.Log(ctx).With(zap.String("method", methodResetPassword))
	log.Debug(ctx, msgResettingPassword)

	user, err := p.userRepo.FindByPasswordResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgResetTokenUnknown)
			return fmt.Errorf("%s: %w", errCtxInvalidResetToken, services.ErrInvalidResetToken)
		}
		log.Error(ctx, msgErrLookupResetToken, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxInvalidResetToken, err)
	}

	if !user.HasActiveReset(time.Now()) {
		log.Debug(ctx, msgResetTokenExpired, zap.String("userID", user.ID))
		return fmt.Errorf("%s: %w", errCtxInvalidResetToken, services.ErrInvalidResetToken)
	}

	hashedPassword, err := p.passwordSvc.Hash(ctx, newPassword)
	if err != nil {
		log.Error(ctx, msgErrHashNewPassword, zap.Error(err), zap.String("userID", user.ID))
		return fmt.Errorf("%s: %w", errCtxHashingNewPass, err)
	}

	user.PasswordHash = hashedPassword
	user.PasswordResetToken = nil
	user.PasswordResetExpires = nil

	if _, err := p.userRepo.Save(ctx, user); err != nil {
		log.Error(ctx, msgErrSaveNewPassword, zap.Error(err), zap.String("userID", user.ID))
		return fmt.Errorf("%s: %w", errCtxStoringNewPass, err)
	}

	log.Info(ctx, msgPasswordResetDone, zap.String("userID", user.ID))
	return nil
}

// generateResetToken возвращает криптографически случайный токен в hex-кодировке.
func generateResetToken() (string, error) {
	buf := make([]byte, services.ResetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
