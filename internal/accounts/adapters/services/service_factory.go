// Package services предоставляет адаптеры внешних сервисов аккаунтов:
// хеширование паролей, подпись токенов и отправку почты.
package services

import (
	"time"

	"betola/internal/accounts/ports/services"
)

// ServiceFactory создает все внешние сервисы слоя use-case.
type ServiceFactory struct {
	passwordService services.PasswordService
	tokenService    services.TokenService
	emailService    services.EmailService
}

// NewServiceFactory создает новую фабрику сервисов.
func NewServiceFactory(
	jwtSecretKey string,
	tokenTTL time.Duration,
	bcryptCost int,
	emailService services.EmailService,
) *ServiceFactory {
	return &ServiceFactory{
		passwordService: NewBcrypt(bcryptCost),
		tokenService:    NewJWT(jwtSecretKey, tokenTTL),
		emailService:    emailService,
	}
}

// PasswordService возвращает сервис для работы с паролями.
func (f *ServiceFactory) PasswordService() services.PasswordService {
	return f.passwordService
}

// TokenService возвращает сервис для работы с токенами.
func (f *ServiceFactory) TokenService() services.TokenService {
	return f.tokenService
}

// EmailService возвращает сервис отправки почты.
func (f *ServiceFactory) EmailService() services.EmailService {
	return f.emailService
}
