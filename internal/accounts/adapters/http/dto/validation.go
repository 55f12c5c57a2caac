package dto

import (
	"errors"
	"fmt"
	"regexp"

	"betola/internal/accounts/domain/entities"
	"betola/internal/accounts/domain/services"
)

// Ошибки валидации входящих запросов. Формат полей проверяет граница,
// слой use-case получает уже корректные значения.
var (
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrTokenRequired    = errors.New("token is required")
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

// validateEmail проверяет формат email.
func validateEmail(email string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if !emailRegex.MatchString(email) {
		return entities.ErrInvalidEmail
	}
	return nil
}

// validatePassword проверяет минимальную длину пароля.
func validatePassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if len(password) < services.MinPasswordLength {
		return entities.ErrPasswordTooShort
	}
	return nil
}

// validateUsername проверяет длину и алфавит имени пользователя.
func validateUsername(username string) error {
	if username == "" {
		return entities.ErrEmptyUsername
	}
	if len(username) < entities.MinUsernameLength || len(username) > entities.MaxUsernameLength {
		return entities.ErrInvalidUsername
	}
	if !usernameRegex.MatchString(username) {
		return entities.ErrInvalidUsername
	}
	return nil
}

// Validate проверяет запрос регистрации.
func (r *RegisterRequest) Validate() error {
	if err := validateEmail(r.Email); err != nil {
		return fmt.Errorf("validating email: %w", err)
	}
	if err := validateUsername(r.Username); err != nil {
		return fmt.Errorf("validating username: %w", err)
	}
	if err := validatePassword(r.Password); err != nil {
		return fmt.Errorf("validating password: %w", err)
	}
	return nil
}

// Validate проверяет запрос входа.
func (r *LoginRequest) Validate() error {
	if err := validateEmail(r.Email); err != nil {
		return fmt.Errorf("validating email: %w", err)
	}
	if r.Password == "" {
		return fmt.Errorf("validating password: %w", ErrPasswordRequired)
	}
	return nil
}

// Validate проверяет запрос сброса пароля.
func (r *PasswordResetRequest) Validate() error {
	if err := validateEmail(r.Email); err != nil {
		return fmt.Errorf("validating email: %w", err)
	}
	return nil
}

// Validate проверяет подтверждение сброса пароля.
func (r *ResetPasswordRequest) Validate() error {
	if r.Token == "" {
		return fmt.Errorf("validating token: %w", ErrTokenRequired)
	}
	if err := validatePassword(r.Password); err != nil {
		return fmt.Errorf("validating password: %w", err)
	}
	return nil
}

// Validate проверяет частичное обновление профиля.
func (r *UpdateProfileRequest) Validate() error {
	if r.Username != nil {
		if err := validateUsername(*r.Username); err != nil {
			return fmt.Errorf("validating username: %w", err)
		}
	}
	return nil
}
