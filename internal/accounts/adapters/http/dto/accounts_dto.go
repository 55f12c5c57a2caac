// Package dto содержит объекты передачи данных HTTP-границы сервиса аккаунтов.
package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"betola/internal/accounts/domain/entities"
)

// NullableString различает непереданное поле, явный null и значение.
// Поле, отсутствующее в запросе, оставляет Set == false; явный null
// дает Set == true и Value == nil.
type NullableString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON вызывается только для присутствующих в запросе полей.
func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, []byte("null")) {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("unmarshaling nullable string: %w", err)
	}
	n.Value = &s
	return nil
}

// RegisterRequest содержит данные для регистрации пользователя.
type RegisterRequest struct {
	Email     string  `json:"email"`
	Username  string  `json:"username"`
	Password  string  `json:"password"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

// LoginRequest содержит данные для входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PasswordResetRequest содержит email для запроса сброса пароля.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest содержит токен сброса и новый пароль.
type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// UpdateProfileRequest содержит частичное обновление профиля.
// Имя пользователя не очищается, остальные поля допускают явный null.
type UpdateProfileRequest struct {
	Username  *string        `json:"username"`
	FirstName NullableString `json:"first_name"`
	LastName  NullableString `json:"last_name"`
	AvatarURL NullableString `json:"avatar_url"`
}

// TokenResponse содержит выпущенный токен доступа.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// UserResponse содержит публичные данные учетной записи.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ProfileResponse содержит данные профиля пользователя.
type ProfileResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	FirstName *string   `json:"first_name"`
	LastName  *string   `json:"last_name"`
	AvatarURL *string   `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RegisterResponse содержит созданную учетную запись и профиль.
type RegisterResponse struct {
	User    UserResponse    `json:"user"`
	Profile ProfileResponse `json:"profile"`
}

// NewUserResponse преобразует сущность пользователя в ответ без чувствительных полей.
func NewUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// NewProfileResponse преобразует сущность профиля в ответ.
func NewProfileResponse(profile *entities.Profile) ProfileResponse {
	return ProfileResponse{
		ID:        profile.ID,
		UserID:    profile.UserID,
		Username:  profile.Username,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		AvatarURL: profile.AvatarURL,
		CreatedAt: profile.CreatedAt,
		UpdatedAt: profile.UpdatedAt,
	}
}
