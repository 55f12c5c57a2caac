package entities

import (
	"errors"
	"time"
)

// Ошибки домена профиля.
var (
	ErrEmptyUsername   = errors.New("username cannot be empty")
	ErrInvalidUsername = errors.New("username must contain 3-20 letters, digits or underscores")
	ErrProfileNotFound = errors.New("profile not found")
)

// Ограничения на имя пользователя.
const (
	MinUsernameLength = 3
	MaxUsernameLength = 20
)

// Profile представляет публичный профиль пользователя.
// Связь с User строго один к одному, уникальность обеспечивает хранилище.
type Profile struct {
	ID        string
	UserID    string
	Username  string
	FirstName *string
	LastName  *string
	AvatarURL *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
