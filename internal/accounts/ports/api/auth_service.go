package api

import (
	"context"

	"betola/internal/accounts/domain/entities"
)

// RegisterInput содержит данные для регистрации нового пользователя.
// FirstName и LastName необязательны.
type RegisterInput struct {
	Email     string
	Password  string
	Username  string
	FirstName *string
	LastName  *string
}

// AuthUseCase определяет основной порт операций с учетными данными.
type AuthUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*entities.User, *entities.Profile, error)

	Authenticate(ctx context.Context, email, password string) (*entities.User, error)
}
