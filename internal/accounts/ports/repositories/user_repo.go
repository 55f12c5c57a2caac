package repositories

import (
	"context"

	"betola/internal/accounts/domain/entities"
)

// UserRepository определяет интерфейс хранилища учетных записей.
// Методы поиска возвращают entities.ErrUserNotFound при отсутствии записи.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByID(ctx context.Context, id string) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	FindByPasswordResetToken(ctx context.Context, token string) (*entities.User, error)

	Save(ctx context.Context, user *entities.User) (*entities.User, error)
}
