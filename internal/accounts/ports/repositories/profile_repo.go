package repositories

import (
	"context"

	"betola/internal/accounts/domain/entities"
)

// ProfileRepository определяет интерфейс хранилища профилей.
// Методы поиска возвращают entities.ErrProfileNotFound при отсутствии записи.
type ProfileRepository interface {
	Create(ctx context.Context, profile *entities.Profile) (*entities.Profile, error)

	FindByUserID(ctx context.Context, userID string) (*entities.Profile, error)

	FindByUsername(ctx context.Context, username string) (*entities.Profile, error)

	Save(ctx context.Context, profile *entities.Profile) (*entities.Profile, error)
}
