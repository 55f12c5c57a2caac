package api

import (
	"context"

	"betola/internal/accounts/domain/entities"
)

// Optional представляет трехзначное необязательное поле обновления:
// поле не передано (Set == false), передано как null (Set и Value == nil)
// или передано со значением. Непереданное поле не меняет хранимое значение,
// явный null очищает его.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some создает Optional с заданным значением.
func Some[T any](value T) Optional[T] {
	return Optional[T]{Set: true, Value: &value}
}

// Null создает Optional с явным null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// UpdateProfileInput содержит изменяемые поля профиля.
// Username не очищается через null, только заменяется.
type UpdateProfileInput struct {
	Username  *string
	FirstName Optional[string]
	LastName  Optional[string]
	AvatarURL Optional[string]
}

// ProfileUseCase определяет порт операций с профилем пользователя.
type ProfileUseCase interface {
	GetProfile(ctx context.Context, userID string) (*entities.Profile, error)

	UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entities.Profile, error)
}
