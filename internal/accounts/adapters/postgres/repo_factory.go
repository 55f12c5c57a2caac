// Package postgres содержит реализации репозиториев сервиса аккаунтов поверх PostgreSQL.
package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"betola/internal/accounts/ports/repositories"
)

// RepositoryFactory создает все необходимые репозитории для работы с PostgreSQL.
type RepositoryFactory struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool *pgxpool.Pool) *RepositoryFactory {
	return &RepositoryFactory{
		userRepo:    NewUserRepository(pool),
		profileRepo: NewProfileRepository(pool),
	}
}

// UserRepository возвращает репозиторий учетных записей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return f.userRepo
}

// ProfileRepository возвращает репозиторий профилей.
func (f *RepositoryFactory) ProfileRepository() repositories.ProfileRepository {
	return f.profileRepo
}
