package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"betola/internal/accounts/domain/entities"
	"betola/internal/accounts/ports/repositories"
	"betola/pkg/logger"
)

// ProfileRepository реализует repositories.ProfileRepository поверх Postgres.
type ProfileRepository struct {
	pool PgxPoolInterface
}

// NewProfileRepository создает новый экземпляр репозитория профилей.
func NewProfileRepository(pool PgxPoolInterface) repositories.ProfileRepository {
	return &ProfileRepository{pool: pool}
}

const profileColumns = "id, user_id, username, first_name, last_name, avatar_url, created_at, updated_at"

// scanProfile читает строку результата в сущность профиля.
func scanProfile(row pgx.Row) (*entities.Profile, error) {
	var profile entities.Profile
	err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Username,
		&profile.FirstName,
		&profile.LastName,
		&profile.AvatarURL,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindByUserID находит профиль по идентификатору пользователя.
func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*entities.Profile, error) {
	log := logger.Log(ctx).With(zap.String("repository", "profile"), zap.String("method", "FindByUserID"))

	query := `
        SELECT ` + profileColumns + `
        FROM profiles
        WHERE user_id = $1
    `

	profile, err := scanProfile(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "profile not found", zap.String("userID", userID))
			return nil, entities.ErrProfileNotFound
		}
		log.Error(ctx, "error finding profile by user id", zap.Error(err))
		return nil, fmt.Errorf("error querying profile by user id: %w", err)
	}

	return profile, nil
}

// FindByUsername находит профиль по имени пользователя.
func (r *ProfileRepository) FindByUsername(ctx context.Context, username string) (*entities.Profile, error) {
	log := logger.Log(ctx).With(zap.String("repository", "profile"), zap.String("method", "FindByUsername"))

	query := `
        SELECT ` + profileColumns + `
        FROM profiles
        WHERE username = $1
    `

	profile, err := scanProfile(r.pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "profile not found", zap.String("username", username))
			return nil, entities.ErrProfileNotFound
		}
		log.Error(ctx, "error finding profile by username", zap.Error(err))
		return nil, fmt.Errorf("error querying profile by username: %w", err)
	}

	return profile, nil
}

// Create создает новый профиль.
func (r *ProfileRepository) Create(ctx context.Context, profile *entities.Profile) (*entities.Profile, error) {
	log := logger.Log(ctx).With(zap.String("repository", "profile"), zap.String("method", "Create"))

	query := `
        INSERT INTO profiles (user_id, username, first_name, last_name, avatar_url)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + profileColumns + `
    `

	createdProfile, err := scanProfile(r.pool.QueryRow(ctx, query,
		profile.UserID,
		profile.Username,
		profile.FirstName,
		profile.LastName,
		profile.AvatarURL,
	))
	if err != nil {
		log.Error(ctx, "error creating profile", zap.Error(err))
		return nil, fmt.Errorf("error creating profile: %w", err)
	}

	return createdProfile, nil
}

// Save полностью перезаписывает изменяемые поля профиля.
func (r *ProfileRepository) Save(ctx context.Context, profile *entities.Profile) (*entities.Profile, error) {
	log := logger.Log(ctx).With(zap.String("repository", "profile"), zap.String("method", "Save"))

	query := `
        UPDATE profiles
        SET username = $2, first_name = $3, last_name = $4, avatar_url = $5, updated_at = $6
        WHERE id = $1
        RETURNING ` + profileColumns + `
    `

	now := time.Now().UTC()

	savedProfile, err := scanProfile(r.pool.QueryRow(ctx, query,
		profile.ID,
		profile.Username,
		profile.FirstName,
		profile.LastName,
		profile.AvatarURL,
		now,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "profile not found for save", zap.String("id", profile.ID))
			return nil, entities.ErrProfileNotFound
		}
		log.Error(ctx, "error saving profile", zap.Error(err))
		return nil, fmt.Errorf("error saving profile: %w", err)
	}

	return savedProfile, nil
}
