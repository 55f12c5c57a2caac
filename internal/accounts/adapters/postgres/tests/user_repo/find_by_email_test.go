package userrepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betola/internal/accounts/adapters/postgres"
	"betola/internal/accounts/domain/entities"
	"betola/pkg/logger"
)

var userRows = []string{"id", "email", "password_hash", "password_reset_token", "password_reset_expires", "created_at", "updated_at"}

func testContext(t *testing.T) context.Context {
	t.Helper()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	return logger.NewContext(context.Background(), testLogger)
}

func TestUserRepository_FindByEmail(t *testing.T) {
	ctx := testContext(t)

	testUser := entities.User{
		ID:           "test-user-id",
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
		UpdatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	t.Run("Успешное получение пользователя по email", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows(userRows).
			AddRow(testUser.ID, testUser.Email, testUser.PasswordHash, nil, nil, testUser.CreatedAt, testUser.UpdatedAt)

		mock.ExpectQuery("SELECT id, email, password_hash, password_reset_token, password_reset_expires, created_at, updated_at").
			WithArgs(testUser.Email).
			WillReturnRows(rows)

		repo := postgres.NewUserRepository(mock)

		user, err := repo.FindByEmail(ctx, testUser.Email)

		require.NoError(t, err)
		assert.Equal(t, testUser.ID, user.ID)
		assert.Equal(t, testUser.Email, user.Email)
		assert.Equal(t, testUser.PasswordHash, user.PasswordHash)
		assert.Nil(t, user.PasswordResetToken)
		assert.Nil(t, user.PasswordResetExpires)
		assert.Equal(t, testUser.CreatedAt, user.CreatedAt)
		assert.Equal(t, testUser.UpdatedAt, user.UpdatedAt)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Пользователь не найден по email", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		nonExistingEmail := "nonexistent@example.com"
		mock.ExpectQuery("SELECT id, email, password_hash, password_reset_token, password_reset_expires, created_at, updated_at").
			WithArgs(nonExistingEmail).
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewUserRepository(mock)

		user, err := repo.FindByEmail(ctx, nonExistingEmail)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка базы данных при поиске по email", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		dbError := errors.New("database connection failed")
		mock.ExpectQuery("SELECT id, email, password_hash, password_reset_token, password_reset_expires, created_at, updated_at").
			WithArgs(testUser.Email).
			WillReturnError(dbError)

		repo := postgres.NewUserRepository(mock)

		user, err := repo.FindByEmail(ctx, testUser.Email)

		assert.Nil(t, user)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "error querying user by email")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
