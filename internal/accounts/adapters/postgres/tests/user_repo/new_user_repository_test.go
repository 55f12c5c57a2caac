package userrepo_test

import (
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betola/internal/accounts/adapters/postgres"
)

func TestNewUserRepository(t *testing.T) {
	t.Run("Создание репозитория учетных записей", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := postgres.NewUserRepository(mock)

		assert.NotNil(t, repo)
	})
}
