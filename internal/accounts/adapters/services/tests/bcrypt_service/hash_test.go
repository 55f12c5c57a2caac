package bcrypt_service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cryptobcrypt "golang.org/x/crypto/bcrypt"

	adapters "betola/internal/accounts/adapters/services"
	"betola/internal/accounts/domain/services"
)

const (
	msgHashSuccess       = "should successfully hash a valid password"
	msgHashNotPlaintext  = "hash must differ from the plaintext password"
	msgHashEmptyPassword = "should return error for empty password"
	msgHashPrefix        = "hash should carry the bcrypt format prefix"
	msgMinCostFallback   = "cost below minimum should fall back to the default cost"
)

func TestHashSuccess(t *testing.T) {
	service := adapters.NewBcrypt(cryptobcrypt.MinCost)
	ctx := context.Background()

	hash, err := service.Hash(ctx, "validPassword123")

	require.NoError(t, err, msgHashSuccess)
	assert.NotEqual(t, "validPassword123", hash, msgHashNotPlaintext)
	assert.True(t, strings.HasPrefix(hash, "$2a$"), msgHashPrefix)
}

func TestHashEmptyPassword(t *testing.T) {
	service := adapters.NewBcrypt(cryptobcrypt.MinCost)
	ctx := context.Background()

	hash, err := service.Hash(ctx, "")

	require.Error(t, err, msgHashEmptyPassword)
	assert.ErrorIs(t, err, services.ErrInvalidPassword)
	assert.Empty(t, hash)
}

func TestHashCostBelowMinimum(t *testing.T) {
	service := adapters.NewBcrypt(0)
	ctx := context.Background()

	hash, err := service.Hash(ctx, "validPassword123")

	require.NoError(t, err, msgMinCostFallback)

	cost, err := cryptobcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, cryptobcrypt.DefaultCost, cost, msgMinCostFallback)
}
