package bcrypt_service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cryptobcrypt "golang.org/x/crypto/bcrypt"

	adapters "betola/internal/accounts/adapters/services"
	"betola/internal/accounts/domain/services"
)

const (
	msgVerifySuccess        = "should successfully verify correct password"
	msgVerifyFail           = "should return false for wrong password without error"
	msgVerifyEmptyPassword  = "should return error for empty password"
	msgVerifyEmptyHash      = "should return error for empty hash"
	msgVerifyInvalidHash    = "should return error for malformed hash"
	msgNoErrorCreatingHash  = "should not return error when creating hash"
	msgResultFalseWithError = "result should be false with error"
)

func TestVerifySuccess(t *testing.T) {
	service := adapters.NewBcrypt(cryptobcrypt.MinCost)
	password := "validPassword123"
	ctx := context.Background()

	hash, err := service.Hash(ctx, password)
	require.NoError(t, err, msgNoErrorCreatingHash)

	result, err := service.Verify(ctx, password, hash)

	require.NoError(t, err, msgVerifySuccess)
	assert.True(t, result, msgVerifySuccess)
}

func TestVerifyWrongPassword(t *testing.T) {
	service := adapters.NewBcrypt(cryptobcrypt.MinCost)
	ctx := context.Background()

	hash, err := service.Hash(ctx, "validPassword123")
	require.NoError(t, err, msgNoErrorCreatingHash)

	result, err := service.Verify(ctx, "wrongPassword123", hash)

	require.NoError(t, err, msgVerifyFail)
	assert.False(t, result, msgVerifyFail)
}

func TestVerifyEmptyPassword(t *testing.T) {
	service := adapters.NewBcrypt(cryptobcrypt.MinCost)
	ctx := context.Background()

	hash, err := service.Hash(ctx, "validPassword123")
	require.NoError(t, err, msgNoErrorCreatingHash)

	result, err := service.Verify(ctx, "", hash)

	require.Error(t, err, msgVerifyEmptyPassword)
	assert.ErrorIs(t, err, services.ErrInvalidPassword)
	assert.False(t, result, msgResultFalseWithError)
}

func TestVerifyEmptyHash(t *testing.T) {
	service := adapters.NewBcrypt(cryptobcrypt.MinCost)
	ctx := context.Background()

	result, err := service.Verify(ctx, "validPassword123", "")

	require.Error(t, err, msgVerifyEmptyHash)
	assert.ErrorIs(t, err, services.ErrInvalidPassword)
	assert.False(t, result, msgResultFalseWithError)
}

func TestVerifyInvalidHash(t *testing.T) {
	service := adapters.NewBcrypt(cryptobcrypt.MinCost)
	ctx := context.Background()

	result, err := service.Verify(ctx, "validPassword123", "not-a-bcrypt-hash")

	require.Error(t, err, msgVerifyInvalidHash)
	assert.False(t, result, msgResultFalseWithError)
}
