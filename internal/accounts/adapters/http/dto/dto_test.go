package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betola/internal/accounts/adapters/http/dto"
	"betola/internal/accounts/domain/entities"
)

func TestNullableStringUnmarshal(t *testing.T) {
	t.Run("Отсутствующее поле не устанавливается", func(t *testing.T) {
		var req dto.UpdateProfileRequest
		require.NoError(t, json.Unmarshal([]byte(`{}`), &req))

		assert.False(t, req.FirstName.Set)
		assert.Nil(t, req.FirstName.Value)
	})

	t.Run("Явный null устанавливает поле без значения", func(t *testing.T) {
		var req dto.UpdateProfileRequest
		require.NoError(t, json.Unmarshal([]byte(`{"first_name": null}`), &req))

		assert.True(t, req.FirstName.Set)
		assert.Nil(t, req.FirstName.Value)
	})

	t.Run("Строковое значение сохраняется", func(t *testing.T) {
		var req dto.UpdateProfileRequest
		require.NoError(t, json.Unmarshal([]byte(`{"first_name": "Ada"}`), &req))

		assert.True(t, req.FirstName.Set)
		require.NotNil(t, req.FirstName.Value)
		assert.Equal(t, "Ada", *req.FirstName.Value)
	})

	t.Run("Нестроковое значение дает ошибку", func(t *testing.T) {
		var req dto.UpdateProfileRequest
		err := json.Unmarshal([]byte(`{"first_name": 42}`), &req)

		require.Error(t, err)
	})
}

func TestRegisterRequestValidate(t *testing.T) {
	valid := dto.RegisterRequest{
		Email:    "test@example.com",
		Username: "testuser",
		Password: "password123",
	}

	t.Run("Корректный запрос проходит валидацию", func(t *testing.T) {
		req := valid
		assert.NoError(t, req.Validate())
	})

	t.Run("Неверный формат email", func(t *testing.T) {
		req := valid
		req.Email = "not-an-email"
		assert.ErrorIs(t, req.Validate(), entities.ErrInvalidEmail)
	})

	t.Run("Пустой email", func(t *testing.T) {
		req := valid
		req.Email = ""
		assert.ErrorIs(t, req.Validate(), dto.ErrEmailRequired)
	})

	t.Run("Слишком короткий пароль", func(t *testing.T) {
		req := valid
		req.Password = "12345"
		assert.ErrorIs(t, req.Validate(), entities.ErrPasswordTooShort)
	})

	t.Run("Слишком короткое имя пользователя", func(t *testing.T) {
		req := valid
		req.Username = "ab"
		assert.ErrorIs(t, req.Validate(), entities.ErrInvalidUsername)
	})

	t.Run("Слишком длинное имя пользователя", func(t *testing.T) {
		req := valid
		req.Username = "abcdefghijklmnopqrstu"
		assert.ErrorIs(t, req.Validate(), entities.ErrInvalidUsername)
	})

	t.Run("Недопустимые символы в имени пользователя", func(t *testing.T) {
		req := valid
		req.Username = "bad name!"
		assert.ErrorIs(t, req.Validate(), entities.ErrInvalidUsername)
	})

	t.Run("Пустое имя пользователя", func(t *testing.T) {
		req := valid
		req.Username = ""
		assert.ErrorIs(t, req.Validate(), entities.ErrEmptyUsername)
	})
}

func TestResetPasswordRequestValidate(t *testing.T) {
	t.Run("Пустой токен", func(t *testing.T) {
		req := dto.ResetPasswordRequest{Token: "", Password: "password123"}
		assert.ErrorIs(t, req.Validate(), dto.ErrTokenRequired)
	})

	t.Run("Короткий новый пароль", func(t *testing.T) {
		req := dto.ResetPasswordRequest{Token: "some-token", Password: "123"}
		assert.ErrorIs(t, req.Validate(), entities.ErrPasswordTooShort)
	})

	t.Run("Корректный запрос", func(t *testing.T) {
		req := dto.ResetPasswordRequest{Token: "some-token", Password: "password123"}
		assert.NoError(t, req.Validate())
	})
}

func TestUpdateProfileRequestValidate(t *testing.T) {
	t.Run("Запрос без имени пользователя", func(t *testing.T) {
		req := dto.UpdateProfileRequest{}
		assert.NoError(t, req.Validate())
	})

	t.Run("Недопустимое новое имя пользователя", func(t *testing.T) {
		bad := "x"
		req := dto.UpdateProfileRequest{Username: &bad}
		assert.ErrorIs(t, req.Validate(), entities.ErrInvalidUsername)
	})
}

func TestNewUserResponseOmitsSensitiveFields(t *testing.T) {
	token := "reset-token"
	user := &entities.User{
		ID:                 "user-id",
		Email:              "test@example.com",
		PasswordHash:       "hashed_password",
		PasswordResetToken: &token,
	}

	resp := dto.NewUserResponse(user)

	payload, err := json.Marshal(resp)
	require.NoError(t, err)

	assert.NotContains(t, string(payload), "hashed_password")
	assert.NotContains(t, string(payload), "reset-token")
	assert.Contains(t, string(payload), "test@example.com")
}
