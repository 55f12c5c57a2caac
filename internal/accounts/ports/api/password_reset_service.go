package api

import "context"

// PasswordResetUseCase определяет порт восстановления пароля.
type PasswordResetUseCase interface {
	RequestPasswordReset(ctx context.Context, email string) error

	ResetPassword(ctx context.Context, token, newPassword string) error
}
