package app

import (
	"context"
	"errors"
	"fmt"

	"betola/internal/accounts/domain/entities"
	"betola/internal/accounts/domain/services"
	"betola/internal/accounts/ports/api"
	"betola/internal/accounts/ports/repositories"
	svc "betola/internal/accounts/ports/services"
	"betola/pkg/logger"

	"go.uber.org/zap"
)

const (
	methodRegister     = "Register"
	methodAuthenticate = "Authenticate"

	msgStartRegistration   = "starting user registration"
	msgEmailExists         = "user with this email already exists"
	msgUsernameExists      = "profile with this username already exists"
	msgUserRegistered      = "user registered successfully"
	msgProfileCreated      = "profile created for new user"
	msgAuthAttempt         = "authentication attempt"
	msgAuthNonExistent     = "authentication attempt with non-existent email"
	msgInvalidPasswordAuth = "invalid password provided"
	msgUserAuthenticated   = "user authenticated successfully"

	msgErrCheckExistingEmail    = "failed to check existing email"
	msgErrCheckExistingUsername = "failed to check existing username"
	msgErrHashPassword          = "failed to hash password"
	msgErrCreateUser            = "failed to create user"
	msgErrCreateProfile         = "failed to create profile"
	msgErrFindingUser           = "error finding user by email"
	msgErrVerifyingPassword     = "error verifying password"

	errCtxCheckingEmail      = "checking existing email"
	errCtxCheckingUsername   = "checking existing username"
	errCtxEmailRegistered    = "email already registered"
	errCtxUsernameTaken      = "username already taken"
	errCtxHashingPassword    = "hashing password"
	errCtxCreatingUser       = "creating user"
	errCtxCreatingProfile    = "creating profile"
	errCtxInvalidCredentials = "invalid credentials"
	errCtxFindingUser        = "finding user"
	errCtxVerifyingPassword  = "verifying password"
)

// AuthUseCaseImpl реализует интерфейс AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	passwordSvc svc.PasswordService
}

// NewAuthUseCase создает новый экземпляр сервиса учетных данных.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	passwordSvc svc.PasswordService,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		passwordSvc: passwordSvc,
	}
}

// Register создает нового пользователя вместе с его профилем.
// Проверки уникальности выполняются до записи; уникальные индексы
// хранилища остаются последней линией защиты от гонки между
// одновременными регистрациями.
func (a *AuthUseCaseImpl) Register(ctx context.Context, input api.RegisterInput) (*entities.User, *entities.Profile, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("email", input.Email))
	log.Debug(ctx, msgStartRegistration)

	existingUser, err := a.userRepo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
		log.Error(ctx, msgErrCheckExistingEmail, zap.Error(err))
		return nil, nil, fmt.Errorf("%s: %w", errCtxCheckingEmail, err)
	}
	if existingUser != nil {
		log.Debug(ctx, msgEmailExists)
		return nil, nil, fmt.Errorf("%s: %w", errCtxEmailRegistered, services.ErrEmailAlreadyExists)
	}

	existingProfile, err := a.profileRepo.FindByUsername(ctx, input.Username)
	if err != nil && !errors.Is(err, entities.ErrProfileNotFound) {
		log.Error(ctx, msgErrCheckExistingUsername, zap.Error(err))
		return nil, nil, fmt.Errorf("%s: %w", errCtxCheckingUsername, err)
	}
	if existingProfile != nil {
		log.Debug(ctx, msgUsernameExists, zap.String("username", input.Username))
		return nil, nil, fmt.Errorf("%s: %w", errCtxUsernameTaken, services.ErrUsernameAlreadyExists)
	}

	hashedPassword, err := a.passwordSvc.Hash(ctx, input.Password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	newUser := &entities.User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	createdUser, err := a.userRepo.Create(ctx, newUser)
	if err != nil {
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return nil, nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserRegistered, zap.String("userID", createdUser.ID))

	newProfile := &entities.Profile{
		UserID:    createdUser.ID,
		Username:  input.Username,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}

	createdProfile, err := a.profileRepo.Create(ctx, newProfile)
	if err != nil {
		log.Error(ctx, msgErrCreateProfile, zap.Error(err), zap.String("userID", createdUser.ID))
		return nil, nil, fmt.Errorf("%s: %w", errCtxCreatingProfile, err)
	}

	log.Info(ctx, msgProfileCreated,
		zap.String("userID", createdUser.ID),
		zap.String("profileID", createdProfile.ID))

	return createdUser, createdProfile, nil
}

// Authenticate проверяет учетные данные пользователя по email и паролю.
// Отсутствующий пользователь и неверный пароль дают одну и ту же ошибку,
// чтобы не раскрывать существование учетной записи.
func (a *AuthUseCaseImpl) Authenticate(ctx context.Context, email, password string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodAuthenticate), zap.String("email", email))
	log.Debug(ctx, msgAuthAttempt)

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgAuthNonExistent)
			return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	valid, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err), zap.String("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !valid {
		log.Debug(ctx, msgInvalidPasswordAuth, zap.String("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
	}

	log.Info(ctx, msgUserAuthenticated, zap.String("userID", user.ID))
	return user, nil
}
