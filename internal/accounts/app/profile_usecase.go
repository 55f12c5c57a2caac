package app

import (
	"context"
	"errors"
	"fmt"

	"betola/internal/accounts/domain/entities"
	"betola/internal/accounts/domain/services"
	"betola/internal/accounts/ports/api"
	"betola/internal/accounts/ports/repositories"
	"betola/pkg/logger"

	"go.uber.org/zap"
)

const (
	methodGetProfile    = "GetProfile"
	methodUpdateProfile = "UpdateProfile"

	msgRequestingProfile   = "requesting user profile"
	msgEmptyUserIDProvided = "empty user ID provided"
	msgProfileRetrieved    = "user profile successfully retrieved"
	msgUpdatingProfile     = "updating user profile"
	msgProfileMissing      = "no profile found for user"
	msgUsernameConflict    = "requested username is already taken"
	msgProfileUpdated      = "user profile updated"

	msgErrFindingProfile  = "failed to find profile"
	msgErrCheckUsername   = "failed to check requested username"
	msgErrSavingProfile   = "failed to save profile"
	errCtxValidatingUser  = "validating user ID"
	errCtxFetchingProfile = "fetching profile"
	errCtxCheckingNewName = "checking requested username"
	errCtxUsernameInUse   = "username already in use"
	errCtxSavingProfile   = "saving profile"
)

// ProfileUseCaseImpl реализует интерфейс ProfileUseCase.
type ProfileUseCaseImpl struct {
	profileRepo repositories.ProfileRepository
}

// NewProfileUseCase создает новый экземпляр сервиса профилей.
func NewProfileUseCase(profileRepo repositories.ProfileRepository) api.ProfileUseCase {
	return &ProfileUseCaseImpl{
		profileRepo: profileRepo,
	}
}

// GetProfile возвращает профиль пользователя по его идентификатору.
func (u *ProfileUseCaseImpl) GetProfile(ctx context.Context, userID string) (*entities.Profile, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetProfile), zap.String("userID", userID))
	log.Debug(ctx, msgRequestingProfile)

	if userID == "" {
		log.Debug(ctx, msgEmptyUserIDProvided)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUser, entities.ErrEmptyUserID)
	}

	profile, err := u.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrProfileNotFound) {
			log.Debug(ctx, msgProfileMissing)
			return nil, fmt.Errorf("%s: %w", errCtxFetchingProfile, entities.ErrUserNotFound)
		}
		log.Error(ctx, msgErrFindingProfile, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFetchingProfile, err)
	}

	log.Info(ctx, msgProfileRetrieved)
	return profile, nil
}

// UpdateProfile применяет частичное обновление профиля.
// Непереданные поля не меняются, явный null очищает поле; смена имени
// пользователя требует глобальной уникальности и при конфликте
// оставляет профиль нетронутым.
func (u *ProfileUseCaseImpl) UpdateProfile(ctx context.Context, userID string, input api.UpdateProfileInput) (*entities.Profile, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateProfile), zap.String("userID", userID))
	log.Debug(ctx, msgUpdatingProfile)

	if userID == "" {
		log.Debug(ctx, msgEmptyUserIDProvided)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUser, entities.ErrEmptyUserID)
	}

	profile, err := u.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrProfileNotFound) {
			log.Debug(ctx, msgProfileMissing)
			return nil, fmt.Errorf("%s: %w", errCtxFetchingProfile, entities.ErrUserNotFound)
		}
		log.Error(ctx, msgErrFindingProfile, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFetchingProfile, err)
	}

	if input.Username != nil && *input.Username != profile.Username {
		existing, err := u.profileRepo.FindByUsername(ctx, *input.Username)
		if err != nil && !errors.Is(err, entities.ErrProfileNotFound) {
			log.Error(ctx, msgErrCheckUsername, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errCtxCheckingNewName, err)
		}
		if existing != nil {
			log.Debug(ctx, msgUsernameConflict, zap.String("username", *input.Username))
			return nil, fmt.Errorf("%s: %w", errCtxUsernameInUse, services.ErrUsernameAlreadyExists)
		}
		profile.Username = *input.Username
	}

	if input.FirstName.Set {
		profile.FirstName = input.FirstName.Value
	}
	if input.LastName.Set {
		profile.LastName = input.LastName.Value
	}
	if input.AvatarURL.Set {
		profile.AvatarURL = input.AvatarURL.Value
	}

	updated, err := u.profileRepo.Save(ctx, profile)
	if err != nil {
		log.Error(ctx, msgErrSavingProfile, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxSavingProfile, err)
	}

	log.Info(ctx, msgProfileUpdated)
	return updated, nil
}
