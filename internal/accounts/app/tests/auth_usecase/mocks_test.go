package authusecase_test

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/mock"

	"betola/internal/accounts/domain/entities"
)

const (
	ErrCreateUser          = "failed to create user"
	ErrFindUserByID        = "failed to find user by ID"
	ErrFindUserByEmail     = "failed to find user by email"
	ErrFindUserByToken     = "failed to find user by reset token"
	ErrSaveUser            = "failed to save user"
	ErrCreateProfile       = "failed to create profile"
	ErrFindProfileByUserID = "failed to find profile by user ID"
	ErrFindProfileByName   = "failed to find profile by username"
	ErrSaveProfile         = "failed to save profile"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrCreateUser, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.User), nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrFindUserByID, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.User), nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrFindUserByEmail, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.User), nil
}

func (m *mockUserRepository) FindByPasswordResetToken(ctx context.Context, token string) (*entities.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrFindUserByToken, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.User), nil
}

func (m *mockUserRepository) Save(ctx context.Context, user *entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrSaveUser, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.User), nil
}

type mockProfileRepository struct {
	mock.Mock
}

func (m *mockProfileRepository) Create(ctx context.Context, profile *entities.Profile) (*entities.Profile, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrCreateProfile, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.Profile), nil
}

func (m *mockProfileRepository) FindByUserID(ctx context.Context, userID string) (*entities.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrFindProfileByUserID, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.Profile), nil
}

func (m *mockProfileRepository) FindByUsername(ctx context.Context, username string) (*entities.Profile, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrFindProfileByName, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.Profile), nil
}

func (m *mockProfileRepository) Save(ctx context.Context, profile *entities.Profile) (*entities.Profile, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrSaveProfile, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.Profile), nil
}

type mockPasswordService struct {
	mock.Mock
}

func (m *mockPasswordService) Hash(ctx context.Context, password string) (string, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordService) Verify(ctx context.Context, password, hash string) (bool, error) {
	args := m.Called(ctx, password, hash)
	return args.Bool(0), args.Error(1)
}
