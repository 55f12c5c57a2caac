package profileusecase_test

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/mock"

	"betola/internal/accounts/domain/entities"
)

const (
	ErrCreateProfile       = "failed to create profile"
	ErrFindProfileByUserID = "failed to find profile by user ID"
	ErrFindProfileByName   = "failed to find profile by username"
	ErrSaveProfile         = "failed to save profile"
)

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
