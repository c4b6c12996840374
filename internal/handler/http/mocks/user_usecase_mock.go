package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/mikiasgoitom/Postboard/internal/domain/entity"
	"github.com/mikiasgoitom/Postboard/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/Postboard/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the IUserUseCase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailSignUp      bool
	ShouldReturnDuplicate bool
	ShouldFailCheck       bool
	Taken                 map[string]bool

	// Return values
	MockUser entity.User
}

// Ensure MockUserUsecase implements the correct interface for handler.NewUserHandler
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:        "mock-user-id",
			Email:     "test@example.com",
			Nickname:  "testuser",
			CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		Taken: map[string]bool{},
	}
}

func (m *MockUserUsecase) SignUp(ctx context.Context, email, nickname, name, password string) (*entity.User, error) {
	if m.ShouldReturnDuplicate {
		return nil, usecase.ErrDuplicateUser
	}
	if m.ShouldFailSignUp {
		return nil, errors.New("user creation failed")
	}
	u := m.MockUser
	u.Email, u.Nickname = email, nickname
	return &u, nil
}

func (m *MockUserUsecase) CheckDuplicate(ctx context.Context, field entity.DuplicateField, value string) (bool, error) {
	if m.ShouldFailCheck {
		return false, errors.New("lookup failed")
	}
	return m.Taken[string(field)+":"+value], nil
}
