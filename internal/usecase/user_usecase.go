package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/Postboard/internal/domain/contract"
	"github.com/mikiasgoitom/Postboard/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Postboard/internal/usecase/contract"
)

// UserUsecase implements the IUserUseCase interface.
type UserUsecase struct {
	userRepo      contract.IUserRepository
	hasher        contract.IHasher
	logger        usecasecontract.IAppLogger
	validator     usecasecontract.IValidator
	uuidGenerator contract.IUUIDGenerator
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	hasher contract.IHasher,
	logger usecasecontract.IAppLogger,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:      userRepo,
		hasher:        hasher,
		logger:        logger,
		validator:     validator,
		uuidGenerator: uuidGenerator,
	}
}

// check if UserUsecase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// SignUp registers a new account with a hashed password.
func (uc *UserUsecase) SignUp(ctx context.Context, email, nickname, name, password string) (*entity.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	nickname = strings.TrimSpace(nickname)

	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email format: %v", ErrInvalidInput, err)
	}
	if err := uc.validator.ValidateNickname(nickname); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := uc.validator.ValidatePasswordStrength(password); err != nil {
		return nil, fmt.Errorf("%w: weak password: %v", ErrInvalidInput, err)
	}

	for field, value := range map[entity.DuplicateField]string{
		entity.DuplicateFieldEmail:    email,
		entity.DuplicateFieldNickname: nickname,
	} {
		taken, err := uc.userRepo.ExistsByField(ctx, field, value)
		if err != nil {
			uc.logger.Errorf("failed to check for existing user by %s: %v", field, err)
			return nil, fmt.Errorf("failed to check existing users: %w", err)
		}
		if taken {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateUser, field)
		}
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to process password: %w", err)
	}

	var pName *string
	if n := strings.TrimSpace(name); n != "" {
		pName = &n
	}

	now := time.Now()
	user := &entity.User{
		ID:           uc.uuidGenerator.NewUUID(),
		Email:        email,
		Nickname:     nickname,
		Name:         pName,
		PasswordHash: hashedPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		// the unique indexes catch a signup racing this one
		if errors.Is(err, contract.ErrDuplicateKey) {
			return nil, ErrDuplicateUser
		}
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	uc.logger.Infof("user %s signed up", user.ID)
	return user, nil
}

// CheckDuplicate reports whether nickname or email is already taken.
func (uc *UserUsecase) CheckDuplicate(ctx context.Context, field entity.DuplicateField, value string) (bool, error) {
	if !field.Valid() {
		return false, ErrInvalidField
	}
	if field == entity.DuplicateFieldEmail {
		value = strings.ToLower(value)
	}
	exists, err := uc.userRepo.ExistsByField(ctx, field, strings.TrimSpace(value))
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", field, err)
	}
	return exists, nil
}
