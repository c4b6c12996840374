package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Postboard/internal/domain/entity"
)

// IUserUseCase defines the interface for account operations.
type IUserUseCase interface {
	SignUp(ctx context.Context, email, nickname, name, password string) (*entity.User, error)
	CheckDuplicate(ctx context.Context, field entity.DuplicateField, value string) (bool, error)
}
