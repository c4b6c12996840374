package contract

import (
	"context"

	"github.com/mikiasgoitom/Postboard/internal/domain/entity"
)

type IUserRepository interface {
	// CreateUser inserts a user. A unique index violation is reported as ErrDuplicateKey.
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// ExistsByField reports whether any user has field equal to value.
	ExistsByField(ctx context.Context, field entity.DuplicateField, value string) (bool, error)
}
