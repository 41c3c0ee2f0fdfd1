package repository

import (
	"context"

	"github.com/tripora/tripora-api/internal/domain/entity"
)

// UserRepository defines user persistence. GetByEmail matches the stored
// email exactly (case-sensitive); Create returns ErrDuplicate when the
// email is already taken.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	UpdateContact(ctx context.Context, email, name, mobile string) error
	DeleteByEmail(ctx context.Context, email string) error
}
