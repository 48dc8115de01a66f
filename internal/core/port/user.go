package port

import (
	"context"

	"crudapp/internal/core/domain"
)

type UserRepository interface {
	Store[domain.User]
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type UserService interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	GetByID(ctx context.Context, id int) (domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id int, patch domain.UserPatch) (domain.User, error)
	Delete(ctx context.Context, id int) error
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
