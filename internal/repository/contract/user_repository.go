package contract

import (
	"context"

	"notesy-be/internal/entity"
	"notesy-be/internal/repository/specification"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	SaveUserProvider(ctx context.Context, provider *entity.UserProvider) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
