package ports

import (
	"context"
	"time"

	"users-api/internal/domain/user"
)

type UserService interface {
	FindUserByID(ctx context.Context, id user.ID) (*user.User, error)
	FindUsers(ctx context.Context, page int) (user.Users, error)
	FindUsersByBirthDateRange(ctx context.Context, from, to time.Time) (user.Users, error)
	CreateUser(ctx context.Context, u user.User) (*user.User, error)
	UpdateUser(ctx context.Context, u user.User) (*user.User, error)
	DeleteUser(ctx context.Context, id user.ID) error
}
