package user

import (
	"context"
	"time"
)

// Repository lookups return (nil, nil) when no row matches, the caller
// branches on presence instead of unwrapping a not-found error.
type Repository interface {
	FetchUserByID(ctx context.Context, id ID) (*User, error)
	FetchUsers(ctx context.Context, page int) (Users, error)
	FetchUsersByBirthDateRange(ctx context.Context, from, to time.Time) (Users, error)
	CreateUser(ctx context.Context, req User) (*User, error)
	UpdateUser(ctx context.Context, req User) (*User, error)
	DeleteUser(ctx context.Context, id ID) (*User, error)
}
