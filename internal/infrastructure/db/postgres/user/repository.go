package user

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"users-api/internal/domain/user"
	"users-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.Pool
}

func NewRepository(db postgres.Pool) user.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchUsers(ctx context.Context, page int) (user.Users, error) {
	rows, err := r.db.Query(ctx, SelectUsers, page)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanUsers(rows)
}

func (r *Repository) FetchUsersByBirthDateRange(ctx context.Context, from, to time.Time) (user.Users, error) {
	rows, err := r.db.Query(ctx, SelectUsersByBirthDateRange, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanUsers(rows)
}

func (r *Repository) FetchUserByID(ctx context.Context, id user.ID) (*user.User, error) {
	u := new(User)
	err := scanUser(r.db.QueryRow(ctx, SelectUserByID, uint64(id)), u)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	u := new(User)

	err := scanUser(r.db.QueryRow(
		ctx,
		InsertUser,
		req.Email, req.FirstName, req.LastName, req.BirthDate, req.Address, req.PhoneNumber,
	), u)
	if err != nil {
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) UpdateUser(ctx context.Context, req user.User) (*user.User, error) {
	u := new(User)

	err := scanUser(r.db.QueryRow(
		ctx,
		UpdateUserByID,
		req.Email, req.FirstName, req.LastName, req.BirthDate, req.Address, req.PhoneNumber, uint64(req.ID),
	), u)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) DeleteUser(ctx context.Context, id user.ID) (*user.User, error) {
	u := new(User)
	err := scanUser(r.db.QueryRow(ctx, DeleteUserByID, uint64(id)), u)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func scanUser(row pgx.Row, u *User) error {
	return row.Scan(
		&u.ID,
		&u.Email,
		&u.FirstName,
		&u.LastName,
		&u.BirthDate,
		&u.Address,
		&u.PhoneNumber,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
}

func scanUsers(rows pgx.Rows) (user.Users, error) {
	var us Users
	for rows.Next() {
		u := new(User)

		if err := rows.Scan(
			&u.ID,
			&u.Email,
			&u.FirstName,
			&u.LastName,
			&u.BirthDate,
			&u.Address,
			&u.PhoneNumber,

			&u.CreatedAt,
			&u.UpdatedAt,
		); err != nil {
			return nil, err
		}

		us = append(us, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&us), nil
}
