package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "users-api/internal/domain/user"
)

var userColumns = []string{
	"id", "email", "first_name", "last_name", "birth_date",
	"address", "phone_number", "created_at", "updated_at",
}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func userRow(id uint64) []any {
	addr := "1 Main St"
	phone := "+33612345678"
	now := time.Now().UTC().Truncate(time.Microsecond)
	return []any{
		id, "john.doe@example.com", "John", "Doe",
		time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		&addr, &phone, now, now,
	}
}

func TestRepository_FetchUserByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("SELECT id, email, first_name, last_name, birth_date").
			WithArgs(uint64(7)).
			WillReturnRows(pgxmock.NewRows(userColumns).AddRow(userRow(7)...))

		repo := NewRepository(mock)
		u, err := repo.FetchUserByID(ctx, 7)

		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, domain.ID(7), u.ID)
		assert.Equal(t, "john.doe@example.com", u.Email)
		assert.Equal(t, "1 Main St", u.Address)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no row yields nil, nil", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("SELECT id, email, first_name, last_name, birth_date").
			WithArgs(uint64(404)).
			WillReturnError(pgx.ErrNoRows)

		repo := NewRepository(mock)
		u, err := repo.FetchUserByID(ctx, 404)

		require.NoError(t, err)
		assert.Nil(t, u)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_CreateUser(t *testing.T) {
	ctx := context.Background()
	mock := newMock(t)

	req := domain.User{
		Email:       "john.doe@example.com",
		FirstName:   "John",
		LastName:    "Doe",
		BirthDate:   time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Address:     "1 Main St",
		PhoneNumber: "+33612345678",
	}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(req.Email, req.FirstName, req.LastName, req.BirthDate, req.Address, req.PhoneNumber).
		WillReturnRows(pgxmock.NewRows(userColumns).AddRow(userRow(1)...))

	repo := NewRepository(mock)
	u, err := repo.CreateUser(ctx, req)

	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, domain.ID(1), u.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("updated", func(t *testing.T) {
		mock := newMock(t)
		req := domain.User{
			ID:        7,
			Email:     "new@example.com",
			FirstName: "Jane",
			LastName:  "Roe",
			BirthDate: time.Date(1991, 2, 3, 0, 0, 0, 0, time.UTC),
		}

		mock.ExpectQuery("UPDATE users").
			WithArgs(req.Email, req.FirstName, req.LastName, req.BirthDate, req.Address, req.PhoneNumber, uint64(7)).
			WillReturnRows(pgxmock.NewRows(userColumns).AddRow(userRow(7)...))

		repo := NewRepository(mock)
		u, err := repo.UpdateUser(ctx, req)

		require.NoError(t, err)
		require.NotNil(t, u)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row yields nil, nil", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("UPDATE users").
			WithArgs("a@b.com", "", "", time.Time{}, "", "", uint64(404)).
			WillReturnError(pgx.ErrNoRows)

		repo := NewRepository(mock)
		u, err := repo.UpdateUser(ctx, domain.User{ID: 404, Email: "a@b.com"})

		require.NoError(t, err)
		assert.Nil(t, u)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_DeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted row returned", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("DELETE FROM users").
			WithArgs(uint64(7)).
			WillReturnRows(pgxmock.NewRows(userColumns).AddRow(userRow(7)...))

		repo := NewRepository(mock)
		u, err := repo.DeleteUser(ctx, 7)

		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, domain.ID(7), u.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row yields nil, nil", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("DELETE FROM users").
			WithArgs(uint64(404)).
			WillReturnError(pgx.ErrNoRows)

		repo := NewRepository(mock)
		u, err := repo.DeleteUser(ctx, 404)

		require.NoError(t, err)
		assert.Nil(t, u)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FetchUsersByBirthDateRange(t *testing.T) {
	ctx := context.Background()
	from := time.Date(1985, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(1995, 12, 31, 0, 0, 0, 0, time.UTC)

	t.Run("rows in id order", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("WHERE birth_date >= \\$1 AND birth_date <= \\$2").
			WithArgs(from, to).
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow(userRow(1)...).
				AddRow(userRow(2)...))

		repo := NewRepository(mock)
		us, err := repo.FetchUsersByBirthDateRange(ctx, from, to)

		require.NoError(t, err)
		require.Len(t, us, 2)
		assert.Equal(t, domain.ID(1), us[0].ID)
		assert.Equal(t, domain.ID(2), us[1].ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty result", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("WHERE birth_date >= \\$1 AND birth_date <= \\$2").
			WithArgs(from, to).
			WillReturnRows(pgxmock.NewRows(userColumns))

		repo := NewRepository(mock)
		us, err := repo.FetchUsersByBirthDateRange(ctx, from, to)

		require.NoError(t, err)
		assert.Empty(t, us)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("WHERE birth_date >= \\$1 AND birth_date <= \\$2").
			WithArgs(from, to).
			WillReturnError(errors.New("connection refused"))

		repo := NewRepository(mock)
		_, err := repo.FetchUsersByBirthDateRange(ctx, from, to)

		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FetchUsers(t *testing.T) {
	ctx := context.Background()
	mock := newMock(t)

	mock.ExpectQuery("SELECT id, email, first_name, last_name, birth_date").
		WithArgs(2).
		WillReturnRows(pgxmock.NewRows(userColumns).AddRow(userRow(51)...))

	repo := NewRepository(mock)
	us, err := repo.FetchUsers(ctx, 2)

	require.NoError(t, err)
	require.Len(t, us, 1)
	assert.Equal(t, domain.ID(51), us[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
