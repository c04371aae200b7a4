package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var userColumns = []string{"id", "login", "password_hash", "kyc_approved", "created_at"}

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := `
        SELECT id, login, password_hash, kyc_approved, created_at
        FROM users
        WHERE login = $1
    `

	t.Run("User exists", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs("trader1").
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow(1, "trader1", "hashedpassword", false, now))

		user, err := repo.FindByLogin(context.Background(), "trader1")
		assert.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		assert.Equal(t, "trader1", user.Login)
	})

	t.Run("User does not exist", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs("ghost").
			WillReturnError(pgx.ErrNoRows)

		user, err := repo.FindByLogin(context.Background(), "ghost")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs("trader1").
			WillReturnError(errors.New("database error"))

		user, err := repo.FindByLogin(context.Background(), "trader1")
		assert.Error(t, err)
		assert.Nil(t, user)
	})
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := `
        SELECT id, login, password_hash, kyc_approved, created_at
        FROM users
        WHERE id = $1
    `

	t.Run("User exists", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(1).
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow(1, "trader1", "hashedpassword", true, now))

		user, err := repo.GetByID(context.Background(), 1)
		assert.NoError(t, err)
		assert.True(t, user.KYCApproved)
	})

	t.Run("User does not exist", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(404).
			WillReturnError(pgx.ErrNoRows)

		user, err := repo.GetByID(context.Background(), 404)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := `
        INSERT INTO users (login, password_hash)
        VALUES ($1, $2)
        RETURNING id, login, password_hash, kyc_approved, created_at
    `

	t.Run("Successful creation", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs("trader1", "hashedpassword").
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow(1, "trader1", "hashedpassword", false, now))

		user, err := repo.Create(context.Background(), &domain.User{
			Login:        "trader1",
			PasswordHash: "hashedpassword",
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		assert.False(t, user.KYCApproved)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs("trader1", "hashedpassword").
			WillReturnError(errors.New("database error"))

		user, err := repo.Create(context.Background(), &domain.User{
			Login:        "trader1",
			PasswordHash: "hashedpassword",
		})
		assert.Error(t, err)
		assert.Nil(t, user)
	})
}
