package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rmc/backend/internal/domain/shared"
	"github.com/rmc/backend/internal/infrastructure/persistence/models"
)

// openMockDB wires gorm's postgres dialect to a sqlmock connection so tests
// can assert the exact SQL the repository emits.
func openMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	return db, mock
}

func TestUserRepository_FindActiveByUsername(t *testing.T) {
	db, mock := openMockDB(t)
	repo := NewGormUserRepository(db)

	id := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1 AND is_active = 1`).
		WithArgs("admin", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "role", "is_active"}).
			AddRow(id.String(), "admin", "$2a$10$hash", "admin", 1))

	user, err := repo.FindActiveByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "admin", user.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindActiveByUsernameNotFound(t *testing.T) {
	db, mock := openMockDB(t)
	repo := NewGormUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1 AND is_active = 1`).
		WithArgs("ghost", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))

	_, err := repo.FindActiveByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_TouchLastLogin(t *testing.T) {
	db, mock := openMockDB(t)
	repo := NewGormUserRepository(db)

	id := uuid.New()
	mock.ExpectExec(`UPDATE "users" SET "last_login"=\$1,"updated_at"=\$2 WHERE id = \$3`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.TouchLastLogin(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateAndLoginFlowAgainstSqlite(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	fresh := models.User{
		Username:     "operator",
		PasswordHash: "$2a$10$hash",
		Role:         "user",
		IsActive:     1,
	}
	require.NoError(t, repo.Create(ctx, &fresh))

	found, err := repo.FindActiveByUsername(ctx, fresh.Username)
	require.NoError(t, err)
	assert.Nil(t, found.LastLogin)

	require.NoError(t, repo.TouchLastLogin(ctx, found.ID))

	found, err = repo.FindActiveByID(ctx, found.ID)
	require.NoError(t, err)
	require.NotNil(t, found.LastLogin)
	assert.WithinDuration(t, time.Now(), *found.LastLogin, time.Minute)
}
