package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movieplus/internal/dbmysql"
)

func TestPresenceRepository_CreateAndDelete(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewPresenceRepository(gormDB)

	now := time.Now().UTC()
	conn := &dbmysql.UserConnection{
		ConnectionID: "conn-1",
		UserID:       "user-a",
		ConnectedAt:  now,
		LastSeenAt:   now,
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `user_connections`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), conn))

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `user_connections`").
		WithArgs("conn-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteByHandle(context.Background(), "conn-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPresenceRepository_OnlineUserIDs(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewPresenceRepository(gormDB)

	mock.ExpectQuery("SELECT DISTINCT `user_id` FROM `user_connections`").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("user-b"))

	online, err := repo.OnlineUserIDs(context.Background(), []string{"user-a", "user-b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"user-b"}, online)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPresenceRepository_OnlineUserIDsEmptyInput(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewPresenceRepository(gormDB)

	// No query runs for an empty id set.
	online, err := repo.OnlineUserIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, online)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceRepository_DeleteTokensEmptyIsNoop(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewDeviceRepository(gormDB)

	require.NoError(t, repo.DeleteTokens(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceRepository_TokensFor(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewDeviceRepository(gormDB)

	mock.ExpectQuery("SELECT `token` FROM `device_tokens`").
		WithArgs("user-a").
		WillReturnRows(sqlmock.NewRows([]string{"token"}).AddRow("tok-1"))

	tokens, err := repo.TokensFor(context.Background(), "user-a")
	require.NoError(t, err)
	assert.Equal(t, []string{"tok-1"}, tokens)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceRepository_TokensForMany(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewDeviceRepository(gormDB)

	mock.ExpectQuery("SELECT `token` FROM `device_tokens`").
		WillReturnRows(sqlmock.NewRows([]string{"token"}).
			AddRow("tok-1").
			AddRow("tok-2"))

	tokens, err := repo.TokensForMany(context.Background(), []string{"user-a", "user-b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"tok-1", "tok-2"}, tokens)
	assert.NoError(t, mock.ExpectationsWereMet())
}
