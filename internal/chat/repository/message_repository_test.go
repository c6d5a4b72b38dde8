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

func TestMessageRepository_Save(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewMessageRepository(gormDB)

	content := "seen dune yet?"
	msg := &dbmysql.Message{
		ConversationID: 10,
		SenderID:       "user-a",
		Content:        &content,
		Kind:           dbmysql.MessageKindText,
		CreatedAt:      time.Now().UTC(),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `messages`").
		WillReturnResult(sqlmock.NewResult(101, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Save(context.Background(), msg))
	assert.Equal(t, uint64(101), msg.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageRepository_SoftDelete(t *testing.T) {
	tests := []struct {
		name         string
		senderID     string
		rowsAffected int64
		expected     bool
	}{
		{name: "sender deletes own message", senderID: "user-a", rowsAffected: 1, expected: true},
		{name: "non-sender touches nothing", senderID: "user-b", rowsAffected: 0, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gormDB, mock, cleanup := setupTestDB(t)
			defer cleanup()
			repo := NewMessageRepository(gormDB)

			mock.ExpectBegin()
			mock.ExpectExec("UPDATE `messages` SET").
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))
			mock.ExpectCommit()

			deleted, err := repo.SoftDelete(context.Background(), 101, tt.senderID)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, deleted)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMessageRepository_HasReadReceipt(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewMessageRepository(gormDB)

	mock.ExpectQuery("SELECT count(.+) FROM `message_read_receipts`").
		WithArgs(uint64(101), "user-b").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.HasReadReceipt(context.Background(), 101, "user-b")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageRepository_ReplaceReaction(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewMessageRepository(gormDB)

	reaction := &dbmysql.MessageReaction{
		MessageID: 101,
		UserID:    "user-b",
		Reaction:  "🔥",
		CreatedAt: time.Now().UTC(),
	}

	// Delete-then-insert in one transaction keeps at most one reaction
	// per (message, user).
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `message_reactions`").
		WithArgs(uint64(101), "user-b").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `message_reactions`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.ReplaceReaction(context.Background(), reaction))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageRepository_DeleteReaction(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewMessageRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `message_reactions`").
		WithArgs(uint64(101), "user-b").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	removed, err := repo.DeleteReaction(context.Background(), 101, "user-b")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageRepository_UnreadCount(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewMessageRepository(gormDB)

	mock.ExpectQuery("SELECT count(.+) FROM `messages`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.UnreadCount(context.Background(), 10, "user-b")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageRepository_CreateReadReceiptsEmptyIsNoop(t *testing.T) {
	gormDB, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewMessageRepository(gormDB)

	// No SQL expected.
	require.NoError(t, repo.CreateReadReceipts(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}
