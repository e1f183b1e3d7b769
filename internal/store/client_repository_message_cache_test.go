package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgkondr/bidpilot/internal/logger"
	"github.com/evgkondr/bidpilot/models"
)

func newTestMessageCacheRepo(t *testing.T) (*localMessageCacheRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	repo := &localMessageCacheRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestMessageCacheRepository_Upsert(t *testing.T) {
	repo, mock, db := newTestMessageCacheRepo(t)
	defer db.Close()

	now := time.Now()
	msg := models.CachedMessage{
		MessageID:      "m1",
		ConversationID: "conv-1",
		Role:           models.RoleUser,
		Content:        models.TextContent("hello"),
		CreatedAt:      now,
	}

	mock.ExpectExec("INSERT INTO message_cache").
		WithArgs(msg.MessageID, msg.ConversationID, msg.Role, `{"type":"text","text":"hello"}`, now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Upsert(context.Background(), msg))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageCacheRepository_Get_Found(t *testing.T) {
	repo, mock, db := newTestMessageCacheRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"message_id", "conversation_id", "role", "content", "created_at"}).
		AddRow("m1", "conv-1", "assistant", `{"type":"text","text":"reply"}`, now)

	mock.ExpectQuery("SELECT message_id, conversation_id, role, content, created_at").
		WithArgs("m1").
		WillReturnRows(rows)

	msg, err := repo.Get(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAssistant, msg.Role)
	assert.Equal(t, "reply", msg.Content.Text)
}

func TestMessageCacheRepository_Get_NotFound(t *testing.T) {
	repo, mock, db := newTestMessageCacheRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT message_id, conversation_id, role, content, created_at").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing")
	require.ErrorIs(t, err, ErrCachedMessageNotFound)
}

func TestMessageCacheRepository_Get_LegacyBareString(t *testing.T) {
	repo, mock, db := newTestMessageCacheRepo(t)
	defer db.Close()

	// Rows written before the canonical envelope stored the bare text.
	rows := sqlmock.
		NewRows([]string{"message_id", "conversation_id", "role", "content", "created_at"}).
		AddRow("m1", "conv-1", "user", "plain old text", time.Now())

	mock.ExpectQuery("SELECT message_id, conversation_id, role, content, created_at").
		WithArgs("m1").
		WillReturnRows(rows)

	msg, err := repo.Get(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, "plain old text", msg.Content.Text)
	assert.False(t, msg.Content.HasImages())
}

func TestMessageCacheRepository_GetByConversation_Ordered(t *testing.T) {
	repo, mock, db := newTestMessageCacheRepo(t)
	defer db.Close()

	t0 := time.Now()
	rows := sqlmock.
		NewRows([]string{"message_id", "conversation_id", "role", "content", "created_at"}).
		AddRow("m1", "conv-1", "user", `{"type":"text","text":"one"}`, t0).
		AddRow("m2", "conv-1", "assistant", `{"type":"text","text":"two"}`, t0.Add(time.Second))

	mock.ExpectQuery("SELECT message_id, conversation_id, role, content, created_at").
		WithArgs("conv-1").
		WillReturnRows(rows)

	messages, err := repo.GetByConversation(context.Background(), "conv-1")
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "one", messages[0].Content.Text)
	assert.Equal(t, "two", messages[1].Content.Text)
}
