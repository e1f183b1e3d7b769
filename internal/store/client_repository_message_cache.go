package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/evgkondr/bidpilot/internal/logger"
	"github.com/evgkondr/bidpilot/models"
)

type localMessageCacheRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalMessageCacheRepository(db *DB, logger *logger.Logger) MessageCacheRepository {
	return &localMessageCacheRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *localMessageCacheRepository) Upsert(ctx context.Context, messages ...models.CachedMessage) error {
	log := logger.FromContext(ctx)

	for _, msg := range messages {
		content, err := models.EncodeMessageContent(msg.Content)
		if err != nil {
			return fmt.Errorf("encode cached content (message_id=%s): %w", msg.MessageID, err)
		}

		_, err = r.DB.ExecContext(ctx, upsertCachedMessage,
			msg.MessageID,
			msg.ConversationID,
			msg.Role,
			string(content),
			msg.CreatedAt,
		)
		if err != nil {
			log.Err(err).
				Str("func", "messageCacheRepository.Upsert").
				Str("message_id", msg.MessageID).
				Msg("failed to execute upsert for cached message")
			return fmt.Errorf("failed to cache message (message_id=%s): %w", msg.MessageID, err)
		}
	}

	return nil
}

func (r *localMessageCacheRepository) Get(ctx context.Context, messageID string) (models.CachedMessage, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getCachedMessage, messageID)

	msg, err := scanCachedMessage(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CachedMessage{}, ErrCachedMessageNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "messageCacheRepository.Get").
			Str("message_id", messageID).
			Msg("failed to scan cached message row")
		return models.CachedMessage{}, fmt.Errorf("failed to scan cached message row: %w", err)
	}

	return msg, nil
}

func (r *localMessageCacheRepository) GetByConversation(ctx context.Context, conversationID string) ([]models.CachedMessage, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getCachedConversation, conversationID)
	if err != nil {
		log.Err(err).
			Str("func", "messageCacheRepository.GetByConversation").
			Str("conversation_id", conversationID).
			Msg("failed to execute query for cached conversation")
		return nil, fmt.Errorf("failed to query cached conversation: %w", err)
	}
	defer rows.Close()

	var messages []models.CachedMessage
	for rows.Next() {
		msg, err := scanCachedMessage(rows.Scan)
		if err != nil {
			log.Err(err).
				Str("func", "messageCacheRepository.GetByConversation").
				Msg("failed to scan cached message rows")
			return nil, fmt.Errorf("failed to scan cached message rows: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cached message rows: %w", err)
	}

	return messages, nil
}

func scanCachedMessage(scan func(dest ...any) error) (models.CachedMessage, error) {
	var msg models.CachedMessage
	var content string

	if err := scan(&msg.MessageID, &msg.ConversationID, &msg.Role, &content, &msg.CreatedAt); err != nil {
		return models.CachedMessage{}, err
	}

	msg.Content = models.DecodeMessageContent([]byte(content))
	return msg, nil
}
