package store

import (
	"context"

	"github.com/evgkondr/bidpilot/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// MasterKeyRepository persists the single resident master key. The key store
// service layers tenant-switch semantics on top of it.
type MasterKeyRepository interface {
	// GetResident returns the currently resident key record, or
	// ErrMasterKeyNotFound if none is stored.
	GetResident(ctx context.Context) (models.MasterKeyRecord, error)

	// Save stores record as the resident key, replacing any previous one.
	Save(ctx context.Context, record models.MasterKeyRecord) error

	// Delete removes the resident key. Deleting when no key is stored is
	// not an error.
	Delete(ctx context.Context) error
}

// MessageCacheRepository stores last-known plaintext message content, the
// fallback source for legacy server rows.
type MessageCacheRepository interface {
	// Upsert inserts or refreshes cached content for the given messages.
	Upsert(ctx context.Context, messages ...models.CachedMessage) error

	// Get returns the cached content for messageID, or
	// ErrCachedMessageNotFound.
	Get(ctx context.Context, messageID string) (models.CachedMessage, error)

	// GetByConversation returns all cached messages of one conversation
	// ordered by creation time.
	GetByConversation(ctx context.Context, conversationID string) ([]models.CachedMessage, error)
}
