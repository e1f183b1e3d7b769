package service

import (
	"context"

	"github.com/evgkondr/bidpilot/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// MasterKeyStore owns the single symmetric secret scoped to the active
// tenant. The key lives in the local database and survives restarts; it is
// not a secrecy guarantee against other code with access to the same file.
type MasterKeyStore interface {
	// GetOrCreate returns the resident master key for tenantID. If the
	// resident key belongs to a different tenant it is discarded first; if
	// no key exists a fresh random one is generated and persisted. An empty
	// tenantID yields ErrKeyUnavailable.
	GetOrCreate(ctx context.Context, tenantID string) ([]byte, error)

	// Clear removes the resident key. Called on logout and on tenant
	// change.
	Clear(ctx context.Context) error

	// Replace installs key as the resident master key for tenantID,
	// discarding any previous key.
	Replace(ctx context.Context, tenantID string, key []byte) error
}

// MessageCryptoService encrypts and decrypts message content with keys
// derived per conversation from the tenant's master key.
type MessageCryptoService interface {
	// EncryptMessage serializes content to its canonical form and seals it
	// under the conversation key.
	EncryptMessage(ctx context.Context, tenantID, conversationID string, content models.MessageContent) (models.EncryptedPayload, error)

	// DecryptMessage opens payload and parses the content back. The
	// payload's own salt label selects the derivation version. Returns
	// crypto.ErrDecryptFailed (wrapped) when authentication fails.
	DecryptMessage(ctx context.Context, tenantID, conversationID string, payload models.EncryptedPayload) (models.MessageContent, error)
}

// BackupService exports the master key to a passphrase-protected portable
// artifact and imports it back.
type BackupService interface {
	// Export wraps the tenant's master key under a key derived from
	// passphrase and returns the portable artifact.
	Export(ctx context.Context, tenantID, passphrase string) (models.BackupArtifact, error)

	// Import unwraps the artifact and installs the recovered key. Returns
	// ErrBadPassphraseOrCorrupt on authentication failure and
	// ErrTenantMismatch when the artifact was exported for a different
	// tenant; in both cases the key store is left untouched.
	Import(ctx context.Context, artifact models.BackupArtifact, passphrase, currentTenantID string) error
}

// ConversationService drives the per-thread send/edit state machine and
// keeps the optimistic local timeline consistent with server state.
type ConversationService interface {
	// Open loads (or starts) the conversation and returns its thread. Rows
	// are resolved in fallback order: server plaintext, decrypted copy,
	// local cache.
	Open(ctx context.Context, conversationID string) ([]models.Message, error)

	// Messages returns a snapshot of the current thread.
	Messages(conversationID string) ([]models.Message, error)

	// Send appends an optimistic pending message, posts it, and replaces
	// the pending entry with the server-confirmed messages. On failure the
	// pending entry is removed entirely.
	Send(ctx context.Context, conversationID string, content models.MessageContent) ([]models.Message, error)

	// Edit rewrites one message in place, discards every later message,
	// posts the edit, and rebuilds the thread from the server's reconciled
	// list. Only one edit may be active per thread.
	Edit(ctx context.Context, conversationID, messageID string, content models.MessageContent) ([]models.Message, error)

	// Close discards the local thread. Results of in-flight operations
	// arriving afterwards are ignored.
	Close(conversationID string)
}
