package models

import "time"

// MasterKeyRecord is the resident master key row in the local database. At
// most one record exists at a time; it is scoped to exactly one tenant.
type MasterKeyRecord struct {
	TenantID  string
	Key       []byte
	CreatedAt time.Time
}

// CachedMessage is the last-known plaintext content of a message, kept
// locally so legacy server rows carrying neither plaintext nor ciphertext
// can still be rendered.
type CachedMessage struct {
	MessageID      string
	ConversationID string
	Role           Role
	Content        MessageContent
	CreatedAt      time.Time
}
