package adapter

import (
	"context"

	"github.com/evgkondr/bidpilot/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the outbound transport to the chat server. The server
// speaks plaintext for the live session; encrypted copies travel only through
// SaveEncrypted. Implementations must be safe for concurrent use.
type ServerAdapter interface {
	// SetToken installs the bearer token for subsequent requests.
	SetToken(token string)

	// TenantID returns the tenant id claim carried by the current session
	// token, or empty if no token is set.
	TenantID() string

	// History retrieves the full message list for a conversation.
	History(ctx context.Context, conversationID string) (models.HistoryResponse, error)

	// Start creates a conversation for a proposal profile.
	Start(ctx context.Context, conversationID string) (models.StartResponse, error)

	// SendMessage posts a new user message and returns the confirmed user
	// message plus the assistant reply, if any.
	SendMessage(ctx context.Context, conversationID string, req models.SendMessageRequest) (models.SendMessageResponse, error)

	// EditMessage replaces the content of an existing message and returns
	// the reconciled tail of the thread.
	EditMessage(ctx context.Context, messageID string, req models.EditMessageRequest) (models.EditMessageResponse, error)

	// SaveEncrypted persists encrypted message copies in a batch. Callers
	// treat failures as non-fatal.
	SaveEncrypted(ctx context.Context, conversationID string, req models.EncryptedSaveRequest) error
}
