package models

import "time"

// MessageRow is one message as returned by the server. Exactly one of
// Content / ContentEnc is normally set; legacy rows persisted before
// encryption was introduced may carry neither.
type MessageRow struct {
	ID           string    `json:"id"`
	Role         Role      `json:"role"`
	Content      *string   `json:"content"`
	ContentEnc   *string   `json:"content_enc"`
	ContentNonce *string   `json:"content_nonce"`
	ContentSalt  *string   `json:"content_salt"`
	CreatedAt    time.Time `json:"created_at"`
}

// HistoryResponse is the full message list for one conversation.
type HistoryResponse struct {
	ConversationID string       `json:"conversationId"`
	Messages       []MessageRow `json:"messages"`
}

// StartResponse acknowledges conversation creation.
type StartResponse struct {
	ConversationID string `json:"conversationId"`
}

// SendMessageRequest carries a new user message. Images are base64-encoded
// by the JSON layer.
type SendMessageRequest struct {
	Content string      `json:"content"`
	Images  []Thumbnail `json:"images,omitempty"`
}

// SendMessageResponse returns the confirmed user message and the assistant
// reply, if any.
type SendMessageResponse struct {
	Messages []MessageRow `json:"messages"`
}

// EditMessageRequest carries the replacement content for an existing message.
type EditMessageRequest struct {
	Content string `json:"content"`
}

// EditMessageResponse returns the reconciled tail of the thread after an
// edit.
type EditMessageResponse struct {
	ConversationID string       `json:"conversationId"`
	Messages       []MessageRow `json:"messages"`
}

// EncryptedItem is one encrypted message copy in a batch save.
type EncryptedItem struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	Role           Role      `json:"role"`
	ContentEnc     string    `json:"content_enc"`
	ContentNonce   string    `json:"content_nonce"`
	ContentSalt    string    `json:"content_salt"`
	CreatedAt      time.Time `json:"created_at"`
}

// EncryptedSaveRequest is the best-effort batch persistence call for
// encrypted message copies.
type EncryptedSaveRequest struct {
	Items []EncryptedItem `json:"items"`
}
