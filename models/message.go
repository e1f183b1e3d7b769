package models

import (
	"encoding/json"
	"time"
)

// Role identifies the author of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// MessageState tracks where a message sits in its lifecycle: created locally
// with a temporary id (pending), acknowledged by the server with a durable id
// (confirmed), and finally persisted as an encrypted copy (secured).
type MessageState string

const (
	StatePending   MessageState = "pending"
	StateConfirmed MessageState = "confirmed"
	StateSecured   MessageState = "secured"
)

// Message is a single entry in a conversation thread.
type Message struct {
	ID        string         `json:"id"`
	Role      Role           `json:"role"`
	Content   MessageContent `json:"content"`
	CreatedAt time.Time      `json:"created_at"`
	State     MessageState   `json:"state"`
}

// MessageContent is the tagged union of message bodies: plain text, or text
// accompanied by image thumbnails. Images == nil means plain text.
type MessageContent struct {
	Text   string      `json:"text"`
	Images []Thumbnail `json:"images,omitempty"`
}

// Thumbnail is a size-bounded image representation. Full-resolution images
// are never persisted encrypted, only these reduced copies.
type Thumbnail []byte

// TextContent builds a plain-text MessageContent.
func TextContent(text string) MessageContent {
	return MessageContent{Text: text}
}

// HasImages reports whether the content carries thumbnails.
func (c MessageContent) HasImages() bool {
	return len(c.Images) > 0
}

// contentEnvelope is the canonical serialized form of MessageContent.
// The type tag distinguishes the two union arms on the wire.
type contentEnvelope struct {
	Type   string      `json:"type"`
	Text   string      `json:"text"`
	Images []Thumbnail `json:"images,omitempty"`
}

const (
	contentTypeText       = "text"
	contentTypeTextImages = "text_images"
)

// EncodeMessageContent serializes content to its canonical byte form, the
// plaintext that goes into the cipher.
func EncodeMessageContent(c MessageContent) ([]byte, error) {
	env := contentEnvelope{Type: contentTypeText, Text: c.Text}
	if c.HasImages() {
		env.Type = contentTypeTextImages
		env.Images = c.Images
	}
	return json.Marshal(env)
}

// DecodeMessageContent parses the canonical byte form back into the tagged
// union. Anything that does not parse as a known envelope is treated as plain
// text rather than an error; legacy rows stored bare strings.
func DecodeMessageContent(data []byte) MessageContent {
	var env contentEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return MessageContent{Text: string(data)}
	}
	switch env.Type {
	case contentTypeText:
		return MessageContent{Text: env.Text}
	case contentTypeTextImages:
		return MessageContent{Text: env.Text, Images: env.Images}
	default:
		return MessageContent{Text: string(data)}
	}
}
