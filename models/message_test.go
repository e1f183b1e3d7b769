package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeMessageContent_TextOnly(t *testing.T) {
	data, err := EncodeMessageContent(TextContent("plain question"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"text","text":"plain question"}`, string(data))
}

func TestEncodeMessageContent_WithImages(t *testing.T) {
	content := MessageContent{
		Text:   "see attached",
		Images: []Thumbnail{{0x01, 0x02}},
	}

	data, err := EncodeMessageContent(content)
	require.NoError(t, err)

	got := DecodeMessageContent(data)
	assert.Equal(t, content, got)
	assert.True(t, got.HasImages())
}

func TestDecodeMessageContent_UnknownType(t *testing.T) {
	got := DecodeMessageContent([]byte(`{"type":"video","text":"x"}`))
	// Unknown envelopes degrade to the raw bytes as plain text.
	assert.Equal(t, `{"type":"video","text":"x"}`, got.Text)
	assert.False(t, got.HasImages())
}

func TestDecodeMessageContent_NotJSON(t *testing.T) {
	got := DecodeMessageContent([]byte("a bare legacy string"))
	assert.Equal(t, "a bare legacy string", got.Text)
	assert.Nil(t, got.Images)
}

func TestDecodeMessageContent_RoundTrip(t *testing.T) {
	original := MessageContent{Text: "quoted \"text\" with unicode: привет"}

	data, err := EncodeMessageContent(original)
	require.NoError(t, err)
	assert.Equal(t, original, DecodeMessageContent(data))
}
