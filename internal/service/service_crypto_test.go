package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/evgkondr/bidpilot/internal/crypto"
	"github.com/evgkondr/bidpilot/internal/mock"
	"github.com/evgkondr/bidpilot/models"
)

// Crypto service tests run against the real key chain; only the key store is
// mocked, so derivation and sealing behave exactly as in production.
func newTestCryptoSvc(t *testing.T, ctrl *gomock.Controller) (MessageCryptoService, *mock.MockMasterKeyStore) {
	t.Helper()
	mockKeyStore := mock.NewMockMasterKeyStore(ctrl)
	svc := NewMessageCryptoService(mockKeyStore, crypto.NewKeyChainService())
	return svc, mockKeyStore
}

func testMasterKey() []byte {
	return bytes.Repeat([]byte{0x4D}, 32)
}

func TestMessageCryptoService_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockKeyStore := newTestCryptoSvc(t, ctrl)
	ctx := context.Background()

	mockKeyStore.EXPECT().GetOrCreate(ctx, "tenant-1").Return(testMasterKey(), nil).Times(2)

	content := models.MessageContent{
		Text:   "revised proposal draft",
		Images: []models.Thumbnail{{0x89, 0x50, 0x4E, 0x47}},
	}

	payload, err := svc.EncryptMessage(ctx, "tenant-1", "conv-1", content)
	require.NoError(t, err)
	assert.Equal(t, crypto.SaltLabelV1, payload.SaltLabel)
	assert.Len(t, payload.Nonce, 12)
	assert.NotEmpty(t, payload.Ciphertext)

	got, err := svc.DecryptMessage(ctx, "tenant-1", "conv-1", payload)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestMessageCryptoService_DecryptWrongConversation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockKeyStore := newTestCryptoSvc(t, ctrl)
	ctx := context.Background()

	mockKeyStore.EXPECT().GetOrCreate(ctx, "tenant-1").Return(testMasterKey(), nil).Times(2)

	payload, err := svc.EncryptMessage(ctx, "tenant-1", "conv-1", models.TextContent("secret"))
	require.NoError(t, err)

	// A different conversation derives a different key.
	_, err = svc.DecryptMessage(ctx, "tenant-1", "conv-2", payload)
	require.ErrorIs(t, err, crypto.ErrDecryptFailed)
}

func TestMessageCryptoService_DecryptDefaultsSaltLabel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockKeyStore := newTestCryptoSvc(t, ctrl)
	ctx := context.Background()

	mockKeyStore.EXPECT().GetOrCreate(ctx, "tenant-1").Return(testMasterKey(), nil).Times(2)

	payload, err := svc.EncryptMessage(ctx, "tenant-1", "conv-1", models.TextContent("old row"))
	require.NoError(t, err)

	// Rows written before the label was stored carry no salt label; decryption
	// falls back to the v1 derivation.
	payload.SaltLabel = ""
	got, err := svc.DecryptMessage(ctx, "tenant-1", "conv-1", payload)
	require.NoError(t, err)
	assert.Equal(t, "old row", got.Text)
}

func TestMessageCryptoService_KeyStoreErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockKeyStore := newTestCryptoSvc(t, ctrl)
	ctx := context.Background()

	mockKeyStore.EXPECT().GetOrCreate(ctx, "").Return(nil, ErrKeyUnavailable)

	_, err := svc.EncryptMessage(ctx, "", "conv-1", models.TextContent("x"))
	require.ErrorIs(t, err, ErrKeyUnavailable)
}
