package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgkondr/bidpilot/internal/crypto"
)

func newKeyChain(t *testing.T) (crypto.KeyChainService, []byte) {
	t.Helper()
	svc := crypto.NewKeyChainService()
	mk, err := svc.GenerateMasterKey()
	require.NoError(t, err)
	require.Len(t, mk, 32)
	return svc, mk
}

// --- DeriveConversationKey ---

func TestKeyChain_DeriveConversationKey_Deterministic(t *testing.T) {
	svc, mk := newKeyChain(t)

	k1, err := svc.DeriveConversationKey(mk, crypto.SaltLabelV1, "tenant-1", "conv-1")
	require.NoError(t, err)
	k2, err := svc.DeriveConversationKey(mk, crypto.SaltLabelV1, "tenant-1", "conv-1")
	require.NoError(t, err)

	assert.Equal(t, k1, k2)
	assert.Len(t, k1, 32)
}

func TestKeyChain_DeriveConversationKey_DistinctContexts(t *testing.T) {
	svc, mk := newKeyChain(t)

	base, err := svc.DeriveConversationKey(mk, crypto.SaltLabelV1, "tenant-1", "conv-1")
	require.NoError(t, err)

	tests := []struct {
		name     string
		label    string
		tenantID string
		convID   string
	}{
		{name: "other conversation", label: crypto.SaltLabelV1, tenantID: "tenant-1", convID: "conv-2"},
		{name: "other tenant", label: crypto.SaltLabelV1, tenantID: "tenant-2", convID: "conv-1"},
		{name: "other salt label", label: "mk_salt_v2", tenantID: "tenant-1", convID: "conv-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := svc.DeriveConversationKey(mk, tt.label, tt.tenantID, tt.convID)
			require.NoError(t, err)
			assert.NotEqual(t, base, k)
		})
	}
}

func TestKeyChain_DeriveConversationKey_RejectsShortMasterKey(t *testing.T) {
	svc, _ := newKeyChain(t)

	_, err := svc.DeriveConversationKey([]byte("short"), crypto.SaltLabelV1, "t", "c")
	require.ErrorIs(t, err, crypto.ErrInvalidKeyLength)
}

// --- EncryptContent / DecryptContent ---

func TestKeyChain_EncryptDecrypt_RoundTrip(t *testing.T) {
	svc, mk := newKeyChain(t)

	key, err := svc.DeriveConversationKey(mk, crypto.SaltLabelV1, "tenant-1", "conv-1")
	require.NoError(t, err)

	plaintext := []byte(`{"type":"text","text":"draft proposal for the client"}`)
	payload, err := svc.EncryptContent(key, plaintext)
	require.NoError(t, err)

	assert.Len(t, payload.Nonce, 12)
	assert.Equal(t, crypto.SaltLabelV1, payload.SaltLabel)
	assert.NotEqual(t, plaintext, payload.Ciphertext)

	got, err := svc.DecryptContent(key, payload)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestKeyChain_EncryptContent_FreshNonce(t *testing.T) {
	svc, mk := newKeyChain(t)

	key, err := svc.DeriveConversationKey(mk, crypto.SaltLabelV1, "tenant-1", "conv-1")
	require.NoError(t, err)

	p1, err := svc.EncryptContent(key, []byte("same plaintext"))
	require.NoError(t, err)
	p2, err := svc.EncryptContent(key, []byte("same plaintext"))
	require.NoError(t, err)

	// Nonce reuse under one key would break GCM entirely.
	assert.NotEqual(t, p1.Nonce, p2.Nonce)
	assert.NotEqual(t, p1.Ciphertext, p2.Ciphertext)
}

func TestKeyChain_DecryptContent_WrongMasterKey(t *testing.T) {
	svc, mk := newKeyChain(t)
	otherMK, err := svc.GenerateMasterKey()
	require.NoError(t, err)

	key, err := svc.DeriveConversationKey(mk, crypto.SaltLabelV1, "tenant-1", "conv-1")
	require.NoError(t, err)
	otherKey, err := svc.DeriveConversationKey(otherMK, crypto.SaltLabelV1, "tenant-1", "conv-1")
	require.NoError(t, err)

	payload, err := svc.EncryptContent(otherKey, []byte("secret"))
	require.NoError(t, err)

	_, err = svc.DecryptContent(key, payload)
	require.ErrorIs(t, err, crypto.ErrDecryptFailed)
}

func TestKeyChain_DecryptContent_Tampered(t *testing.T) {
	svc, mk := newKeyChain(t)

	key, err := svc.DeriveConversationKey(mk, crypto.SaltLabelV1, "tenant-1", "conv-1")
	require.NoError(t, err)

	payload, err := svc.EncryptContent(key, []byte("secret"))
	require.NoError(t, err)

	payload.Ciphertext[0] ^= 0xff
	_, err = svc.DecryptContent(key, payload)
	require.ErrorIs(t, err, crypto.ErrDecryptFailed)
}

func TestKeyChain_DecryptContent_NonceMismatch(t *testing.T) {
	svc, mk := newKeyChain(t)

	key, err := svc.DeriveConversationKey(mk, crypto.SaltLabelV1, "tenant-1", "conv-1")
	require.NoError(t, err)

	p1, err := svc.EncryptContent(key, []byte("first"))
	require.NoError(t, err)
	p2, err := svc.EncryptContent(key, []byte("second"))
	require.NoError(t, err)

	p1.Nonce = p2.Nonce
	_, err = svc.DecryptContent(key, p1)
	require.ErrorIs(t, err, crypto.ErrDecryptFailed)
}

// --- WrapKey / UnwrapKey ---

func TestKeyChain_WrapUnwrap_RoundTrip(t *testing.T) {
	svc, mk := newKeyChain(t)

	salt, err := svc.GenerateBackupSalt()
	require.NoError(t, err)
	require.Len(t, salt, 16)

	wk := svc.DerivePassphraseKey("correct horse battery staple", salt)
	require.Len(t, wk, 32)

	nonce, wrapped, err := svc.WrapKey(wk, mk)
	require.NoError(t, err)

	got, err := svc.UnwrapKey(wk, nonce, wrapped)
	require.NoError(t, err)
	assert.Equal(t, mk, got)
}

func TestKeyChain_UnwrapKey_WrongPassphrase(t *testing.T) {
	svc, mk := newKeyChain(t)

	salt, err := svc.GenerateBackupSalt()
	require.NoError(t, err)

	wk := svc.DerivePassphraseKey("right passphrase", salt)
	nonce, wrapped, err := svc.WrapKey(wk, mk)
	require.NoError(t, err)

	wrongWK := svc.DerivePassphraseKey("wrong passphrase", salt)
	_, err = svc.UnwrapKey(wrongWK, nonce, wrapped)
	require.ErrorIs(t, err, crypto.ErrDecryptFailed)
}

func TestKeyChain_DerivePassphraseKey_SaltMatters(t *testing.T) {
	svc, _ := newKeyChain(t)

	s1, err := svc.GenerateBackupSalt()
	require.NoError(t, err)
	s2, err := svc.GenerateBackupSalt()
	require.NoError(t, err)

	assert.NotEqual(t, svc.DerivePassphraseKey("pass", s1), svc.DerivePassphraseKey("pass", s2))
}
