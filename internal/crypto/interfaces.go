package crypto

import "github.com/evgkondr/bidpilot/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns all client-side cryptography for conversation
// protection. It knows nothing about the network, the local database, or
// threads; its only job is to generate, derive, and apply keys.
//
// Scheme:
//
//	MK   = GenerateMasterKey()                              (once per tenant)
//	CK   = DeriveConversationKey(MK, label, tenant, conv)   (per conversation)
//	Blob = EncryptContent(CK, plaintext)                    (per message)
//	WK   = DerivePassphraseKey(pass, salt)                  (backup only)
type KeyChainService interface {
	// GenerateMasterKey returns 32 fresh random bytes from the OS CSPRNG.
	GenerateMasterKey() ([]byte, error)

	// GenerateBackupSalt returns the random 16-byte salt used for
	// passphrase-based key derivation. The salt is not a secret; it is
	// stored in the clear inside the backup artifact.
	GenerateBackupSalt() ([]byte, error)

	// DeriveConversationKey derives a 256-bit per-conversation key from the
	// master key via HKDF-SHA256. saltLabel versions the derivation; tenant
	// and conversation ids form the context info. Deterministic: the same
	// inputs always yield the same key.
	DeriveConversationKey(masterKey []byte, saltLabel, tenantID, conversationID string) ([]byte, error)

	// EncryptContent seals plaintext under key with AES-256-GCM and a fresh
	// random 96-bit nonce. The returned payload records the nonce and the
	// salt label the key was derived under.
	EncryptContent(key, plaintext []byte) (models.EncryptedPayload, error)

	// DecryptContent opens a payload produced by EncryptContent. A wrong
	// key, corrupted ciphertext, or mismatched nonce yields ErrDecryptFailed.
	DecryptContent(key []byte, payload models.EncryptedPayload) ([]byte, error)

	// DerivePassphraseKey derives a 256-bit wrapping key from a human
	// passphrase and salt using Argon2id.
	DerivePassphraseKey(passphrase string, salt []byte) []byte

	// WrapKey seals the raw master key under the passphrase-derived wrapping
	// key. Returns the nonce and the ciphertext separately, matching the
	// backup artifact layout.
	WrapKey(wrappingKey, masterKey []byte) (nonce, wrapped []byte, err error)

	// UnwrapKey reverses WrapKey. A wrong passphrase or corrupted artifact
	// yields ErrDecryptFailed.
	UnwrapKey(wrappingKey, nonce, wrapped []byte) ([]byte, error)
}
