package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"

	"github.com/evgkondr/bidpilot/models"
)

const (
	// SaltLabelV1 versions the conversation-key derivation. Changing it is a
	// breaking change: ciphertexts produced under the old label can only be
	// opened by deriving with that old label, which every payload records.
	SaltLabelV1 = "mk_salt_v1"

	masterKeyLen  = 32
	backupSaltLen = 16
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// Argon2id tuning parameters for passphrase-based key wrapping. Stored
	// in the struct so they can be adjusted per deployment target.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyChainService constructs a [KeyChainService] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
//
// These constants are part of the backup artifact format (version 1) and
// must not change without bumping [models.BackupArtifactVersion].
func NewKeyChainService() KeyChainService {
	return &keyChainService{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// GenerateMasterKey implements [KeyChainService]. It reads 32 random bytes
// from the OS CSPRNG. Returns an error if the random read fails.
func (k *keyChainService) GenerateMasterKey() ([]byte, error) {
	key := make([]byte, masterKeyLen)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// GenerateBackupSalt implements [KeyChainService]. It reads 16 random bytes
// from the OS CSPRNG and returns them as the passphrase-derivation salt.
func (k *keyChainService) GenerateBackupSalt() ([]byte, error) {
	salt := make([]byte, backupSaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveConversationKey implements [KeyChainService]. It runs HKDF-SHA256
// with the master key as the secret, saltLabel as the extract salt, and
// "tenant:<id>|conversation:<id>" as the expand info. The master key itself
// is never used directly as a cipher key.
func (k *keyChainService) DeriveConversationKey(masterKey []byte, saltLabel, tenantID, conversationID string) ([]byte, error) {
	if len(masterKey) != masterKeyLen {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKeyLength, len(masterKey))
	}

	info := fmt.Sprintf("tenant:%s|conversation:%s", tenantID, conversationID)
	r := hkdf.New(sha256.New, masterKey, []byte(saltLabel), []byte(info))

	key := make([]byte, masterKeyLen)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("hkdf expand: %w", err)
	}
	return key, nil
}

// EncryptContent implements [KeyChainService]. It seals plaintext with
// AES-256-GCM under a fresh random nonce. Nonce and ciphertext are kept as
// separate payload fields; the server stores them in separate columns.
func (k *keyChainService) EncryptContent(key, plaintext []byte) (models.EncryptedPayload, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return models.EncryptedPayload{}, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("generate nonce: %w", err)
	}

	return models.EncryptedPayload{
		Ciphertext: gcm.Seal(nil, nonce, plaintext, nil),
		Nonce:      nonce,
		SaltLabel:  SaltLabelV1,
	}, nil
}

// DecryptContent implements [KeyChainService]. It opens a payload produced by
// [keyChainService.EncryptContent] and verifies the authentication tag. Any
// tag mismatch (wrong key, corrupted ciphertext, swapped nonce) comes back as
// [ErrDecryptFailed] so callers can fall back instead of aborting.
func (k *keyChainService) DecryptContent(key []byte, payload models.EncryptedPayload) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	if len(payload.Nonce) != gcm.NonceSize() {
		return nil, ErrDecryptFailed
	}

	plaintext, err := gcm.Open(nil, payload.Nonce, payload.Ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptFailed
	}
	return plaintext, nil
}

// DerivePassphraseKey implements [KeyChainService]. It derives a 256-bit
// wrapping key from passphrase and salt using Argon2id with the parameters
// stored in the receiver. The result exists only in client memory.
func (k *keyChainService) DerivePassphraseKey(passphrase string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(passphrase),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

// WrapKey implements [KeyChainService]. It seals the raw master key under
// wrappingKey with AES-256-GCM and a fresh random nonce. Nonce and
// ciphertext are returned separately because the backup artifact stores them
// in separate fields.
func (k *keyChainService) WrapKey(wrappingKey, masterKey []byte) ([]byte, []byte, error) {
	gcm, err := newGCM(wrappingKey)
	if err != nil {
		return nil, nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, nil, fmt.Errorf("generate nonce: %w", err)
	}

	return nonce, gcm.Seal(nil, nonce, masterKey, nil), nil
}

// UnwrapKey implements [KeyChainService]. It reverses
// [keyChainService.WrapKey]. An error here almost always means the user
// entered the wrong passphrase, producing a wrong wrapping key.
func (k *keyChainService) UnwrapKey(wrappingKey, nonce, wrapped []byte) ([]byte, error) {
	gcm, err := newGCM(wrappingKey)
	if err != nil {
		return nil, err
	}

	if len(nonce) != gcm.NonceSize() {
		return nil, ErrDecryptFailed
	}

	masterKey, err := gcm.Open(nil, nonce, wrapped, nil)
	if err != nil {
		return nil, ErrDecryptFailed
	}
	return masterKey, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != masterKeyLen {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKeyLength, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
