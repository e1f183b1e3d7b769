package models

// EncryptedPayload is the AEAD output for one message body: opaque bytes plus
// the randomness that produced them. The nonce is generated fresh for every
// encryption; the salt label records which derivation version produced the
// conversation key.
type EncryptedPayload struct {
	Ciphertext []byte `json:"ciphertext"`
	Nonce      []byte `json:"nonce"`
	SaltLabel  string `json:"salt_label"`
}

// BackupArtifact is the portable, passphrase-protected encoding of a master
// key. TenantID is stored in the clear: it is not a secret, it is the
// cross-tenant safety check performed on import. Binary fields are base64 for
// portability.
type BackupArtifact struct {
	Version    int    `json:"version"`
	TenantID   string `json:"tenantId"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	WrappedKey string `json:"wrappedKey"`
}

// BackupArtifactVersion is the current artifact format version. Bumping it is
// a breaking change for previously exported files.
const BackupArtifactVersion = 1
