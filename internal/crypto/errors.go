package crypto

import "errors"

var (
	ErrDecryptFailed    = errors.New("decryption failed")
	ErrInvalidKeyLength = errors.New("invalid key length")
)
