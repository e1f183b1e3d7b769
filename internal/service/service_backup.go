package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/evgkondr/bidpilot/internal/crypto"
	"github.com/evgkondr/bidpilot/internal/logger"
	"github.com/evgkondr/bidpilot/models"
)

type backupService struct {
	keyStore MasterKeyStore
	keyChain crypto.KeyChainService
}

func NewBackupService(keyStore MasterKeyStore, keyChain crypto.KeyChainService) BackupService {
	return &backupService{keyStore: keyStore, keyChain: keyChain}
}

func (b *backupService) Export(ctx context.Context, tenantID, passphrase string) (models.BackupArtifact, error) {
	masterKey, err := b.keyStore.GetOrCreate(ctx, tenantID)
	if err != nil {
		return models.BackupArtifact{}, err
	}

	salt, err := b.keyChain.GenerateBackupSalt()
	if err != nil {
		return models.BackupArtifact{}, fmt.Errorf("generate backup salt: %w", err)
	}

	wrappingKey := b.keyChain.DerivePassphraseKey(passphrase, salt)
	nonce, wrapped, err := b.keyChain.WrapKey(wrappingKey, masterKey)
	if err != nil {
		return models.BackupArtifact{}, fmt.Errorf("wrap master key: %w", err)
	}

	return models.BackupArtifact{
		Version:    models.BackupArtifactVersion,
		TenantID:   tenantID,
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		WrappedKey: base64.StdEncoding.EncodeToString(wrapped),
	}, nil
}

func (b *backupService) Import(ctx context.Context, artifact models.BackupArtifact, passphrase, currentTenantID string) error {
	log := logger.FromContext(ctx)

	salt, nonce, wrapped, err := decodeArtifactFields(artifact)
	if err != nil {
		// Damaged base64 is indistinguishable from a tampered file.
		return ErrBadPassphraseOrCorrupt
	}

	wrappingKey := b.keyChain.DerivePassphraseKey(passphrase, salt)
	masterKey, err := b.keyChain.UnwrapKey(wrappingKey, nonce, wrapped)
	if err != nil {
		return ErrBadPassphraseOrCorrupt
	}

	// Tenant check happens only after authentication so an attacker cannot
	// probe artifact ownership without the passphrase.
	if artifact.TenantID != "" && currentTenantID != "" && artifact.TenantID != currentTenantID {
		log.Warn().
			Str("func", "backupService.Import").
			Str("artifact_tenant", artifact.TenantID).
			Str("current_tenant", currentTenantID).
			Msg("backup import rejected: tenant mismatch")
		return ErrTenantMismatch
	}

	installTenant := currentTenantID
	if installTenant == "" {
		installTenant = artifact.TenantID
	}
	if installTenant == "" {
		return ErrKeyUnavailable
	}

	if err := b.keyStore.Replace(ctx, installTenant, masterKey); err != nil {
		return fmt.Errorf("install imported master key: %w", err)
	}

	log.Info().
		Str("func", "backupService.Import").
		Str("tenant_id", installTenant).
		Msg("master key imported from backup")
	return nil
}

func decodeArtifactFields(artifact models.BackupArtifact) (salt, nonce, wrapped []byte, err error) {
	if salt, err = base64.StdEncoding.DecodeString(artifact.Salt); err != nil {
		return nil, nil, nil, err
	}
	if nonce, err = base64.StdEncoding.DecodeString(artifact.Nonce); err != nil {
		return nil, nil, nil, err
	}
	if wrapped, err = base64.StdEncoding.DecodeString(artifact.WrappedKey); err != nil {
		return nil, nil, nil, err
	}
	return salt, nonce, wrapped, nil
}
