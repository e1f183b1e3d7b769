package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/evgkondr/bidpilot/internal/crypto"
	"github.com/evgkondr/bidpilot/internal/logger"
	"github.com/evgkondr/bidpilot/internal/store"
	"github.com/evgkondr/bidpilot/models"
)

type masterKeyStore struct {
	repo     store.MasterKeyRepository
	keyChain crypto.KeyChainService

	// mu serializes Clear/Replace against GetOrCreate so a tenant switch
	// never races an in-flight key read.
	mu sync.Mutex
}

func NewMasterKeyStore(repo store.MasterKeyRepository, keyChain crypto.KeyChainService) MasterKeyStore {
	return &masterKeyStore{repo: repo, keyChain: keyChain}
}

func (s *masterKeyStore) GetOrCreate(ctx context.Context, tenantID string) ([]byte, error) {
	if tenantID == "" {
		return nil, ErrKeyUnavailable
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.FromContext(ctx)

	record, err := s.repo.GetResident(ctx)
	switch {
	case err == nil && record.TenantID == tenantID:
		return append([]byte(nil), record.Key...), nil

	case err == nil:
		// Tenant changed: the old key must not touch the new tenant's data.
		log.Info().
			Str("func", "masterKeyStore.GetOrCreate").
			Str("old_tenant", record.TenantID).
			Str("new_tenant", tenantID).
			Msg("tenant switch detected, discarding resident master key")
		if err := s.repo.Delete(ctx); err != nil {
			return nil, fmt.Errorf("discard master key on tenant switch: %w", err)
		}

	case !errors.Is(err, store.ErrMasterKeyNotFound):
		return nil, fmt.Errorf("load resident master key: %w", err)
	}

	key, err := s.keyChain.GenerateMasterKey()
	if err != nil {
		return nil, fmt.Errorf("generate master key: %w", err)
	}

	if err := s.repo.Save(ctx, models.MasterKeyRecord{
		TenantID:  tenantID,
		Key:       key,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return nil, fmt.Errorf("persist master key: %w", err)
	}

	log.Info().
		Str("func", "masterKeyStore.GetOrCreate").
		Str("tenant_id", tenantID).
		Msg("generated new master key")

	return append([]byte(nil), key...), nil
}

func (s *masterKeyStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(ctx); err != nil {
		return fmt.Errorf("clear master key: %w", err)
	}
	return nil
}

func (s *masterKeyStore) Replace(ctx context.Context, tenantID string, key []byte) error {
	if tenantID == "" {
		return ErrKeyUnavailable
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Save(ctx, models.MasterKeyRecord{
		TenantID:  tenantID,
		Key:       append([]byte(nil), key...),
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return fmt.Errorf("replace master key: %w", err)
	}
	return nil
}
