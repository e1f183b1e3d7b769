package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/evgkondr/bidpilot/internal/logger"
	"github.com/evgkondr/bidpilot/models"
)

type localMasterKeyRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalMasterKeyRepository(db *DB, logger *logger.Logger) MasterKeyRepository {
	return &localMasterKeyRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *localMasterKeyRepository) GetResident(ctx context.Context) (models.MasterKeyRecord, error) {
	log := logger.FromContext(ctx)

	var record models.MasterKeyRecord
	row := r.DB.QueryRowContext(ctx, getMasterKey)
	err := row.Scan(&record.TenantID, &record.Key, &record.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.MasterKeyRecord{}, ErrMasterKeyNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "masterKeyRepository.GetResident").
			Msg("failed to scan master key row")
		return models.MasterKeyRecord{}, fmt.Errorf("failed to scan master key row: %w", err)
	}

	return record, nil
}

func (r *localMasterKeyRepository) Save(ctx context.Context, record models.MasterKeyRecord) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, saveMasterKey, record.TenantID, record.Key, record.CreatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "masterKeyRepository.Save").
			Str("tenant_id", record.TenantID).
			Msg("failed to execute upsert for master key")
		return fmt.Errorf("failed to save master key: %w", err)
	}

	return nil
}

func (r *localMasterKeyRepository) Delete(ctx context.Context) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, deleteMasterKey)
	if err != nil {
		log.Err(err).
			Str("func", "masterKeyRepository.Delete").
			Msg("failed to delete master key")
		return fmt.Errorf("failed to delete master key: %w", err)
	}

	return nil
}
