package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/evgkondr/bidpilot/internal/mock"
	"github.com/evgkondr/bidpilot/internal/store"
	"github.com/evgkondr/bidpilot/models"
)

func newTestKeyStore(t *testing.T, ctrl *gomock.Controller) (*masterKeyStore, *mock.MockMasterKeyRepository, *mock.MockKeyChainService) {
	t.Helper()
	mockRepo := mock.NewMockMasterKeyRepository(ctrl)
	mockKeyChain := mock.NewMockKeyChainService(ctrl)
	svc := NewMasterKeyStore(mockRepo, mockKeyChain).(*masterKeyStore)
	return svc, mockRepo, mockKeyChain
}

func TestMasterKeyStore_GetOrCreate_EmptyTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestKeyStore(t, ctrl)

	_, err := svc.GetOrCreate(context.Background(), "")
	require.ErrorIs(t, err, ErrKeyUnavailable)
}

func TestMasterKeyStore_GetOrCreate_ReturnsResidentKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestKeyStore(t, ctrl)
	ctx := context.Background()

	resident := make([]byte, 32)
	resident[0] = 0xAB
	mockRepo.EXPECT().GetResident(ctx).Return(models.MasterKeyRecord{
		TenantID: "tenant-1",
		Key:      resident,
	}, nil)

	key, err := svc.GetOrCreate(ctx, "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, resident, key)

	// The caller gets a copy, not the stored slice.
	key[0] = 0x00
	assert.Equal(t, byte(0xAB), resident[0])
}

func TestMasterKeyStore_GetOrCreate_GeneratesWhenMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockKeyChain := newTestKeyStore(t, ctrl)
	ctx := context.Background()

	fresh := make([]byte, 32)
	fresh[5] = 0x42

	gomock.InOrder(
		mockRepo.EXPECT().GetResident(ctx).Return(models.MasterKeyRecord{}, store.ErrMasterKeyNotFound),
		mockKeyChain.EXPECT().GenerateMasterKey().Return(fresh, nil),
		mockRepo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, record models.MasterKeyRecord) error {
				assert.Equal(t, "tenant-1", record.TenantID)
				assert.Equal(t, fresh, record.Key)
				assert.False(t, record.CreatedAt.IsZero())
				return nil
			},
		),
	)

	key, err := svc.GetOrCreate(ctx, "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, fresh, key)
}

func TestMasterKeyStore_GetOrCreate_TenantSwitchDiscardsOldKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockKeyChain := newTestKeyStore(t, ctrl)
	ctx := context.Background()

	oldKey := make([]byte, 32)
	oldKey[0] = 0x01
	newKey := make([]byte, 32)
	newKey[0] = 0x02

	gomock.InOrder(
		mockRepo.EXPECT().GetResident(ctx).Return(models.MasterKeyRecord{
			TenantID: "tenant-old",
			Key:      oldKey,
		}, nil),
		mockRepo.EXPECT().Delete(ctx).Return(nil),
		mockKeyChain.EXPECT().GenerateMasterKey().Return(newKey, nil),
		mockRepo.EXPECT().Save(ctx, gomock.Any()).Return(nil),
	)

	key, err := svc.GetOrCreate(ctx, "tenant-new")
	require.NoError(t, err)
	assert.Equal(t, newKey, key)
	assert.NotEqual(t, oldKey, key)
}

func TestMasterKeyStore_GetOrCreate_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestKeyStore(t, ctrl)
	ctx := context.Background()

	dbErr := errors.New("database is locked")
	mockRepo.EXPECT().GetResident(ctx).Return(models.MasterKeyRecord{}, dbErr)

	_, err := svc.GetOrCreate(ctx, "tenant-1")
	require.ErrorIs(t, err, dbErr)
}

func TestMasterKeyStore_Clear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestKeyStore(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().Delete(ctx).Return(nil)
	require.NoError(t, svc.Clear(ctx))
}

func TestMasterKeyStore_Replace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestKeyStore(t, ctrl)
	ctx := context.Background()

	imported := make([]byte, 32)
	imported[7] = 0x77

	mockRepo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, record models.MasterKeyRecord) error {
			assert.Equal(t, "tenant-1", record.TenantID)
			assert.Equal(t, imported, record.Key)
			return nil
		},
	)

	require.NoError(t, svc.Replace(ctx, "tenant-1", imported))
}

func TestMasterKeyStore_Replace_EmptyTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestKeyStore(t, ctrl)

	err := svc.Replace(context.Background(), "", make([]byte, 32))
	require.ErrorIs(t, err, ErrKeyUnavailable)
}
