package service

import (
	"github.com/evgkondr/bidpilot/internal/adapter"
	"github.com/evgkondr/bidpilot/internal/crypto"
	"github.com/evgkondr/bidpilot/internal/logger"
	"github.com/evgkondr/bidpilot/internal/store"
)

type ClientServices struct {
	KeyStore            MasterKeyStore
	CryptoService       MessageCryptoService
	BackupService       BackupService
	ConversationService ConversationService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, log *logger.Logger) *ClientServices {
	keyChain := crypto.NewKeyChainService()
	keyStore := NewMasterKeyStore(storages.MasterKeyRepository, keyChain)
	cryptoSvc := NewMessageCryptoService(keyStore, keyChain)

	return &ClientServices{
		KeyStore:            keyStore,
		CryptoService:       cryptoSvc,
		BackupService:       NewBackupService(keyStore, keyChain),
		ConversationService: NewConversationService(serverAdapter, cryptoSvc, storages.MessageCacheRepository, log),
	}
}
