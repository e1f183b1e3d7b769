package service

import (
	"context"
	"fmt"

	"github.com/evgkondr/bidpilot/internal/crypto"
	"github.com/evgkondr/bidpilot/models"
)

type messageCryptoService struct {
	keyStore MasterKeyStore
	keyChain crypto.KeyChainService
}

func NewMessageCryptoService(keyStore MasterKeyStore, keyChain crypto.KeyChainService) MessageCryptoService {
	return &messageCryptoService{keyStore: keyStore, keyChain: keyChain}
}

func (c *messageCryptoService) EncryptMessage(ctx context.Context, tenantID, conversationID string, content models.MessageContent) (models.EncryptedPayload, error) {
	key, err := c.conversationKey(ctx, tenantID, conversationID, crypto.SaltLabelV1)
	if err != nil {
		return models.EncryptedPayload{}, err
	}

	plaintext, err := models.EncodeMessageContent(content)
	if err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("encode content: %w", err)
	}

	payload, err := c.keyChain.EncryptContent(key, plaintext)
	if err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("encrypt content: %w", err)
	}
	return payload, nil
}

func (c *messageCryptoService) DecryptMessage(ctx context.Context, tenantID, conversationID string, payload models.EncryptedPayload) (models.MessageContent, error) {
	// Derive under the label the payload was produced with, so rows written
	// before a label bump stay readable.
	label := payload.SaltLabel
	if label == "" {
		label = crypto.SaltLabelV1
	}

	key, err := c.conversationKey(ctx, tenantID, conversationID, label)
	if err != nil {
		return models.MessageContent{}, err
	}

	plaintext, err := c.keyChain.DecryptContent(key, payload)
	if err != nil {
		return models.MessageContent{}, fmt.Errorf("decrypt content: %w", err)
	}

	return models.DecodeMessageContent(plaintext), nil
}

func (c *messageCryptoService) conversationKey(ctx context.Context, tenantID, conversationID, saltLabel string) ([]byte, error) {
	masterKey, err := c.keyStore.GetOrCreate(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	key, err := c.keyChain.DeriveConversationKey(masterKey, saltLabel, tenantID, conversationID)
	if err != nil {
		return nil, fmt.Errorf("derive conversation key: %w", err)
	}
	return key, nil
}
