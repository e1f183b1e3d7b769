package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/evgkondr/bidpilot/internal/adapter"
	"github.com/evgkondr/bidpilot/internal/logger"
	"github.com/evgkondr/bidpilot/internal/store"
	"github.com/evgkondr/bidpilot/models"
)

// maxThumbnailBytes bounds what an image may occupy in the encrypted copy.
// Larger blobs are full-resolution captures and are dropped before
// persistence; the live session keeps them in memory only.
const maxThumbnailBytes = 64 * 1024

type threadPhase int

const (
	phaseIdle threadPhase = iota
	phaseSending
	phaseEditing
)

// threadState is the local timeline of one open conversation. All fields are
// guarded by conversationService.mu; network and crypto calls happen outside
// the lock, and generation decides whether their results still apply.
type threadState struct {
	messages   []models.Message
	phase      threadPhase
	editingID  string
	generation uint64
}

type conversationService struct {
	adapter adapter.ServerAdapter
	crypto  MessageCryptoService
	cache   store.MessageCacheRepository
	logger  *logger.Logger

	mu         sync.Mutex
	threads    map[string]*threadState
	genCounter uint64

	persistWG sync.WaitGroup
}

func NewConversationService(serverAdapter adapter.ServerAdapter, crypto MessageCryptoService, cache store.MessageCacheRepository, log *logger.Logger) ConversationService {
	return &conversationService{
		adapter: serverAdapter,
		crypto:  crypto,
		cache:   cache,
		logger:  log,
		threads: make(map[string]*threadState),
	}
}

func (c *conversationService) Open(ctx context.Context, conversationID string) ([]models.Message, error) {
	c.mu.Lock()
	c.genCounter++
	gen := c.genCounter
	c.threads[conversationID] = &threadState{generation: gen}
	c.mu.Unlock()

	history, err := c.adapter.History(ctx, conversationID)
	if errors.Is(err, adapter.ErrNotFound) {
		if _, err := c.adapter.Start(ctx, conversationID); err != nil {
			return nil, fmt.Errorf("start conversation: %w", err)
		}
		history = models.HistoryResponse{ConversationID: conversationID}
	} else if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	resolved := c.resolveRows(ctx, conversationID, history.Messages, c.conversationCacheLookup(ctx, conversationID))

	c.mu.Lock()
	t, ok := c.currentLocked(conversationID, gen)
	if !ok {
		c.mu.Unlock()
		return nil, ErrThreadNotOpen
	}
	t.messages = resolved
	snapshot := snapshotMessages(t.messages)
	c.mu.Unlock()

	c.refreshCache(ctx, conversationID, resolved)
	return snapshot, nil
}

func (c *conversationService) Messages(conversationID string) ([]models.Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	t, ok := c.threads[conversationID]
	if !ok {
		return nil, ErrThreadNotOpen
	}
	return snapshotMessages(t.messages), nil
}

func (c *conversationService) Send(ctx context.Context, conversationID string, content models.MessageContent) ([]models.Message, error) {
	pending := models.Message{
		ID:        "pending-" + uuid.NewString(),
		Role:      models.RoleUser,
		Content:   content,
		CreatedAt: time.Now().UTC(),
		State:     models.StatePending,
	}

	c.mu.Lock()
	t, ok := c.threads[conversationID]
	if !ok {
		c.mu.Unlock()
		return nil, ErrThreadNotOpen
	}
	if t.phase != phaseIdle {
		c.mu.Unlock()
		return nil, ErrThreadBusy
	}
	t.messages = append(t.messages, pending)
	t.phase = phaseSending
	gen := t.generation
	c.mu.Unlock()

	resp, err := c.adapter.SendMessage(ctx, conversationID, models.SendMessageRequest{
		Content: content.Text,
		Images:  content.Images,
	})
	if err != nil {
		// Full revert: no partial state survives a failed send.
		c.mu.Lock()
		if t, ok := c.currentLocked(conversationID, gen); ok {
			t.phase = phaseIdle
			t.messages = removeMessage(t.messages, pending.ID)
		}
		c.mu.Unlock()
		return nil, fmt.Errorf("send message: %w", err)
	}

	confirmed := c.resolveRows(ctx, conversationID, resp.Messages, c.singleCacheLookup(ctx))

	c.mu.Lock()
	t, ok = c.currentLocked(conversationID, gen)
	if !ok {
		c.mu.Unlock()
		return nil, ErrThreadNotOpen
	}
	t.phase = phaseIdle
	t.messages = removeMessage(t.messages, pending.ID)
	t.messages = append(t.messages, confirmed...)
	sortByCreatedAt(t.messages)
	snapshot := snapshotMessages(t.messages)
	c.mu.Unlock()

	c.refreshCache(ctx, conversationID, confirmed)
	c.persistEncryptedAsync(ctx, conversationID, gen, confirmed)

	return snapshot, nil
}

func (c *conversationService) Edit(ctx context.Context, conversationID, messageID string, content models.MessageContent) ([]models.Message, error) {
	c.mu.Lock()
	t, ok := c.threads[conversationID]
	if !ok {
		c.mu.Unlock()
		return nil, ErrThreadNotOpen
	}
	switch t.phase {
	case phaseEditing:
		c.mu.Unlock()
		return nil, ErrEditInProgress
	case phaseSending:
		c.mu.Unlock()
		return nil, ErrThreadBusy
	}

	idx := indexOfMessage(t.messages, messageID)
	if idx < 0 {
		c.mu.Unlock()
		return nil, ErrMessageNotFound
	}

	// Optimistic rewrite plus truncation: editing invalidates the branch of
	// the conversation that followed the original content.
	t.messages[idx].Content = content
	t.messages[idx].State = models.StatePending
	t.messages = t.messages[:idx+1]
	t.phase = phaseEditing
	t.editingID = messageID
	gen := t.generation
	c.mu.Unlock()

	resp, err := c.adapter.EditMessage(ctx, messageID, models.EditMessageRequest{Content: content.Text})
	if err != nil {
		// Edit mode is exited; the optimistic truncation stays visible until
		// the next successful fetch re-establishes ground truth.
		c.mu.Lock()
		if t, ok := c.currentLocked(conversationID, gen); ok {
			t.phase = phaseIdle
			t.editingID = ""
		}
		c.mu.Unlock()
		return nil, fmt.Errorf("edit message: %w", err)
	}

	resolved := c.resolveRows(ctx, conversationID, resp.Messages, c.singleCacheLookup(ctx))

	c.mu.Lock()
	t, ok = c.currentLocked(conversationID, gen)
	if !ok {
		c.mu.Unlock()
		return nil, ErrThreadNotOpen
	}
	t.phase = phaseIdle
	t.editingID = ""
	t.messages = resolved
	snapshot := snapshotMessages(t.messages)
	c.mu.Unlock()

	c.refreshCache(ctx, conversationID, resolved)

	// Re-encrypt the edited user message and the fresh assistant reply.
	tail := resolved
	if len(tail) > 2 {
		tail = tail[len(tail)-2:]
	}
	c.persistEncryptedAsync(ctx, conversationID, gen, tail)

	return snapshot, nil
}

func (c *conversationService) Close(conversationID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.threads, conversationID)
}

// currentLocked returns the thread only if it is still the same session the
// operation started in. Must be called with c.mu held.
func (c *conversationService) currentLocked(conversationID string, gen uint64) (*threadState, bool) {
	t, ok := c.threads[conversationID]
	if !ok || t.generation != gen {
		return nil, false
	}
	return t, true
}

// contentLookup answers the last fallback step: cached content for a message
// id, if any.
type contentLookup func(messageID string) (models.MessageContent, bool)

// singleCacheLookup reads the cache one message at a time; used when
// resolving the handful of rows a send or edit returns.
func (c *conversationService) singleCacheLookup(ctx context.Context) contentLookup {
	return func(messageID string) (models.MessageContent, bool) {
		cached, err := c.cache.Get(ctx, messageID)
		if err != nil {
			return models.MessageContent{}, false
		}
		return cached.Content, true
	}
}

// conversationCacheLookup fetches the whole cached conversation in one query,
// deferred until a row actually needs fallback content; a history load may
// need it for many rows at once or for none at all.
func (c *conversationService) conversationCacheLookup(ctx context.Context, conversationID string) contentLookup {
	var byID map[string]models.MessageContent
	return func(messageID string) (models.MessageContent, bool) {
		if byID == nil {
			byID = make(map[string]models.MessageContent)
			cached, err := c.cache.GetByConversation(ctx, conversationID)
			if err != nil {
				c.logger.Debug().Err(err).Str("conversation_id", conversationID).Msg("cache lookup skipped")
			}
			for _, msg := range cached {
				byID[msg.MessageID] = msg.Content
			}
		}
		content, ok := byID[messageID]
		return content, ok
	}
}

// resolveRows maps server rows onto local messages using the content
// fallback order: server plaintext, decrypted encrypted copy, local cache.
// The result is ordered by creation time; unreadable rows come back with
// empty content rather than failing the whole thread.
func (c *conversationService) resolveRows(ctx context.Context, conversationID string, rows []models.MessageRow, lookup contentLookup) []models.Message {
	messages := make([]models.Message, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, c.resolveRow(ctx, conversationID, row, lookup))
	}
	sortByCreatedAt(messages)
	return messages
}

func (c *conversationService) resolveRow(ctx context.Context, conversationID string, row models.MessageRow, lookup contentLookup) models.Message {
	msg := models.Message{
		ID:        row.ID,
		Role:      row.Role,
		CreatedAt: row.CreatedAt,
		State:     models.StateConfirmed,
	}

	if row.Content != nil {
		msg.Content = models.TextContent(*row.Content)
		return msg
	}

	if row.ContentEnc != nil && row.ContentNonce != nil {
		payload, err := payloadFromRow(row)
		if err == nil {
			content, decErr := c.crypto.DecryptMessage(ctx, c.adapter.TenantID(), conversationID, payload)
			if decErr == nil {
				msg.Content = content
				msg.State = models.StateSecured
				return msg
			}
			c.logger.Debug().
				Err(decErr).
				Str("message_id", row.ID).
				Msg("encrypted copy unreadable, falling back to cache")
		}
	}

	// Legacy row, or undecryptable: last resort is the local cache.
	if content, ok := lookup(row.ID); ok {
		msg.Content = content
	} else {
		msg.Content = models.TextContent("")
	}
	return msg
}

// refreshCache stores resolved content locally so future legacy rows can
// still render. Cache failures never surface; the live thread is correct
// without it.
func (c *conversationService) refreshCache(ctx context.Context, conversationID string, messages []models.Message) {
	cached := make([]models.CachedMessage, 0, len(messages))
	for _, msg := range messages {
		if msg.State == models.StatePending || (msg.Content.Text == "" && !msg.Content.HasImages()) {
			continue
		}
		cached = append(cached, models.CachedMessage{
			MessageID:      msg.ID,
			ConversationID: conversationID,
			Role:           msg.Role,
			Content:        msg.Content,
			CreatedAt:      msg.CreatedAt,
		})
	}
	if len(cached) == 0 {
		return
	}
	if err := c.cache.Upsert(ctx, cached...); err != nil {
		c.logger.Debug().Err(err).Msg("message cache refresh skipped")
	}
}

// persistEncryptedAsync encrypts the given messages and ships them to the
// server in the background. Persistence is an optimization: every failure is
// swallowed, and the next natural save opportunity retries.
func (c *conversationService) persistEncryptedAsync(ctx context.Context, conversationID string, gen uint64, messages []models.Message) {
	bgCtx := context.WithoutCancel(ctx)
	c.persistWG.Add(1)
	go func() {
		defer c.persistWG.Done()
		c.persistEncrypted(bgCtx, conversationID, gen, messages)
	}()
}

func (c *conversationService) persistEncrypted(ctx context.Context, conversationID string, gen uint64, messages []models.Message) {
	tenantID := c.adapter.TenantID()

	items := make([]models.EncryptedItem, 0, len(messages))
	for _, msg := range messages {
		if msg.State == models.StatePending {
			continue
		}

		payload, err := c.crypto.EncryptMessage(ctx, tenantID, conversationID, reduceForPersistence(msg.Content))
		if err != nil {
			c.logger.Debug().
				Err(err).
				Str("message_id", msg.ID).
				Msg("encrypted persistence skipped: encryption unavailable")
			return
		}

		items = append(items, models.EncryptedItem{
			ID:             msg.ID,
			ConversationID: conversationID,
			Role:           msg.Role,
			ContentEnc:     base64Encode(payload.Ciphertext),
			ContentNonce:   base64Encode(payload.Nonce),
			ContentSalt:    payload.SaltLabel,
			CreatedAt:      msg.CreatedAt,
		})
	}
	if len(items) == 0 {
		return
	}

	if err := c.adapter.SaveEncrypted(ctx, conversationID, models.EncryptedSaveRequest{Items: items}); err != nil {
		c.logger.Debug().
			Err(err).
			Str("conversation_id", conversationID).
			Msg("encrypted persistence skipped")
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	t, ok := c.currentLocked(conversationID, gen)
	if !ok {
		return
	}
	for _, item := range items {
		if idx := indexOfMessage(t.messages, item.ID); idx >= 0 {
			t.messages[idx].State = models.StateSecured
		}
	}
}

// reduceForPersistence drops image blobs above the thumbnail bound; only
// small thumbnails travel into the encrypted copy.
func reduceForPersistence(content models.MessageContent) models.MessageContent {
	if !content.HasImages() {
		return content
	}

	thumbs := make([]models.Thumbnail, 0, len(content.Images))
	for _, img := range content.Images {
		if len(img) <= maxThumbnailBytes {
			thumbs = append(thumbs, img)
		}
	}
	if len(thumbs) == 0 {
		thumbs = nil
	}
	return models.MessageContent{Text: content.Text, Images: thumbs}
}

func payloadFromRow(row models.MessageRow) (models.EncryptedPayload, error) {
	ciphertext, err := base64Decode(*row.ContentEnc)
	if err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("decode ciphertext: %w", err)
	}
	nonce, err := base64Decode(*row.ContentNonce)
	if err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("decode nonce: %w", err)
	}

	payload := models.EncryptedPayload{Ciphertext: ciphertext, Nonce: nonce}
	if row.ContentSalt != nil {
		payload.SaltLabel = *row.ContentSalt
	}
	return payload, nil
}

func snapshotMessages(messages []models.Message) []models.Message {
	out := make([]models.Message, len(messages))
	copy(out, messages)
	return out
}

func removeMessage(messages []models.Message, id string) []models.Message {
	if idx := indexOfMessage(messages, id); idx >= 0 {
		return append(messages[:idx], messages[idx+1:]...)
	}
	return messages
}

func indexOfMessage(messages []models.Message, id string) int {
	for i, msg := range messages {
		if msg.ID == id {
			return i
		}
	}
	return -1
}

func base64Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

func base64Decode(data string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(data)
}

func sortByCreatedAt(messages []models.Message) {
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
}
