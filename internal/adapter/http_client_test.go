package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgkondr/bidpilot/internal/config"
	"github.com/evgkondr/bidpilot/models"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc) (ServerAdapter, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a := NewHTTPServerAdapter(
		config.ClientAdapter{BaseURL: srv.URL, RequestTimeout: 5 * time.Second},
		config.ClientApp{},
	)
	return a, srv
}

func signedTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func TestSetToken_ExtractsTenantID(t *testing.T) {
	a, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {})

	a.SetToken(signedTestToken(t, jwt.MapClaims{"sub": "42", "tid": "tenant-acme"}))
	assert.Equal(t, "tenant-acme", a.TenantID())
}

func TestSetToken_NoTenantClaim(t *testing.T) {
	a, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {})

	a.SetToken(signedTestToken(t, jwt.MapClaims{"sub": "42"}))
	assert.Empty(t, a.TenantID())
}

func TestSetToken_GarbageToken(t *testing.T) {
	a, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {})

	a.SetToken("not-a-jwt")
	assert.Empty(t, a.TenantID())
}

func TestHistory_Success(t *testing.T) {
	content := "hello"
	a, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/conversations/conv-1/messages", r.URL.Path)
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))

		resp := models.HistoryResponse{
			ConversationID: "conv-1",
			Messages: []models.MessageRow{
				{ID: "m1", Role: models.RoleUser, Content: &content, CreatedAt: time.Now()},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})
	a.SetToken("token-abc")

	history, err := a.History(context.Background(), "conv-1")
	require.NoError(t, err)
	assert.Equal(t, "conv-1", history.ConversationID)
	require.Len(t, history.Messages, 1)
	assert.Equal(t, "hello", *history.Messages[0].Content)
}

func TestHistory_Unauthorized(t *testing.T) {
	a, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := a.History(context.Background(), "conv-1")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestSendMessage_PostsBody(t *testing.T) {
	a, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/conversations/conv-1/messages", r.URL.Path)

		var req models.SendMessageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "new proposal draft", req.Content)

		resp := models.SendMessageResponse{Messages: []models.MessageRow{
			{ID: "m10", Role: models.RoleUser, Content: &req.Content, CreatedAt: time.Now()},
		}}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	sent, err := a.SendMessage(context.Background(), "conv-1", models.SendMessageRequest{Content: "new proposal draft"})
	require.NoError(t, err)
	require.Len(t, sent.Messages, 1)
	assert.Equal(t, "m10", sent.Messages[0].ID)
}

func TestEditMessage_NotFound(t *testing.T) {
	a, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/messages/m404", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := a.EditMessage(context.Background(), "m404", models.EditMessageRequest{Content: "x"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSaveEncrypted_SendsItems(t *testing.T) {
	a, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/conversations/conv-1/encrypted", r.URL.Path)

		var req models.EncryptedSaveRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Items, 2)
		assert.Equal(t, "conv-1", req.Items[0].ConversationID)
		w.WriteHeader(http.StatusOK)
	})

	req := models.EncryptedSaveRequest{Items: []models.EncryptedItem{
		{ID: "m1", ConversationID: "conv-1", Role: models.RoleUser, ContentEnc: "AAA", ContentNonce: "BBB", ContentSalt: "mk_salt_v1"},
		{ID: "m2", ConversationID: "conv-1", Role: models.RoleAssistant, ContentEnc: "CCC", ContentNonce: "DDD", ContentSalt: "mk_salt_v1"},
	}}
	require.NoError(t, a.SaveEncrypted(context.Background(), "conv-1", req))
}

func TestSaveEncrypted_ServerError(t *testing.T) {
	a, _ := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "storage unavailable", http.StatusInternalServerError)
	})

	err := a.SaveEncrypted(context.Background(), "conv-1", models.EncryptedSaveRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 500")
}
