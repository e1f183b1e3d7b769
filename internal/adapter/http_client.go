package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/evgkondr/bidpilot/internal/config"
	"github.com/evgkondr/bidpilot/models"
)

type httpServerAdapter struct {
	client *resty.Client

	mu       sync.RWMutex
	token    string
	tenantID string
}

// NewHTTPServerAdapter builds a [ServerAdapter] over the chat REST API. The
// session token from cfg, if present, is installed immediately so the tenant
// id is known before the first request.
func NewHTTPServerAdapter(cfg config.ClientAdapter, app config.ClientApp) ServerAdapter {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout)

	h := &httpServerAdapter{client: cli}
	if app.SessionToken != "" {
		h.SetToken(app.SessionToken)
	}
	return h
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
	h.tenantID = parseTenantIDFromJWT(h.token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) TenantID() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.tenantID
}

func (h *httpServerAdapter) History(ctx context.Context, conversationID string) (models.HistoryResponse, error) {
	resp, err := h.authedRequest(ctx).
		Get("/api/conversations/" + conversationID + "/messages")
	if err != nil {
		return models.HistoryResponse{}, fmt.Errorf("history request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HistoryResponse{}, err
	}

	var history models.HistoryResponse
	if err = json.Unmarshal(resp.Body(), &history); err != nil {
		return models.HistoryResponse{}, fmt.Errorf("decode history response: %w", err)
	}
	return history, nil
}

func (h *httpServerAdapter) Start(ctx context.Context, conversationID string) (models.StartResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		Post("/api/conversations/" + conversationID + "/start")
	if err != nil {
		return models.StartResponse{}, fmt.Errorf("start request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StartResponse{}, err
	}

	var started models.StartResponse
	if err = json.Unmarshal(resp.Body(), &started); err != nil {
		return models.StartResponse{}, fmt.Errorf("decode start response: %w", err)
	}
	return started, nil
}

func (h *httpServerAdapter) SendMessage(ctx context.Context, conversationID string, req models.SendMessageRequest) (models.SendMessageResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/conversations/" + conversationID + "/messages")
	if err != nil {
		return models.SendMessageResponse{}, fmt.Errorf("send message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SendMessageResponse{}, err
	}

	var sent models.SendMessageResponse
	if err = json.Unmarshal(resp.Body(), &sent); err != nil {
		return models.SendMessageResponse{}, fmt.Errorf("decode send message response: %w", err)
	}
	return sent, nil
}

func (h *httpServerAdapter) EditMessage(ctx context.Context, messageID string, req models.EditMessageRequest) (models.EditMessageResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/api/messages/" + messageID)
	if err != nil {
		return models.EditMessageResponse{}, fmt.Errorf("edit message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EditMessageResponse{}, err
	}

	var edited models.EditMessageResponse
	if err = json.Unmarshal(resp.Body(), &edited); err != nil {
		return models.EditMessageResponse{}, fmt.Errorf("decode edit message response: %w", err)
	}
	return edited, nil
}

func (h *httpServerAdapter) SaveEncrypted(ctx context.Context, conversationID string, req models.EncryptedSaveRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/conversations/" + conversationID + "/encrypted")
	if err != nil {
		return fmt.Errorf("save encrypted request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode() == http.StatusNotFound {
		return ErrNotFound
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}

// parseTenantIDFromJWT extracts the "tid" claim from the session token
// without verifying the signature; the client only observes the tenant
// identity here, it does not authenticate anything with it.
func parseTenantIDFromJWT(tokenString string) string {
	if tokenString == "" {
		return ""
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return ""
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}

	tid, _ := claims["tid"].(string)
	return tid
}
