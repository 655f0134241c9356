// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// client.go - HTTP client for the Dark AI backend.
//
// JSON over HTTP against the /api routes. All methods take a context
// and return *ClientError on failure. A small rate limiter smooths
// request bursts so a stuck key cannot hammer the backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// =============================================================================
// CONFIGURATION
// =============================================================================

// DefaultBaseURL is the local development backend.
const DefaultBaseURL = "http://localhost:5000"

// DefaultTimeout bounds every request.
const DefaultTimeout = 30 * time.Second

// Config holds client configuration. Zero values get sensible defaults.
type Config struct {
	BaseURL string
	Timeout time.Duration

	// HTTPClient overrides the transport, used by tests.
	HTTPClient *http.Client

	// RequestsPerSecond caps outbound request rate. Zero means the
	// default of 5.
	RequestsPerSecond float64
}

// Client talks to the Dark AI backend.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a client, filling in defaults for zero config values.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    httpClient,
		limiter: rate.NewLimiter(rate.Limit(rps), int(rps)+1),
	}
}

// =============================================================================
// WIRE TYPES
// =============================================================================

// ChatRequest is the POST /api/chat payload.
type ChatRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id,omitempty"`
	UserID         string `json:"user_id,omitempty"`
}

// ChatResponse is the assistant's reply.
type ChatResponse struct {
	Response       string `json:"response"`
	ConversationID string `json:"conversation_id"`
}

// ChatMessage is one stored message in a conversation transcript.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// conversationBody is the transcript endpoint's envelope.
type conversationBody struct {
	Messages []ChatMessage `json:"messages"`
}

// ConversationSummary is one entry from the history endpoint.
type ConversationSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	UpdatedAt string `json:"updated_at"`
}

// Profile is a user record.
type Profile struct {
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	IsPremium    bool   `json:"is_premium"`
	MessageCount int    `json:"message_count"`
}

// UpgradeResult is the response to a premium upgrade.
type UpgradeResult struct {
	UserID    string `json:"user_id"`
	IsPremium bool   `json:"is_premium"`
	Plan      string `json:"plan"`
}

// errorBody is the backend's error envelope.
type errorBody struct {
	Error string `json:"error"`
}

// =============================================================================
// ENDPOINTS
// =============================================================================

// Health probes GET /api/health. A nil error means the backend is up.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/health", nil, nil)
}

// Chat sends a user message and returns the assistant's response.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	var resp ChatResponse
	err := c.do(ctx, http.MethodPost, "/api/chat", req, &resp)
	return resp, err
}

// Conversation fetches the full transcript of one conversation.
func (c *Client) Conversation(ctx context.Context, conversationID string) ([]ChatMessage, error) {
	var body conversationBody
	err := c.do(ctx, http.MethodGet, "/api/chat/"+url.PathEscape(conversationID), nil, &body)
	return body.Messages, err
}

// History fetches the user's recent conversations, most recent first.
func (c *Client) History(ctx context.Context, userID string) ([]ConversationSummary, error) {
	var out []ConversationSummary
	err := c.do(ctx, http.MethodGet, "/api/history/"+url.PathEscape(userID), nil, &out)
	return out, err
}

// DeleteConversation removes one conversation from the user's history.
func (c *Client) DeleteConversation(ctx context.Context, userID, conversationID string) error {
	path := "/api/history/" + url.PathEscape(userID) + "/" + url.PathEscape(conversationID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// Profile fetches a user record.
func (c *Client) Profile(ctx context.Context, userID string) (Profile, error) {
	var p Profile
	err := c.do(ctx, http.MethodGet, "/api/user/"+url.PathEscape(userID), nil, &p)
	return p, err
}

// CreateUser registers a named user and returns the new profile. The
// caller passes its current user ID so the backend can migrate the
// anonymous message count onto the named account.
func (c *Client) CreateUser(ctx context.Context, userID, name string) (Profile, error) {
	var p Profile
	body := map[string]string{"user_id": userID, "name": name}
	err := c.do(ctx, http.MethodPost, "/api/user", body, &p)
	return p, err
}

// Upgrade switches a user to a premium plan.
func (c *Client) Upgrade(ctx context.Context, userID, plan string) (UpgradeResult, error) {
	var r UpgradeResult
	body := map[string]string{"user_id": userID, "plan": plan}
	err := c.do(ctx, http.MethodPost, "/api/upgrade", body, &r)
	return r, err
}

// =============================================================================
// TRANSPORT
// =============================================================================

// do runs one request. body and out may be nil. Returned errors are
// always *ClientError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return networkError("request cancelled while rate limited", err)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &ClientError{Type: ErrTypeOther, Message: "failed to encode request", Cause: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &ClientError{Type: ErrTypeOther, Message: "failed to build request", Cause: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return networkError("request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return serverError(readErrorMessage(resp), resp.StatusCode)
	}

	if out == nil {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return decodeError("failed to decode response", err)
	}
	return nil
}

// readErrorMessage pulls the backend's error envelope out of a failed
// response, falling back to the HTTP status text.
func readErrorMessage(resp *http.Response) string {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil && len(data) > 0 {
		var eb errorBody
		if json.Unmarshal(data, &eb) == nil && eb.Error != "" {
			return eb.Error
		}
	}
	return http.StatusText(resp.StatusCode)
}
