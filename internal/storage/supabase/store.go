// Package supabase appends conversation records through the Supabase
// PostgREST API, the storage path used by hosted deployments.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/josh-stephens/youtube-summary-agent/internal/storage/models"
)

const (
	messagesPath   = "/rest/v1/messages"
	defaultTimeout = 15 * time.Second
	maxErrorBytes  = 4 << 10
)

// Store is a minimal PostgREST client scoped to the messages table.
type Store struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

// Option overrides Store defaults.
type Option func(*Store)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(s *Store) { s.httpClient = h }
}

// NewStore builds a store for the given Supabase project URL and service
// role key.
func NewStore(baseURL, serviceKey string, opts ...Option) *Store {
	s := &Store{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		serviceKey: serviceKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// insertRow mirrors the PostgREST insert body for the messages table.
// id and created_at are filled by column defaults.
type insertRow struct {
	SessionID string                `json:"session_id"`
	Message   models.MessagePayload `json:"message"`
}

// Append inserts one conversation record into the messages table.
func (s *Store) Append(ctx context.Context, rec models.ConversationRecord) error {
	body, err := json.Marshal(insertRow{SessionID: rec.SessionID, Message: rec.Payload()})
	if err != nil {
		return fmt.Errorf("marshal insert body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+messagesPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build insert request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", s.serviceKey)
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	req.Header.Set("Prefer", "return=minimal")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBytes))
		return fmt.Errorf("insert message: status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	return nil
}
