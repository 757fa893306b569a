package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/josh-stephens/youtube-summary-agent/internal/agent"
	"github.com/josh-stephens/youtube-summary-agent/internal/api/handlers"
)

type stubService struct {
	calls int
}

func (s *stubService) Process(ctx context.Context, req agent.Request) (agent.Result, error) {
	s.calls++
	return agent.Result{Response: "ok", Persistence: agent.PersistOutcome{Stored: true}}, nil
}

func newTestRouter() (*stubService, http.Handler) {
	svc := &stubService{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return svc, NewRouter(handlers.NewAgentHandler(svc, logger), "secret-token")
}

func TestHealthIsPublic(t *testing.T) {
	_, router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "OK", rec.Body.String())
}

func TestAgentEndpointRequiresBearer(t *testing.T) {
	svc, router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/youtube-summary-agent", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// The pipeline must never run for unauthorized callers.
	require.Zero(t, svc.calls)
}

func TestAgentEndpointWithBearer(t *testing.T) {
	svc, router := newTestRouter()

	body := `{"query": "dQw4w9WgXcQ", "user_id": "u", "request_id": "r", "session_id": "s"}`
	req := httptest.NewRequest(http.MethodPost, "/api/youtube-summary-agent", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer secret-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, svc.calls)
}

func TestAgentEndpointMethodNotAllowed(t *testing.T) {
	_, router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/youtube-summary-agent", nil)
	req.Header.Set("Authorization", "Bearer secret-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
