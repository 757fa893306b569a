package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/josh-stephens/youtube-summary-agent/internal/api/handlers"
	"github.com/josh-stephens/youtube-summary-agent/internal/api/middleware"
)

// NewRouter assembles the public health check and the bearer-protected
// agent endpoint.
func NewRouter(agentHandler *handlers.AgentHandler, bearerToken string) http.Handler {
	r := mux.NewRouter()

	// Public routes
	r.HandleFunc("/health", healthCheck).Methods(http.MethodGet)

	// Protected routes
	protected := r.PathPrefix("/api").Subrouter()
	protected.Use(middleware.BearerAuth(bearerToken))
	protected.HandleFunc("/youtube-summary-agent", agentHandler.Summarize).Methods(http.MethodPost)

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
