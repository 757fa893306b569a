package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/josh-stephens/youtube-summary-agent/internal/agent"
	"github.com/josh-stephens/youtube-summary-agent/internal/api/respond"
)

const maxBodyBytes = 1 << 20

// AgentService runs the summary pipeline.
type AgentService interface {
	Process(ctx context.Context, req agent.Request) (agent.Result, error)
}

type AgentHandler struct {
	service AgentService
	logger  *slog.Logger
}

func NewAgentHandler(service AgentService, logger *slog.Logger) *AgentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AgentHandler{service: service, logger: logger}
}

// summaryResponse is the success envelope.
type summaryResponse struct {
	Response string            `json:"response"`
	Success  bool              `json:"success"`
	Video    agent.VideoReport `json:"video"`
}

func (h *AgentHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req agent.Request
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, string(agent.CodeInvalidRequest), "request body must be valid JSON")
		return
	}

	result, err := h.service.Process(r.Context(), req)
	if err != nil {
		status, code, msg := mapError(err)
		h.logger.Error("summary request failed",
			"request_id", req.RequestID,
			"session_id", req.SessionID,
			"code", code,
			"error", err)
		respond.Error(w, status, code, msg)
		return
	}

	respond.JSON(w, http.StatusOK, summaryResponse{
		Response: result.Response,
		Success:  true,
		Video:    result.Video,
	})
}

// mapError turns a pipeline error into an HTTP status, a taxonomy code and
// a caller-safe message.
func mapError(err error) (int, string, string) {
	var aerr *agent.Error
	if !errors.As(err, &aerr) {
		return http.StatusInternalServerError, "INTERNAL", "internal error"
	}

	status := http.StatusInternalServerError
	switch aerr.Code {
	case agent.CodeInvalidRequest, agent.CodeInvalidReference:
		status = http.StatusBadRequest
	case agent.CodeNotFound:
		status = http.StatusNotFound
	case agent.CodeUpstreamUnavailable, agent.CodeSummarizationFailed:
		status = http.StatusBadGateway
	}
	return status, string(aerr.Code), aerr.Reason
}
