package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/samuel-avson/retrofolio/internal/domain"
	"github.com/samuel-avson/retrofolio/internal/infra/metrics"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Message domain.ChatMessage `json:"message"`
	Kind    domain.ReplyKind   `json:"kind"`
	Clear   bool               `json:"clear"`
	Toast   *domain.Toast      `json:"toast,omitempty"`
	State   stateView          `json:"state"`
}

// handleChat interprets one terminal command: resolve the reply,
// record the command, fire any achievements the input qualifies for,
// and report the engagement state the frontend should render.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	reply := s.interp.Respond(req.Message)
	metrics.CommandsTotal.WithLabelValues(string(reply.Kind)).Inc()

	s.mu.Lock()
	state := s.engine.LoadState()
	state = s.engine.TrackCommand(state, req.Message)
	if reply.Kind == domain.ReplySecret {
		state, _, _ = s.engine.UnlockAchievement(state, "secret_command")
	}
	if reply.Kind == domain.ReplyProject {
		state = s.engine.TrackProjectView(state, reply.Project)
	}
	toast := s.engine.PendingToast()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, chatResponse{
		Message: domain.ChatMessage{
			ID:     uuid.NewString(),
			Sender: domain.SenderBot,
			Text:   reply.Text,
		},
		Kind:  reply.Kind,
		Clear: reply.Kind == domain.ReplyClear,
		Toast: toast,
		State: viewOf(state),
	})
}

type assistantRequest struct {
	Message string `json:"message"`
}

type assistantResponse struct {
	Response string `json:"response"`
}

// handleAssistant delegates a free-text question to the assistant.
// The reply is total; backend trouble comes back as the offline line
// with a 200, never as an error status.
func (s *Server) handleAssistant(w http.ResponseWriter, r *http.Request) {
	var req assistantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	writeJSON(w, http.StatusOK, assistantResponse{
		Response: s.assistant.Reply(r.Context(), req.Message),
	})
}
