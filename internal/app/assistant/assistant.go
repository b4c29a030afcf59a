// Package assistant handles free-text questions that fall outside the
// scripted command set by delegating to a text-generation backend.
// The reply path is total: backend failures surface as a fixed
// offline-mode line, never as an error.
package assistant

import (
	"context"
	"log"
	"strings"

	"github.com/samuel-avson/retrofolio/internal/infra/metrics"
)

// OfflineFallback is shown whenever the backend is missing or errors.
const OfflineFallback = "I'm having trouble connecting right now. Try basic commands: whoami, projects, skills, contact"

// Completer is the text-generation boundary. Implementations may
// block until the context is done.
type Completer interface {
	Complete(ctx context.Context, message string) (string, error)
}

// Assistant wraps a Completer with the fallback contract.
type Assistant struct {
	completer Completer
}

// New creates an assistant. A nil completer is allowed and yields the
// offline fallback for every question.
func New(c Completer) *Assistant {
	return &Assistant{completer: c}
}

// Enabled reports whether a backend is configured.
func (a *Assistant) Enabled() bool {
	return a.completer != nil
}

// Reply answers one question. Empty input, a missing backend, a
// backend error, and an empty completion all resolve to the fallback
// line; callers always get a usable string.
func (a *Assistant) Reply(ctx context.Context, message string) string {
	message = strings.TrimSpace(message)
	if message == "" || a.completer == nil {
		metrics.AssistantRequests.WithLabelValues("fallback").Inc()
		return OfflineFallback
	}

	text, err := a.completer.Complete(ctx, message)
	if err != nil {
		log.Printf("[assistant] completion failed: %v", err)
		metrics.AssistantRequests.WithLabelValues("fallback").Inc()
		return OfflineFallback
	}
	text = strings.TrimSpace(text)
	if text == "" {
		metrics.AssistantRequests.WithLabelValues("fallback").Inc()
		return OfflineFallback
	}

	metrics.AssistantRequests.WithLabelValues("ok").Inc()
	return text
}
