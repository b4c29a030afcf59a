package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/samuel-avson/retrofolio/internal/app/engagement"
	"github.com/samuel-avson/retrofolio/internal/domain"
)

// stateView is the engagement snapshot returned to the frontend.
type stateView struct {
	XP          int                  `json:"xp"`
	Level       int                  `json:"level"`
	LevelName   string               `json:"level_name"`
	Progress    domain.LevelProgress `json:"progress"`
	VisitCount  int                  `json:"visit_count"`
	ScrollDepth int                  `json:"scroll_depth"`
	Unlocked    int                  `json:"unlocked"`
	Total       int                  `json:"total"`
}

func viewOf(state domain.GamificationState) stateView {
	unlocked := 0
	for _, a := range state.Achievements {
		if a.Unlocked {
			unlocked++
		}
	}
	return stateView{
		XP:          state.XP,
		Level:       state.Level,
		LevelName:   engagement.LevelName(state.Level),
		Progress:    engagement.ProgressForXP(state.XP),
		VisitCount:  state.VisitCount,
		ScrollDepth: state.ScrollDepth,
		Unlocked:    unlocked,
		Total:       len(state.Achievements),
	}
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	state := s.engine.LoadState()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, viewOf(state))
}

func (s *Server) handleAchievements(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	state := s.engine.LoadState()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{
		"achievements": state.Achievements,
	})
}

func (s *Server) handleToast(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	toast := s.engine.PendingToast()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{
		"toast": toast,
	})
}

func (s *Server) handleToastClear(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.engine.ClearToast()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// handleSession runs the once-per-page-load protocol.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	state := s.engine.StartSession(s.engine.LoadState())
	toast := s.engine.PendingToast()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"state": viewOf(state),
		"toast": toast,
	})
}

type scrollRequest struct {
	Depth int `json:"depth"`
}

func (s *Server) handleScroll(w http.ResponseWriter, r *http.Request) {
	var req scrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	s.mu.Lock()
	state := s.engine.TrackScroll(s.engine.LoadState(), req.Depth)
	toast := s.engine.PendingToast()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"state": viewOf(state),
		"toast": toast,
	})
}

type projectViewRequest struct {
	Title string `json:"title"`
}

func (s *Server) handleProjectView(w http.ResponseWriter, r *http.Request) {
	var req projectViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	s.mu.Lock()
	state := s.engine.TrackProjectView(s.engine.LoadState(), req.Title)
	toast := s.engine.PendingToast()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"state": viewOf(state),
		"toast": toast,
	})
}

// handleUnlock grants an achievement directly. The frontend uses it
// for triggers only it can observe, like the Konami code listener.
func (s *Server) handleUnlock(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	state := s.engine.LoadState()
	state, ach, gained := s.engine.UnlockAchievement(state, id)
	toast := s.engine.PendingToast()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"achievement": ach,
		"xp_gained":   gained,
		"state":       viewOf(state),
		"toast":       toast,
	})
}
