// Package engagement implements the gamification engine: XP accrual,
// level resolution, achievement unlocking, session tracking, and the
// pending toast slot. State is threaded through every operation and
// persisted through an injected key-value store after each mutation.
package engagement

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/samuel-avson/retrofolio/internal/domain"
	"github.com/samuel-avson/retrofolio/internal/infra/metrics"
)

// Store is the persistence port for the engine. Implementations must
// treat Get on a missing key as ("", nil).
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

const stateKey = "gamification"

// Thresholds for the rapid-fire typing achievement.
const (
	speedTyperCount  = 5
	speedTyperWindow = 10 * time.Second
)

// Engine is the single authoritative owner of gamification state.
// Operations take and return the state value; every mutation is
// persisted best-effort before returning. Persistence failures are
// logged and swallowed, never surfaced to callers.
type Engine struct {
	store        Store
	projectTotal int
	now          func() time.Time
	pending      *domain.Toast
	recentCmds   []time.Time
}

// New creates an engine backed by store. projectTotal is the number of
// cataloged projects, used for the all-projects-viewed unlock.
func New(store Store, projectTotal int) *Engine {
	return &Engine{
		store:        store,
		projectTotal: projectTotal,
		now:          time.Now,
	}
}

// ─── Persistence ────────────────────────────────────────────────────────────

// LoadState reads the persisted state, reconciling its achievement
// list against the current catalog. Missing or malformed data yields
// the zero-state; this never fails.
func (e *Engine) LoadState() domain.GamificationState {
	fresh := domain.GamificationState{
		Level:        1,
		Achievements: Catalog(),
	}

	raw, err := e.store.Get(stateKey)
	if err != nil {
		log.Printf("[engagement] load state: %v", err)
		return fresh
	}
	if raw == "" {
		return fresh
	}

	var state domain.GamificationState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		log.Printf("[engagement] corrupt state, resetting: %v", err)
		return fresh
	}

	state.Achievements = reconcile(state.Achievements)
	state.Level = LevelForXP(state.XP)
	return state
}

// SaveState persists the full state snapshot. Best-effort: a write
// failure is logged, not returned.
func (e *Engine) SaveState(state domain.GamificationState) {
	raw, err := json.Marshal(state)
	if err != nil {
		log.Printf("[engagement] marshal state: %v", err)
		return
	}
	if err := e.store.Set(stateKey, string(raw)); err != nil {
		log.Printf("[engagement] save state: %v", err)
	}
}

// Reset overwrites the persisted state with the zero-state and clears
// any pending toast.
func (e *Engine) Reset() domain.GamificationState {
	fresh := domain.GamificationState{
		Level:        1,
		Achievements: Catalog(),
	}
	e.pending = nil
	e.recentCmds = nil
	e.SaveState(fresh)
	return fresh
}

// ─── Mutations ──────────────────────────────────────────────────────────────

// AddXP adds a non-negative amount to the state's XP and recomputes
// the level. Returns the new state, whether a level was gained, and
// the new level. Amounts <= 0 are no-ops.
func (e *Engine) AddXP(state domain.GamificationState, amount int) (domain.GamificationState, bool, int) {
	if amount <= 0 {
		return state, false, state.Level
	}

	oldLevel := LevelForXP(state.XP)
	state.XP += amount
	state.Level = LevelForXP(state.XP)

	if state.Level > oldLevel {
		e.pending = &domain.Toast{Type: domain.ToastLevelUp, Level: state.Level}
		metrics.LevelUps.Inc()
	}

	e.SaveState(state)
	return state, state.Level > oldLevel, state.Level
}

// UnlockAchievement marks the achievement unlocked, awards its XP, and
// queues an achievement toast. Unknown or already-unlocked ids are
// no-ops: the state is returned unchanged with a nil achievement and
// zero XP gained.
func (e *Engine) UnlockAchievement(state domain.GamificationState, id string) (domain.GamificationState, *domain.Achievement, int) {
	if ach := state.Achievement(id); ach == nil || ach.Unlocked {
		return state, nil, 0
	}

	// Copy-on-write so the caller's prior snapshot is untouched.
	achs := make([]domain.Achievement, len(state.Achievements))
	copy(achs, state.Achievements)
	state.Achievements = achs

	now := e.now()
	ach := state.Achievement(id)
	ach.Unlocked = true
	ach.UnlockedAt = &now
	unlocked := *ach

	state, _, _ = e.AddXP(state, unlocked.XP)
	if unlocked.XP == 0 {
		e.SaveState(state)
	}

	// Queued after the XP award so the achievement survives a
	// simultaneous level-up in the single collapsing slot.
	e.pending = &domain.Toast{Type: domain.ToastAchievement, Achievement: &unlocked}
	metrics.AchievementsUnlocked.Inc()

	return state, &unlocked, unlocked.XP
}

// TrackCommand records a command submission. The lowercased text is
// added to the command set if novel; the first command ever, the help
// command, and rapid-fire bursts each attempt their achievement.
func (e *Engine) TrackCommand(state domain.GamificationState, text string) domain.GamificationState {
	cmd := normalize(text)
	if cmd == "" {
		return state
	}

	firstEver := len(state.CommandsUsed) == 0
	if !state.HasCommand(cmd) {
		state.CommandsUsed = append(state.CommandsUsed, cmd)
	}

	if firstEver {
		state, _, _ = e.UnlockAchievement(state, "first_command")
	}
	if cmd == "help" {
		state, _, _ = e.UnlockAchievement(state, "help_command")
	}

	state = e.trackTypingBurst(state)
	e.SaveState(state)
	return state
}

// trackTypingBurst keeps a sliding window of recent submissions and
// unlocks speed_typer once enough land inside it. The window lives on
// the engine, not in persisted state.
func (e *Engine) trackTypingBurst(state domain.GamificationState) domain.GamificationState {
	now := e.now()
	e.recentCmds = append(e.recentCmds, now)
	cutoff := now.Add(-speedTyperWindow)
	kept := e.recentCmds[:0]
	for _, t := range e.recentCmds {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	e.recentCmds = kept
	if len(e.recentCmds) >= speedTyperCount {
		state, _, _ = e.UnlockAchievement(state, "speed_typer")
	}
	return state
}

// TrackScroll raises the scroll-depth high-water mark. Depths at or
// above 95 attempt the scroll_complete unlock. Values outside [0,100]
// are clamped.
func (e *Engine) TrackScroll(state domain.GamificationState, depth int) domain.GamificationState {
	if depth < 0 {
		depth = 0
	}
	if depth > 100 {
		depth = 100
	}

	if depth > state.ScrollDepth {
		state.ScrollDepth = depth
		e.SaveState(state)
	}

	if depth >= 95 {
		if ach := state.Achievement("scroll_complete"); ach != nil && !ach.Unlocked {
			state, _, _ = e.UnlockAchievement(state, "scroll_complete")
		}
	}
	return state
}

// TrackProjectView records a project detail view by title. Viewing the
// whole catalog unlocks all_projects.
func (e *Engine) TrackProjectView(state domain.GamificationState, title string) domain.GamificationState {
	if title == "" {
		return state
	}
	if !state.HasViewedProject(title) {
		state.ProjectsViewed = append(state.ProjectsViewed, title)
		e.SaveState(state)
	}
	if e.projectTotal > 0 && len(state.ProjectsViewed) >= e.projectTotal {
		state, _, _ = e.UnlockAchievement(state, "all_projects")
	}
	return state
}

// StartSession runs the once-per-session protocol: bump the visit
// count, grant the first-visit bonus on the very first visit (which
// suppresses the return/night checks for that session), otherwise
// check for a >24h return and a small-hours visit, then stamp the
// visit time and persist.
func (e *Engine) StartSession(state domain.GamificationState) domain.GamificationState {
	now := e.now()
	state.VisitCount++

	if state.VisitCount == 1 {
		state, _, _ = e.UnlockAchievement(state, "first_visit")
	} else {
		if state.LastVisit != nil && now.Sub(*state.LastVisit) > 24*time.Hour {
			state, _, _ = e.UnlockAchievement(state, "return_visitor")
		}
		if h := now.Hour(); h >= 0 && h < 4 {
			state, _, _ = e.UnlockAchievement(state, "night_owl")
		}
	}

	state.LastVisit = &now
	e.SaveState(state)
	return state
}

// ─── Toast Slot ─────────────────────────────────────────────────────────────

// PendingToast returns the pending notification, or nil. Only one
// notification is held at a time; when several events fire before the
// caller clears, the latest wins.
func (e *Engine) PendingToast() *domain.Toast {
	return e.pending
}

// ClearToast empties the pending slot.
func (e *Engine) ClearToast() {
	e.pending = nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
