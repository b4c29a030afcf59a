package domain

import "time"

// ─── Achievement Types ──────────────────────────────────────────────────────

// Achievement is a catalog entry plus its unlock status. The catalog
// fields (ID, Name, Description, XP, Icon) are fixed in code; only
// Unlocked and UnlockedAt ever change, and only once.
type Achievement struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	XP          int        `json:"xp"`
	Icon        string     `json:"icon"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
}

// ─── Gamification State ─────────────────────────────────────────────────────

// GamificationState is the single mutable aggregate for one visitor
// profile. Level is derived from XP and never set independently.
type GamificationState struct {
	XP             int           `json:"xp"`
	Level          int           `json:"level"`
	Achievements   []Achievement `json:"achievements"`
	CommandsUsed   []string      `json:"commands_used"`
	ProjectsViewed []string      `json:"projects_viewed"`
	VisitCount     int           `json:"visit_count"`
	ScrollDepth    int           `json:"scroll_depth"`
	LastVisit      *time.Time    `json:"last_visit,omitempty"`
}

// Achievement returns a pointer into the state's achievement list, or
// nil for an unknown id.
func (s *GamificationState) Achievement(id string) *Achievement {
	for i := range s.Achievements {
		if s.Achievements[i].ID == id {
			return &s.Achievements[i]
		}
	}
	return nil
}

// HasCommand reports whether the (already lowercased) command text has
// been recorded before.
func (s *GamificationState) HasCommand(cmd string) bool {
	for _, c := range s.CommandsUsed {
		if c == cmd {
			return true
		}
	}
	return false
}

// HasViewedProject reports whether a project title has been recorded.
func (s *GamificationState) HasViewedProject(title string) bool {
	for _, t := range s.ProjectsViewed {
		if t == title {
			return true
		}
	}
	return false
}

// LevelProgress describes progress within the current level band.
type LevelProgress struct {
	Current    int     `json:"current"`
	Max        int     `json:"max"`
	Percentage float64 `json:"percentage"`
}

// ─── Toast Types ────────────────────────────────────────────────────────────

// ToastType categorizes pending notifications.
type ToastType string

const (
	ToastAchievement ToastType = "achievement"
	ToastLevelUp     ToastType = "levelup"
)

// Toast is the single pending notification slot. Achievement is set for
// ToastAchievement, Level for ToastLevelUp.
type Toast struct {
	Type        ToastType    `json:"type"`
	Achievement *Achievement `json:"achievement,omitempty"`
	Level       int          `json:"level,omitempty"`
}
