package engagement

import "github.com/samuel-avson/retrofolio/internal/domain"

// ─── Achievement Catalog ────────────────────────────────────────────────────

// Catalog returns the full achievement catalog, all locked. Catalog
// order is display order and is stable across releases; saved states
// are reconciled against it on every load.
func Catalog() []domain.Achievement {
	return []domain.Achievement{
		{ID: "first_visit", Name: "BOOT_SEQUENCE", Description: "First system boot completed", XP: 10, Icon: "🚀"},
		{ID: "scroll_complete", Name: "DEEP_DIVE", Description: "Scrolled through the entire system", XP: 25, Icon: "📜"},
		{ID: "first_command", Name: "TERMINAL_OPERATOR", Description: "Executed your first terminal command", XP: 15, Icon: "⌨️"},
		{ID: "help_command", Name: "RTFM", Description: "Read the manual like a pro", XP: 10, Icon: "📖"},
		{ID: "secret_command", Name: "HACKER", Description: "Discovered a hidden command", XP: 50, Icon: "🔓"},
		{ID: "all_projects", Name: "PORTFOLIO_REVIEWER", Description: "Inspected every project in the archive", XP: 30, Icon: "👁️"},
		{ID: "konami_code", Name: "RETRO_GAMER", Description: "Entered the legendary code", XP: 100, Icon: "🎮"},
		{ID: "night_owl", Name: "NIGHT_OWL", Description: "Visited during the witching hours", XP: 25, Icon: "🦉"},
		{ID: "return_visitor", Name: "REGULAR", Description: "Came back for more", XP: 20, Icon: "🔄"},
		{ID: "speed_typer", Name: "SPEED_DAEMON", Description: "Fired off commands in rapid succession", XP: 75, Icon: "⚡"},
	}
}

// reconcile merges a saved achievement list with the current catalog:
// catalog entries keep their code-level metadata, saved unlock status
// carries over by id, unknown legacy ids are dropped, and new catalog
// ids appear locked. The result is always in catalog order.
func reconcile(saved []domain.Achievement) []domain.Achievement {
	byID := make(map[string]domain.Achievement, len(saved))
	for _, a := range saved {
		byID[a.ID] = a
	}
	merged := Catalog()
	for i := range merged {
		if prev, ok := byID[merged[i].ID]; ok && prev.Unlocked {
			merged[i].Unlocked = true
			merged[i].UnlockedAt = prev.UnlockedAt
		}
	}
	return merged
}
