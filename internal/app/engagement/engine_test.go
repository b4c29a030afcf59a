package engagement

import (
	"testing"
	"time"

	"github.com/samuel-avson/retrofolio/internal/domain"
)

// memStore is an in-memory key-value port for tests.
type memStore struct {
	m map[string]string
}

func newMemStore() *memStore {
	return &memStore{m: make(map[string]string)}
}

func (s *memStore) Get(key string) (string, error) { return s.m[key], nil }
func (s *memStore) Set(key, value string) error    { s.m[key] = value; return nil }

func testEngine(t *testing.T) *Engine {
	t.Helper()
	return New(newMemStore(), 6)
}

func TestLoadState_FreshDefaults(t *testing.T) {
	e := testEngine(t)
	state := e.LoadState()

	if state.XP != 0 || state.Level != 1 || state.VisitCount != 0 {
		t.Errorf("unexpected fresh state: xp=%d level=%d visits=%d", state.XP, state.Level, state.VisitCount)
	}
	if len(state.Achievements) != len(Catalog()) {
		t.Errorf("expected %d achievements, got %d", len(Catalog()), len(state.Achievements))
	}
	for _, a := range state.Achievements {
		if a.Unlocked {
			t.Errorf("achievement %s unlocked on fresh state", a.ID)
		}
	}
}

func TestLoadState_MalformedJSON(t *testing.T) {
	store := newMemStore()
	store.m[stateKey] = "{not json"
	e := New(store, 6)

	state := e.LoadState()
	if state.XP != 0 || state.Level != 1 {
		t.Errorf("corrupt state should reset to defaults, got xp=%d level=%d", state.XP, state.Level)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	e := testEngine(t)
	state := e.LoadState()
	state, _, _ = e.AddXP(state, 150)
	state, _, _ = e.UnlockAchievement(state, "first_command")
	state = e.TrackScroll(state, 42)

	loaded := e.LoadState()
	if loaded.XP != state.XP {
		t.Errorf("xp: got %d, want %d", loaded.XP, state.XP)
	}
	if loaded.Level != state.Level {
		t.Errorf("level: got %d, want %d", loaded.Level, state.Level)
	}
	if loaded.ScrollDepth != 42 {
		t.Errorf("scroll depth: got %d, want 42", loaded.ScrollDepth)
	}
	if ach := loaded.Achievement("first_command"); ach == nil || !ach.Unlocked {
		t.Error("first_command unlock lost in round trip")
	}
}

func TestLoadState_ReconcilesLegacyIDs(t *testing.T) {
	store := newMemStore()
	e := New(store, 6)

	state := e.LoadState()
	state.Achievements = append(state.Achievements, domain.Achievement{ID: "retired_badge", Unlocked: true})
	e.SaveState(state)

	loaded := e.LoadState()
	if loaded.Achievement("retired_badge") != nil {
		t.Error("legacy achievement id should be dropped on load")
	}
	if len(loaded.Achievements) != len(Catalog()) {
		t.Errorf("expected catalog size %d, got %d", len(Catalog()), len(loaded.Achievements))
	}
}

func TestAddXP_ZeroIsNoop(t *testing.T) {
	e := testEngine(t)
	state := e.LoadState()

	next, leveled, level := e.AddXP(state, 0)
	if leveled {
		t.Error("zero xp reported a level-up")
	}
	if next.XP != 0 || level != 1 {
		t.Errorf("zero xp changed state: xp=%d level=%d", next.XP, level)
	}
}

func TestAddXP_LevelUpAtThreshold(t *testing.T) {
	e := testEngine(t)
	state := e.LoadState()

	state, leveled, level := e.AddXP(state, 100)
	if !leveled {
		t.Fatal("expected level-up at the 100 xp threshold")
	}
	if level != 2 {
		t.Errorf("expected level 2, got %d", level)
	}
	toast := e.PendingToast()
	if toast == nil || toast.Type != domain.ToastLevelUp || toast.Level != 2 {
		t.Errorf("expected levelup toast for level 2, got %+v", toast)
	}
}

func TestUnlockAchievement_Idempotent(t *testing.T) {
	e := testEngine(t)
	state := e.LoadState()

	state, ach, gained := e.UnlockAchievement(state, "secret_command")
	if ach == nil || ach.ID != "secret_command" {
		t.Fatalf("first unlock failed: %+v", ach)
	}
	if gained != 50 {
		t.Errorf("expected 50 xp, got %d", gained)
	}
	if ach.UnlockedAt == nil {
		t.Error("unlock timestamp not set")
	}

	again, ach2, gained2 := e.UnlockAchievement(state, "secret_command")
	if ach2 != nil || gained2 != 0 {
		t.Errorf("second unlock should be a no-op, got ach=%+v xp=%d", ach2, gained2)
	}
	if again.XP != state.XP {
		t.Errorf("second unlock changed xp: %d vs %d", again.XP, state.XP)
	}
}

func TestUnlockAchievement_UnknownID(t *testing.T) {
	e := testEngine(t)
	state := e.LoadState()

	next, ach, gained := e.UnlockAchievement(state, "no_such_badge")
	if ach != nil || gained != 0 {
		t.Errorf("unknown id should be a no-op, got %+v / %d", ach, gained)
	}
	if next.XP != state.XP {
		t.Error("unknown id changed state")
	}
}

func TestUnlock_DoesNotAliasPriorSnapshot(t *testing.T) {
	e := testEngine(t)
	before := e.LoadState()

	_, _, _ = e.UnlockAchievement(before, "help_command")
	if before.Achievement("help_command").Unlocked {
		t.Error("unlock mutated the caller's prior snapshot")
	}
}

func TestTrackCommand_FirstAndHelp(t *testing.T) {
	e := testEngine(t)
	state := e.LoadState()

	state = e.TrackCommand(state, "WHOAMI")
	if !state.HasCommand("whoami") {
		t.Error("command not recorded lowercased")
	}
	if ach := state.Achievement("first_command"); ach == nil || !ach.Unlocked {
		t.Error("first command did not unlock first_command")
	}

	state = e.TrackCommand(state, "help")
	if ach := state.Achievement("help_command"); ach == nil || !ach.Unlocked {
		t.Error("help did not unlock help_command")
	}

	// Repeat submissions do not duplicate entries.
	state = e.TrackCommand(state, "whoami")
	count := 0
	for _, c := range state.CommandsUsed {
		if c == "whoami" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected one whoami entry, got %d", count)
	}
}

func TestTrackCommand_SpeedTyper(t *testing.T) {
	e := testEngine(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	e.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	state := e.LoadState()
	for i, cmd := range []string{"help", "whoami", "projects", "skills", "contact"} {
		state = e.TrackCommand(state, cmd)
		ach := state.Achievement("speed_typer")
		if i < 4 && ach.Unlocked {
			t.Fatalf("speed_typer unlocked after only %d commands", i+1)
		}
	}
	if ach := state.Achievement("speed_typer"); !ach.Unlocked {
		t.Error("five rapid commands did not unlock speed_typer")
	}
}

func TestTrackScroll_HighWaterMark(t *testing.T) {
	e := testEngine(t)
	state := e.LoadState()

	state = e.TrackScroll(state, 80)
	state = e.TrackScroll(state, 50)
	if state.ScrollDepth != 80 {
		t.Errorf("scroll depth decreased: got %d, want 80", state.ScrollDepth)
	}

	state = e.TrackScroll(state, 130)
	if state.ScrollDepth != 100 {
		t.Errorf("scroll depth not clamped: got %d", state.ScrollDepth)
	}
}

func TestTrackScroll_CompleteUnlocksOnce(t *testing.T) {
	e := testEngine(t)
	state := e.LoadState()

	state = e.TrackScroll(state, 95)
	ach := state.Achievement("scroll_complete")
	if ach == nil || !ach.Unlocked {
		t.Fatal("scroll to 95 did not unlock scroll_complete")
	}
	xpAfterFirst := state.XP

	state = e.TrackScroll(state, 97)
	state = e.TrackScroll(state, 100)
	if state.XP != xpAfterFirst {
		t.Errorf("repeated deep scrolls re-awarded xp: %d vs %d", state.XP, xpAfterFirst)
	}
}

func TestTrackProjectView_AllProjects(t *testing.T) {
	e := New(newMemStore(), 3)
	state := e.LoadState()

	state = e.TrackProjectView(state, "Alpha")
	state = e.TrackProjectView(state, "Alpha")
	state = e.TrackProjectView(state, "Beta")
	if ach := state.Achievement("all_projects"); ach.Unlocked {
		t.Fatal("all_projects unlocked before the full catalog was viewed")
	}

	state = e.TrackProjectView(state, "Gamma")
	if ach := state.Achievement("all_projects"); !ach.Unlocked {
		t.Error("viewing every project did not unlock all_projects")
	}
	if len(state.ProjectsViewed) != 3 {
		t.Errorf("duplicate view recorded: %v", state.ProjectsViewed)
	}
}

func TestStartSession_FirstVisit(t *testing.T) {
	e := testEngine(t)
	e.now = func() time.Time { return time.Date(2026, 3, 1, 2, 0, 0, 0, time.UTC) }

	state := e.StartSession(e.LoadState())
	if state.VisitCount != 1 {
		t.Errorf("visit count: got %d, want 1", state.VisitCount)
	}
	if ach := state.Achievement("first_visit"); !ach.Unlocked {
		t.Error("first visit did not unlock first_visit")
	}
	// First visit suppresses the night check even at 2am.
	if ach := state.Achievement("night_owl"); ach.Unlocked {
		t.Error("night_owl granted on the first visit")
	}
	if state.LastVisit == nil {
		t.Error("last visit not stamped")
	}
}

func TestStartSession_ReturnVisitor(t *testing.T) {
	e := testEngine(t)
	first := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	e.now = func() time.Time { return first }
	state := e.StartSession(e.LoadState())

	// Within 24h: no return badge.
	e.now = func() time.Time { return first.Add(6 * time.Hour) }
	state = e.StartSession(state)
	if ach := state.Achievement("return_visitor"); ach.Unlocked {
		t.Fatal("return_visitor granted within 24h")
	}

	e.now = func() time.Time { return first.Add(31 * time.Hour) }
	state = e.StartSession(state)
	if ach := state.Achievement("return_visitor"); !ach.Unlocked {
		t.Error("return after >24h did not unlock return_visitor")
	}
	if state.VisitCount != 3 {
		t.Errorf("visit count: got %d, want 3", state.VisitCount)
	}
}

func TestStartSession_NightOwl(t *testing.T) {
	e := testEngine(t)
	noon := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	e.now = func() time.Time { return noon }
	state := e.StartSession(e.LoadState())

	e.now = func() time.Time { return noon.Add(15 * time.Hour) } // 3am next day
	state = e.StartSession(state)
	if ach := state.Achievement("night_owl"); !ach.Unlocked {
		t.Error("3am visit did not unlock night_owl")
	}
}

func TestToast_LatestWins(t *testing.T) {
	e := testEngine(t)
	state := e.LoadState()

	state, _, _ = e.UnlockAchievement(state, "help_command")
	state, _, _ = e.UnlockAchievement(state, "secret_command")

	toast := e.PendingToast()
	if toast == nil || toast.Type != domain.ToastAchievement {
		t.Fatalf("expected achievement toast, got %+v", toast)
	}
	if toast.Achievement.ID != "secret_command" {
		t.Errorf("expected latest toast to win, got %s", toast.Achievement.ID)
	}

	e.ClearToast()
	if e.PendingToast() != nil {
		t.Error("toast survived clear")
	}
	_ = state
}

func TestReset(t *testing.T) {
	e := testEngine(t)
	state := e.LoadState()
	state, _, _ = e.AddXP(state, 500)
	state = e.TrackCommand(state, "help")

	fresh := e.Reset()
	if fresh.XP != 0 || fresh.VisitCount != 0 || len(fresh.CommandsUsed) != 0 {
		t.Errorf("reset left residue: %+v", fresh)
	}
	loaded := e.LoadState()
	if loaded.XP != 0 {
		t.Errorf("reset not persisted, loaded xp=%d", loaded.XP)
	}
}
