package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samuel-avson/retrofolio/internal/app/engagement"
	"github.com/samuel-avson/retrofolio/internal/daemon"
	"github.com/samuel-avson/retrofolio/internal/infra/sqlite"
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show visitor engagement stats",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	engine, db, err := openEngine()
	if err != nil {
		return err
	}
	defer db.Close()

	state := engine.LoadState()
	progress := engagement.ProgressForXP(state.XP)

	unlocked := 0
	for _, a := range state.Achievements {
		if a.Unlocked {
			unlocked++
		}
	}

	fmt.Printf("Level:         %d [%s]\n", state.Level, engagement.LevelName(state.Level))
	fmt.Printf("XP:            %d (%.0f%% to next level)\n", state.XP, progress.Percentage)
	fmt.Printf("Achievements:  %d / %d\n", unlocked, len(state.Achievements))
	fmt.Printf("Visits:        %d\n", state.VisitCount)
	fmt.Printf("Commands used: %d\n", len(state.CommandsUsed))
	fmt.Printf("Scroll depth:  %d%%\n", state.ScrollDepth)
	if state.LastVisit != nil {
		fmt.Printf("Last visit:    %s\n", state.LastVisit.Format("2006-01-02 15:04"))
	}
	return nil
}

// openEngine wires an engine against the configured data directory.
// Caller closes the returned DB.
func openEngine() (*engagement.Engine, *sqlite.DB, error) {
	cfg, err := daemon.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	dataDir := cfg.Data.Dir
	if dataDir == "" {
		dataDir = daemon.Home()
	}
	db, err := sqlite.Open(dataDir)
	if err != nil {
		return nil, nil, err
	}
	return engagement.New(db, 0), db, nil
}
