package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(achievementsCmd)
}

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "List achievements and unlock status",
	RunE:  runAchievements,
}

func runAchievements(cmd *cobra.Command, args []string) error {
	engine, db, err := openEngine()
	if err != nil {
		return err
	}
	defer db.Close()

	state := engine.LoadState()
	for _, a := range state.Achievements {
		status := "locked"
		if a.Unlocked {
			status = "unlocked"
			if a.UnlockedAt != nil {
				status = "unlocked " + a.UnlockedAt.Format("2006-01-02")
			}
		}
		fmt.Printf("%s  %-20s %3d XP  [%s]\n     %s\n", a.Icon, a.Name, a.XP, status, a.Description)
	}
	return nil
}
