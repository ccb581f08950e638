package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/keel-app/keel/internal/daemon"
)

func init() {
	rootCmd.AddCommand(achievementsCmd)
}

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "List all achievements and their unlock state",
	RunE:  runAchievements,
}

func runAchievements(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	unlocked, err := d.Engine.Achievements.ListUnlocked()
	if err != nil {
		return err
	}
	unlockedAt := make(map[string]string, len(unlocked))
	for _, u := range unlocked {
		unlockedAt[u.ID] = u.UnlockedAt.Format("2006-01-02")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ACHIEVEMENT\tPOINTS\tUNLOCKED")
	for _, def := range d.Engine.Achievements.Definitions() {
		when, ok := unlockedAt[def.ID]
		if !ok {
			when = "-"
		}
		fmt.Fprintf(w, "%s %s\t%d\t%s\n", def.Icon, def.Name, def.PointsAwarded, when)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d of %d unlocked\n", len(unlocked), d.Engine.Achievements.TotalCount())
	return nil
}
