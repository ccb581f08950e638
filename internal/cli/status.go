package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/keel-app/keel/internal/daemon"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show level, streak, achievements, and the active commitment",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	summary, err := d.Engine.Summarize()
	if err != nil {
		return err
	}

	p := summary.Progress
	info := summary.LevelInfo

	fmt.Printf("Level %d  (%d points, %.0f%% through the band", info.Level, p.TotalPoints, info.ProgressPercent)
	if info.PointsToNext > 0 {
		fmt.Printf(", %d to next", info.PointsToNext)
	} else {
		fmt.Printf(", max level")
	}
	fmt.Println(")")

	fmt.Printf("Streak: %d day(s), longest %d\n", p.CurrentStreak, p.LongestStreak)
	fmt.Printf("Tasks completed: %d\n", p.TasksCompleted)
	fmt.Printf("Achievements: %d / %d unlocked\n", summary.Achievements, summary.Total)

	if summary.Commitment == nil {
		fmt.Println("Commitment: none active")
		return nil
	}

	c := summary.Commitment
	fmt.Printf("Commitment: %q\n", c.Commitment.Title)
	switch {
	case c.ExpiryPending:
		fmt.Println("  Deadline passed. Resolve it with 'keel commit resolve' or delete it.")
	case c.NearExpiry:
		fmt.Printf("  %s remaining, almost out of time!\n", formatRemaining(c.Remaining))
	default:
		fmt.Printf("  %s remaining (deadline %s)\n",
			formatRemaining(c.Remaining),
			c.Commitment.Deadline.Format("2006-01-02 15:04"))
	}
	return nil
}

// formatRemaining renders a duration as "47h59m" without seconds noise.
func formatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Minute)
	s := d.String()
	return strings.TrimSuffix(s, "0s")
}
