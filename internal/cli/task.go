package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/keel-app/keel/internal/daemon"
	"github.com/keel-app/keel/internal/domain"
)

func init() {
	for _, c := range []*cobra.Command{taskDoneCmd, taskUndoCmd} {
		c.Flags().StringVar(&taskDifficulty, "difficulty", "easy", "Task difficulty: easy, medium, hard")
		c.Flags().StringVar(&taskRole, "role", "", "Role tag (work, health, home, ...)")
		c.Flags().BoolVar(&taskQuickWin, "quick-win", false, "Count as a quick win")
		c.Flags().BoolVar(&taskHyperfocus, "hyperfocus", false, "Count as a hyperfocus session")
	}
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskUndoCmd)
	rootCmd.AddCommand(taskCmd)
}

var (
	taskDifficulty string
	taskRole       string
	taskQuickWin   bool
	taskHyperfocus bool
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Score completed tasks",
}

var taskDoneCmd = &cobra.Command{
	Use:   "done",
	Short: "Award points for a completed task",
	RunE:  runTaskDone,
}

var taskUndoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Reverse a task award (same attributes, exact reversal)",
	RunE:  runTaskUndo,
}

func taskEventFromFlags() domain.TaskEvent {
	return domain.TaskEvent{
		QuickWin:   taskQuickWin,
		Hyperfocus: taskHyperfocus,
		Difficulty: domain.Difficulty(taskDifficulty),
		Role:       taskRole,
	}
}

func runTaskDone(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	progress, err := d.Engine.AwardTaskCompletion(taskEventFromFlags())
	if err != nil {
		return err
	}

	// Task completion counts as activity for the streak too.
	if err := d.Engine.RecordActivity(time.Now()); err != nil {
		return err
	}

	unlocked, err := d.Engine.EvaluateAchievements()
	if err != nil {
		return err
	}

	fmt.Printf("Done! %d points total, level %d.\n", progress.TotalPoints, progress.Level)
	for _, a := range unlocked {
		fmt.Printf("%s  Achievement unlocked: %s: %s (+%d points)\n",
			a.Icon, a.Name, a.Description, a.PointsAwarded)
	}
	return nil
}

func runTaskUndo(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	progress, err := d.Engine.RevokeTaskCompletion(taskEventFromFlags())
	if err != nil {
		return err
	}

	fmt.Printf("Reversed. %d points total, level %d.\n", progress.TotalPoints, progress.Level)
	return nil
}
