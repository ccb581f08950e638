package cli

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/keel-app/keel/internal/daemon"
	"github.com/keel-app/keel/internal/domain"
)

func init() {
	commitCreateCmd.Flags().StringVar(&commitDescription, "description", "", "Optional description")
	commitResolveCmd.Flags().StringVar(&commitNotes, "notes", "", "Reflection notes (required)")
	commitCmd.AddCommand(commitCreateCmd)
	commitCmd.AddCommand(commitShowCmd)
	commitCmd.AddCommand(commitDoneCmd)
	commitCmd.AddCommand(commitResolveCmd)
	commitCmd.AddCommand(commitRmCmd)
	commitCmd.AddCommand(commitHistoryCmd)
	rootCmd.AddCommand(commitCmd)
}

var (
	commitDescription string
	commitNotes       string
)

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Manage the single active 48-hour commitment",
}

var commitCreateCmd = &cobra.Command{
	Use:   "create TITLE",
	Short: "Pledge a new 48-hour commitment",
	Args:  cobra.ExactArgs(1),
	RunE:  runCommitCreate,
}

var commitShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active commitment and its remaining time",
	RunE:  runCommitShow,
}

var commitDoneCmd = &cobra.Command{
	Use:   "done",
	Short: "Complete the active commitment",
	RunE:  runCommitDone,
}

var commitResolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve an expired commitment with reflection notes",
	RunE:  runCommitResolve,
}

var commitRmCmd = &cobra.Command{
	Use:   "rm",
	Short: "Delete the active commitment entirely",
	RunE:  runCommitRm,
}

var commitHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List past commitments",
	RunE:  runCommitHistory,
}

func runCommitCreate(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	commitment, err := d.Engine.CreateCommitment(args[0], commitDescription)
	if errors.Is(err, domain.ErrActiveCommitmentExists) {
		fmt.Printf("Already committed to %q. Finish or delete it first.\n", commitment.Title)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Committed: %q\n", commitment.Title)
	fmt.Printf("Deadline: %s (48 hours from now)\n", commitment.Deadline.Format("2006-01-02 15:04"))
	return nil
}

func runCommitShow(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	status, err := d.Engine.GetActiveCommitment()
	if err != nil {
		return err
	}
	if status == nil {
		fmt.Println("No active commitment. Start one with 'keel commit create'.")
		return nil
	}

	c := status.Commitment
	fmt.Printf("%s\n", c.Title)
	if c.Description != "" {
		fmt.Printf("  %s\n", c.Description)
	}
	fmt.Printf("  Created:  %s\n", c.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("  Deadline: %s\n", c.Deadline.Format("2006-01-02 15:04"))

	switch {
	case status.ExpiryPending:
		fmt.Println("  Status: deadline passed, resolve with notes or delete")
	case status.NearExpiry:
		fmt.Printf("  Status: %s remaining, near expiry\n", formatRemaining(status.Remaining))
	default:
		fmt.Printf("  Status: %s remaining\n", formatRemaining(status.Remaining))
	}
	return nil
}

func runCommitDone(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	active, err := d.Engine.Commitments.Active()
	if err != nil {
		return err
	}
	if active == nil {
		fmt.Println("No active commitment to complete.")
		return nil
	}

	progress, err := d.Engine.CompleteCommitment(active.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Completed %q! %d points total, level %d.\n",
		active.Title, progress.TotalPoints, progress.Level)
	return nil
}

func runCommitResolve(cmd *cobra.Command, args []string) error {
	if commitNotes == "" {
		return domain.ErrNotesRequired
	}

	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	active, err := d.Engine.Commitments.Active()
	if err != nil {
		return err
	}
	if active == nil {
		fmt.Println("No commitment pending resolution.")
		return nil
	}

	commitment, err := d.Engine.ResolveExpiredCommitment(active.ID, commitNotes)
	if err != nil {
		return err
	}

	fmt.Printf("Resolved %q as expired.\n", commitment.Title)
	return nil
}

func runCommitRm(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	active, err := d.Engine.Commitments.Active()
	if err != nil {
		return err
	}
	if active == nil {
		fmt.Println("No active commitment to delete.")
		return nil
	}

	if err := d.Engine.DeleteCommitment(active.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted %q\n", active.Title)
	return nil
}

func runCommitHistory(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	history, err := d.Engine.Commitments.History()
	if err != nil {
		return err
	}
	if len(history) == 0 {
		fmt.Println("No commitments yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TITLE\tCREATED\tOUTCOME")
	for _, c := range history {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			c.Title,
			c.CreatedAt.Format("2006-01-02 15:04"),
			commitmentOutcome(c),
		)
	}
	return w.Flush()
}

func commitmentOutcome(c domain.Commitment) string {
	switch {
	case c.Completed:
		return "completed " + c.CompletedAt.Format("2006-01-02 15:04")
	case c.Expired:
		return "expired"
	case c.ExpiryPending(time.Now()):
		return "pending resolution"
	default:
		return "active"
	}
}
