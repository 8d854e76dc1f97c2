package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded check runs",
	Long:  `Lists recorded check runs and shows the full report for a given run.`,
	RunE:  runHistoryList,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent check runs",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [run-id]",
	Short: "Show the full report for a run",
	Long: `Shows the full report, violations included, for a recorded run.
A unique prefix of the run ID is accepted in place of the full ID.`,
	Args: cobra.ExactArgs(1),
	RunE: runHistoryShow,
}

func init() {
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of runs to list")
	historyShowCmd.Flags().BoolVar(&historyJSON, "json", false, "output the report as JSON")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	runs, err := historyService.List(context.Background(), historyLimit)
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}

	if len(runs) == 0 {
		cmd.Println("No recorded runs.")
		return nil
	}

	for i := range runs {
		r := &runs[i]
		status := "clean"
		if !r.Clean() {
			word := "violations"
			if r.ViolationCount == 1 {
				word = "violation"
			}
			status = fmt.Sprintf("%d %s", r.ViolationCount, word)
		}
		cmd.Printf("  %s  %s  %-8s %-10s %s\n",
			shortID(r.ID),
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.Language,
			status,
			r.Root,
		)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	report, err := historyService.Show(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("showing run: %w", err)
	}

	if historyJSON {
		return printReportJSON(cmd, report)
	}

	cmd.Printf("Run %s\n", report.ID)
	cmd.Printf("  Root:     %s\n", report.Root)
	cmd.Printf("  Language: %s\n", report.Language)
	cmd.Printf("  Started:  %s\n", report.StartedAt.Local().Format("2006-01-02 15:04:05"))
	cmd.Println()
	printReport(cmd, newStyles(useColour(false)), report)
	return nil
}

// shortID truncates a run ID for list output.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
