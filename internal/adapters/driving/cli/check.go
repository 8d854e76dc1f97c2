package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/structura-labs/layerlint-cli/internal/core/ports/driving"
)

// ErrViolationsFound signals that the check completed but the tree
// breaks the layering convention. Main maps it to exit code 1,
// keeping it distinct from scan and configuration failures.
var ErrViolationsFound = errors.New("layering violations found")

var (
	checkLang      string
	checkJSON      bool
	checkNoColour  bool
	checkNoPersist bool
)

var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Check a source tree against the layering convention",
	Long: `Scans the source tree at path (default: current directory), builds
the module reference graph and reports every reference from a module
to a module in a strictly outer layer.

Exit codes:
  0  the tree is clean
  1  violations were found
  2  the check could not run (unknown layer, dangling reference,
     unsupported language, bad configuration)`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkLang, "lang", "l", "", "scanner language (default: auto-detect)")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "output the report as JSON")
	checkCmd.Flags().BoolVar(&checkNoColour, "no-color", false, "disable coloured output")
	checkCmd.Flags().BoolVar(&checkNoPersist, "no-persist", false, "do not record the run in history")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if checkService == nil {
		return errors.New("check service not configured")
	}

	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	ctx := context.Background()
	opts := driving.CheckOptions{
		Language:  checkLang,
		NoPersist: checkNoPersist,
	}

	report, err := checkService.Check(ctx, root, opts)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	if checkJSON {
		if err := printReportJSON(cmd, report); err != nil {
			return err
		}
	} else {
		printReport(cmd, newStyles(useColour(checkNoColour)), report)
	}

	if !report.Clean() {
		// The report has already been shown; suppress cobra's own
		// error printing so the sentinel only drives the exit code.
		cmd.SilenceErrors = true
		return ErrViolationsFound
	}

	return nil
}
