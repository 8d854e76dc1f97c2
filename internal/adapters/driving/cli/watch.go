package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/structura-labs/layerlint-cli/internal/core/ports/driving"
	"github.com/structura-labs/layerlint-cli/internal/logger"
	"github.com/structura-labs/layerlint-cli/internal/watcher"
)

var (
	watchLang     string
	watchNoColour bool
)

// watchedExtensions lists the source file extensions that trigger a
// re-check. Covers every language a built-in scanner handles.
var watchedExtensions = []string{".go", ".java", ".json"}

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Re-check a source tree whenever it changes",
	Long: `Watches the source tree at path (default: current directory) and
re-runs the layering check whenever a source file changes. Changes
are debounced so a burst of writes triggers a single check.

Press Ctrl+C to stop. Watch runs are not recorded in history.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchLang, "lang", "l", "", "scanner language (default: auto-detect)")
	watchCmd.Flags().BoolVar(&watchNoColour, "no-color", false, "disable coloured output")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if checkService == nil {
		return errors.New("check service not configured")
	}

	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := newStyles(useColour(watchNoColour))
	opts := driving.CheckOptions{
		Language:  watchLang,
		NoPersist: true,
	}

	runOnce := func(runCtx context.Context) {
		report, err := checkService.Check(runCtx, root, opts)
		if err != nil {
			cmd.PrintErrf("check failed: %v\n", err)
			return
		}
		printReport(cmd, s, report)
	}

	// Initial check before the first change.
	runOnce(ctx)

	cmd.Printf("\nWatching %s for changes...\n", root)
	w := watcher.New(root, watchedExtensions)
	if err := w.Run(ctx, func(runCtx context.Context) {
		logger.Debug("change detected, re-checking %s", root)
		cmd.Println()
		runOnce(runCtx)
	}); err != nil {
		return err
	}

	return nil
}
