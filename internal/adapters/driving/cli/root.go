// Package cli implements the layerlint command-line interface using cobra.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/structura-labs/layerlint-cli/internal/core/ports/driven"
	"github.com/structura-labs/layerlint-cli/internal/core/ports/driving"
	"github.com/structura-labs/layerlint-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services injected by main before Execute runs.
var (
	checkService   driving.CheckService
	historyService driving.HistoryService
	configStore    driven.ConfigStore
)

// initServices, when installed via SetInit, builds the services after
// flags are parsed. Tests leave it unset and inject stubs directly.
var initServices func(configDir, dataDir string) error

var (
	verbose   bool
	configDir string
	dataDir   string
)

var rootCmd = &cobra.Command{
	Use:   "layerlint",
	Short: "Layering convention checker for clean architecture projects",
	Long: `Layerlint checks that the modules of a source tree respect the
inward-dependency rule of clean architecture: domain, application,
infrastructure and presentation layers may only reference inward.

Run 'layerlint check' in a project directory to scan it and report
every reference that points outward.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if initServices != nil {
			return initServices(configDir, dataDir)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.layerlint)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "run history directory (default ~/.layerlint/data)")
}

// SetInit installs the service initialiser run after flag parsing.
func SetInit(fn func(configDir, dataDir string) error) {
	initServices = fn
}

// SetServices injects the application services used by the commands.
// Called by main during startup; tests swap in mocks directly.
func SetServices(check driving.CheckService, history driving.HistoryService, config driven.ConfigStore) {
	checkService = check
	historyService = history
	configStore = config
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
