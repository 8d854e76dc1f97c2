// Command layerlint checks source trees against the clean architecture
// layering convention.
package main

import (
	"errors"
	"fmt"
	"os"

	fileconfig "github.com/structura-labs/layerlint-cli/internal/adapters/driven/config/file"
	"github.com/structura-labs/layerlint-cli/internal/adapters/driven/storage/sqlite"
	"github.com/structura-labs/layerlint-cli/internal/adapters/driving/cli"
	"github.com/structura-labs/layerlint-cli/internal/core/ports/driven"
	"github.com/structura-labs/layerlint-cli/internal/core/services"
	"github.com/structura-labs/layerlint-cli/internal/logger"
	"github.com/structura-labs/layerlint-cli/internal/scanners/golang"
	"github.com/structura-labs/layerlint-cli/internal/scanners/graphfile"
	"github.com/structura-labs/layerlint-cli/internal/scanners/java"
)

// Exit codes of the check command.
const (
	exitClean      = 0
	exitViolations = 1
	exitError      = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	var runStore *sqlite.Store

	// Services are built after flag parsing so --config-dir and
	// --data-dir take effect.
	cli.SetInit(func(configDir, dataDir string) error {
		configStore, err := fileconfig.NewConfigStore(configDir)
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}

		runStore, err = sqlite.NewStore(dataDir)
		if err != nil {
			// History is best-effort; checks still work without it.
			logger.Warn("opening run history: %v", err)
			runStore = nil
		}

		registry := services.NewScannerRegistry()
		registry.Register(golang.New())
		registry.Register(java.New())
		registry.Register(graphfile.New())

		checkService := services.NewCheckService(registry, storeOrNil(runStore), configStore)
		historyService := services.NewHistoryService(storeOrNil(runStore))

		cli.SetServices(checkService, historyService, configStore)
		return nil
	})

	err := cli.Execute()
	if runStore != nil {
		runStore.Close() //nolint:errcheck
	}

	if err != nil {
		if errors.Is(err, cli.ErrViolationsFound) {
			return exitViolations
		}
		return exitError
	}
	return exitClean
}

// storeOrNil keeps a nil *sqlite.Store from becoming a non-nil
// interface value inside the services.
func storeOrNil(s *sqlite.Store) driven.RunStore {
	if s == nil {
		return nil
	}
	return s
}
