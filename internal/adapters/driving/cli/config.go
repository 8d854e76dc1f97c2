package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage layerlint configuration",
	Long: `View and edit the configuration file.

Keys use dot notation, e.g.:
  layers.domain      directory names mapped to the domain layer
  check.external     reference prefixes treated as external
  check.exclude      path patterns skipped while scanning
  history.keep       number of runs kept in history`,
	RunE: runConfigList,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	RunE:  runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]...",
	Short: "Set a configuration value",
	Long: `Sets a configuration value and saves the file. A single value is
stored as a bool, integer or string depending on its form; multiple
values are stored as a list.

Examples:
  layerlint config set history.keep 100
  layerlint config set layers.domain domain core model
  layerlint config set check.external com.fasterxml. org.slf4j.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	keys := configStore.Keys()
	if len(keys) == 0 {
		cmd.Printf("No configuration set. File: %s\n", configStore.Path())
		return nil
	}

	for _, key := range keys {
		val, _ := configStore.Get(key)
		cmd.Printf("%s = %v\n", key, val)
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	val, ok := configStore.Get(args[0])
	if !ok {
		return fmt.Errorf("key %q is not set", args[0])
	}
	cmd.Printf("%v\n", val)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key := args[0]
	if err := configStore.Set(key, coerceValue(args[1:])); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}

	val, _ := configStore.Get(key)
	cmd.Printf("%s = %v\n", key, val)
	return nil
}

// coerceValue turns command arguments into a typed config value.
// Multiple arguments become a string list; a single argument is
// stored as a bool or integer when it parses as one.
func coerceValue(args []string) any {
	if len(args) > 1 {
		return args
	}

	// Integers before bools: ParseBool accepts "1" and "0".
	raw := args[0]
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return raw
}
