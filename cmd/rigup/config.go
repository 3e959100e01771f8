package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/rigup-dev/rigup/internal/userconfig"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage rigup configuration",
	Long: `Manage rigup configuration settings.

Configuration is stored in ~/.config/rigup/config.toml; set RIGUP_CONFIG
to use another location. Run without arguments to print the effective
configuration.

Available settings:
  llvm_version  LLVM toolchain repository major version (default 15)
  ndk_version   Android NDK release to install and patch
  sudo          Run package manager commands under sudo (true/false)
  apt_options   Extra apt-get arguments, comma separated

Examples:
  rigup config
  rigup config get llvm_version
  rigup config set sudo false`,
	Args: cobra.NoArgs,
	Run:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long:  `Get the current value of a configuration setting.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		key := args[0]

		cfg, err := userconfig.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			exitWithCode(ExitGeneral)
		}

		value, ok := cfg.Get(key)
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown config key: %s\n", key)
			fmt.Fprintf(os.Stderr, "\nAvailable keys:\n")
			printAvailableKeys()
			exitWithCode(ExitUsage)
		}

		fmt.Println(value)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value.

Examples:
  rigup config set llvm_version 17
  rigup config set sudo false
  rigup config set apt_options -o,Acquire::Retries=3`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		key := args[0]
		value := args[1]

		cfg, err := userconfig.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			exitWithCode(ExitGeneral)
		}

		if err := cfg.Set(key, value); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintf(os.Stderr, "\nAvailable keys:\n")
			printAvailableKeys()
			exitWithCode(ExitUsage)
		}

		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
			exitWithCode(ExitGeneral)
		}

		fmt.Printf("%s = %s\n", key, value)
	},
}

// runConfigShow prints the effective configuration, defaults included.
func runConfigShow(cmd *cobra.Command, args []string) {
	cfg, err := userconfig.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		exitWithCode(ExitGeneral)
	}

	available := userconfig.AvailableKeys()
	keys := make([]string, 0, len(available))
	for k := range available {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v, _ := cfg.Get(k)
		fmt.Printf("%s = %s\n", k, v)
	}

	if path, perr := userconfig.DefaultPath(); perr == nil {
		fmt.Println()
		if _, serr := os.Stat(path); serr == nil {
			fmt.Printf("config file: %s\n", path)
		} else {
			fmt.Printf("config file: %s (not present, using defaults)\n", path)
		}
	}
}

func printAvailableKeys() {
	keys := userconfig.AvailableKeys()
	// Sort keys for consistent output
	var sortedKeys []string
	for k := range keys {
		sortedKeys = append(sortedKeys, k)
	}
	sort.Strings(sortedKeys)

	for _, k := range sortedKeys {
		fmt.Fprintf(os.Stderr, "  %s - %s\n", k, keys[k])
	}
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
