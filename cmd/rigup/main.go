package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rigup-dev/rigup/internal/buildinfo"
	"github.com/rigup-dev/rigup/internal/log"
)

// Verbosity flags shared by every command.
var (
	quietFlag   bool
	verboseFlag bool
	debugFlag   bool
)

var rootCmd = &cobra.Command{
	Use:   "rigup",
	Short: "Provision build hosts for cross-compilation targets",
	Long: `rigup inspects a cross-compilation target triple and installs what the
host needs to build and test for it: toolchain repositories, compiler
and emulator packages, SDK components, and NDK shim patches.

Plans are resolved deterministically from a fixed rule table. Inspect
them with 'rigup plan', apply them with 'rigup provision'. Applying a
plan twice converges: steps already applied are skipped or rewritten
to the same state.`,
	Version:       buildinfo.Version(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Only print errors")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Print operational detail")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Print internal state for troubleshooting")
}

// determineLogLevel maps verbosity flags and environment variables to a
// log level. Flags win over environment variables, and the most verbose
// setting wins when several are given.
func determineLogLevel() slog.Level {
	if debugFlag {
		return slog.LevelDebug
	}
	if verboseFlag {
		return slog.LevelInfo
	}
	if quietFlag {
		return slog.LevelError
	}
	if isTruthy(os.Getenv("RIGUP_DEBUG")) {
		return slog.LevelDebug
	}
	if isTruthy(os.Getenv("RIGUP_VERBOSE")) {
		return slog.LevelInfo
	}
	if isTruthy(os.Getenv("RIGUP_QUIET")) {
		return slog.LevelError
	}
	return slog.LevelWarn
}

// isTruthy reports whether an environment variable value enables a
// verbosity setting.
func isTruthy(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func setupLogging() {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: determineLogLevel()})
	log.SetDefault(log.New(h))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		exitWithCode(ExitGeneral)
	}
}
