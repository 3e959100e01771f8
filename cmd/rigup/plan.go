package main

import (
	"os"

	"github.com/spf13/cobra"
)

var planTarget string
var planFeatures string
var planJSON bool

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the provisioning plan for a target without applying it",
	Long: `Resolve and print the provisioning plan for a target triple.

Resolution is deterministic and touches nothing on the system: the
same target, host, and configuration always produce the same plan.
Use --json for machine-readable output.

Examples:
  rigup plan --target aarch64-unknown-linux-gnu
  rigup plan --target x86_64-unknown-linux-musl --json
  rigup plan --target wasm32-unknown-unknown --features wasm-bindgen`,
	Args: cobra.NoArgs,
	Run:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&planTarget, "target", "", "Target triple (default: plan for the host itself)")
	planCmd.Flags().StringVar(&planFeatures, "features", "", "Comma-separated feature flags, e.g. wasm-bindgen")
	planCmd.Flags().BoolVar(&planJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) {
	p, _, err := resolvePlan(planTarget, planFeatures)
	if err != nil {
		printError(err)
		exitWithCode(ExitGeneral)
	}

	if planJSON {
		printJSON(p)
		return
	}

	renderPlan(os.Stdout, p)
}
