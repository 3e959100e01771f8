package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rigup-dev/rigup/internal/aptrepo"
	"github.com/rigup-dev/rigup/internal/components"
	"github.com/rigup-dev/rigup/internal/errmsg"
	"github.com/rigup-dev/rigup/internal/log"
	"github.com/rigup-dev/rigup/internal/pkgmgr"
	"github.com/rigup-dev/rigup/internal/progress"
	"github.com/rigup-dev/rigup/internal/provision"
)

var provisionTarget string
var provisionFeatures string
var provisionDryRun bool

var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Install the host toolchain for a cross-compilation target",
	Long: `Resolve the provisioning plan for a target triple and apply it to this
host: package repositories, compiler and emulator packages, SDK
components, and NDK shim patches.

Steps run in plan order and stop at the first failure. Re-running
after a failure is safe: already-applied steps converge instead of
repeating work.

Examples:
  rigup provision --target aarch64-unknown-linux-gnu
  rigup provision --target wasm32-unknown-unknown --features wasm-bindgen
  rigup provision --target armv7-linux-androideabi --dry-run`,
	Args: cobra.NoArgs,
	Run:  runProvision,
}

func init() {
	provisionCmd.Flags().StringVar(&provisionTarget, "target", "", "Target triple (default: provision for the host itself)")
	provisionCmd.Flags().StringVar(&provisionFeatures, "features", "", "Comma-separated feature flags, e.g. wasm-bindgen")
	provisionCmd.Flags().BoolVar(&provisionDryRun, "dry-run", false, "Print the plan without applying it")
	rootCmd.AddCommand(provisionCmd)
}

func runProvision(cmd *cobra.Command, args []string) {
	p, in, err := resolvePlan(provisionTarget, provisionFeatures)
	if err != nil {
		printError(err)
		exitWithCode(ExitGeneral)
	}

	if provisionDryRun {
		renderPlan(os.Stdout, p)
		return
	}

	if len(p.Steps) == 0 {
		printInfo("Nothing to provision on this host.")
		return
	}

	logger := log.Default()
	runner := &pkgmgr.ExecRunner{Stream: verboseFlag || debugFlag}
	apt := pkgmgr.NewAptGet(runner, in.cfg.Sudo, in.cfg.AptOptions, logger)
	repos := aptrepo.NewConfigurator(in.env.Codename, &aptrepo.HTTPKeyFetcher{}, apt, logger)
	comps := &components.Router{
		SDK:   components.NewSDKManager(in.env.SDKManagerPath(), runner, logger),
		Cargo: components.NewCargoInstall(runner, logger),
	}

	exec := provision.NewExecutor(apt, comps, repos, logger)
	if !quietFlag {
		exec.SetObserver(progress.NewReporter(nil))
	}

	printInfof("Provisioning %s (%d steps)\n", p.Target, len(p.Steps))

	if err := exec.Run(context.Background(), p); err != nil {
		fmt.Fprintln(os.Stderr)
		fmt.Fprintf(os.Stderr, "Error: %s\n", errmsg.Format(err, &errmsg.ErrorContext{Target: in.spec.Triple}))
		exitWithCode(ExitProvisionFailed)
	}

	printInfo()
	printInfof("Provisioned %s: %d steps applied\n", p.Target, len(p.Steps))
}
