package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rigup-dev/rigup/internal/androidsdk"
	"github.com/rigup-dev/rigup/internal/config"
	"github.com/rigup-dev/rigup/internal/platform"
	"github.com/rigup-dev/rigup/internal/userconfig"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that this host is ready for provisioning",
	Long: `Verify the host setup: operating system, distro family and codename,
package manager, Android SDK layout, and component tooling.

Exits with a non-zero status if a required check fails, making it
suitable as a gate in scripts and CI:

  rigup doctor || exit 1`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := userconfig.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	env := config.ResolveEnv(cfg.LLVMVersion, cfg.NDKVersion, platform.DetectCodename())
	host := platform.DetectHostOS()

	fmt.Println("Checking provisioning environment...")
	failed := false

	// Check 1: Host OS
	fmt.Fprintf(os.Stdout, "  Host OS: %s", host)
	if host == platform.Linux {
		fmt.Println(" ... ok")
	} else {
		fmt.Println(" ... ok (package provisioning unavailable on this OS)")
	}

	// Checks 2-4 apply to Linux hosts only: distro family, codename,
	// and the apt binary that package steps shell out to.
	if host == platform.Linux {
		family, ferr := platform.DetectFamily()
		fmt.Fprintf(os.Stdout, "  Distro family")
		switch {
		case ferr != nil:
			fmt.Println(" ... FAIL")
			fmt.Fprintf(os.Stderr, "    %v\n", ferr)
			failed = true
		case family == "":
			fmt.Println(" ... FAIL")
			fmt.Fprintf(os.Stderr, "    No os-release file found\n")
			failed = true
		case family == "debian":
			fmt.Println(" ... ok (debian)")
		default:
			fmt.Println(" ... FAIL")
			fmt.Fprintf(os.Stderr, "    Family %q is not supported; rigup drives apt only\n", family)
			failed = true
		}

		codename := platform.DetectCodename()
		fmt.Fprintf(os.Stdout, "  Distro codename")
		if codename != "" {
			fmt.Printf(" ... ok (%s)\n", codename)
		} else {
			fmt.Printf(" ... ok (undetected, defaulting to %s)\n", config.DefaultCodename)
		}

		fmt.Fprintf(os.Stdout, "  apt-get on PATH")
		if _, err := exec.LookPath("apt-get"); err == nil {
			fmt.Println(" ... ok")
		} else {
			fmt.Println(" ... FAIL")
			fmt.Fprintf(os.Stderr, "    apt-get not found; package steps cannot run\n")
			failed = true
		}
	}

	// Check 5: Android SDK root
	fmt.Fprintf(os.Stdout, "  Android SDK root")
	if env.SDKRoot == "" {
		fmt.Printf(" ... ok (not set; android targets patch %s only)\n", config.EnvNDKRoot)
	} else if info, serr := os.Stat(env.SDKRoot); serr != nil {
		fmt.Println(" ... FAIL")
		fmt.Fprintf(os.Stderr, "    %s points at %s, which does not exist\n", config.EnvSDKRoot, env.SDKRoot)
		failed = true
	} else if !info.IsDir() {
		fmt.Println(" ... FAIL")
		fmt.Fprintf(os.Stderr, "    %s is not a directory\n", env.SDKRoot)
		failed = true
	} else {
		fmt.Printf(" ... ok (%s)\n", env.SDKRoot)
	}

	// Checks 6-7 need an SDK root: sdkmanager and the NDK inventory.
	// Without one, a standalone NDK root is checked instead.
	if env.SDKRoot != "" {
		fmt.Fprintf(os.Stdout, "  sdkmanager")
		if _, serr := os.Stat(env.SDKManagerPath()); serr == nil {
			fmt.Println(" ... ok")
		} else {
			fmt.Println(" ... FAIL")
			fmt.Fprintf(os.Stderr, "    %s not found; install the Android command-line tools\n", env.SDKManagerPath())
			failed = true
		}

		ndks, nerr := androidsdk.InstalledNDKs(env.SDKRoot)
		fmt.Fprintf(os.Stdout, "  Installed NDKs")
		switch {
		case nerr != nil:
			fmt.Println(" ... FAIL")
			fmt.Fprintf(os.Stderr, "    %v\n", nerr)
			failed = true
		case len(ndks) == 0:
			fmt.Printf(" ... ok (none; provisioning installs %s)\n", cfg.NDKVersion)
		default:
			fmt.Printf(" ... ok (%s)\n", strings.Join(ndks, ", "))
		}
	} else if env.NDKRoot != "" {
		fmt.Fprintf(os.Stdout, "  NDK root")
		if _, serr := os.Stat(env.NDKRoot); serr == nil {
			fmt.Printf(" ... ok (%s)\n", env.NDKRoot)
		} else {
			fmt.Println(" ... FAIL")
			fmt.Fprintf(os.Stderr, "    %s points at %s, which does not exist\n", config.EnvNDKRoot, env.NDKRoot)
			failed = true
		}
	}

	// Check 8: cargo, needed only for component installs that build
	// from source.
	fmt.Fprintf(os.Stdout, "  cargo on PATH")
	if _, err := exec.LookPath("cargo"); err == nil {
		fmt.Println(" ... ok")
	} else {
		fmt.Println(" ... not found (only needed for wasm32 targets)")
	}

	// Summary
	if failed {
		fmt.Println()
		return fmt.Errorf("environment check failed")
	}

	fmt.Println()
	fmt.Println("Everything looks good!")
	return nil
}
