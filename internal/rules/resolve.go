package rules

import (
	"fmt"
	"path/filepath"

	"github.com/rigup-dev/rigup/internal/config"
	"github.com/rigup-dev/rigup/internal/plan"
	"github.com/rigup-dev/rigup/internal/platform"
	"github.com/rigup-dev/rigup/internal/target"
)

const (
	// LLVMVendor names the toolchain repository vendor in repo actions.
	LLVMVendor = "llvm"

	// BaseToolchainPackage is the unconditional compiler baseline on
	// Linux hosts.
	BaseToolchainPackage = "build-essential"

	// AndroidLicenseID names both the license and its file under the
	// SDK licenses directory.
	AndroidLicenseID = "android-sdk-license"

	// AndroidLicenseToken is the acceptance hash appended to the
	// license file. The SDK manager treats its presence as agreement.
	AndroidLicenseToken = "24333f8a63b6825ea9c5514f83c2829b004d1fee"

	// ShimPattern and ShimReplacement describe the NDK libunwind fix:
	// every libunwind.a is replaced by a linker script deferring to the
	// toolchain's own unwinder.
	ShimPattern     = "libunwind.a"
	ShimReplacement = "INPUT(-lunwind)\n"
)

// ClangPackage returns the alternate compiler package for an LLVM
// repository major version.
func ClangPackage(llvmVersion int) string {
	return fmt.Sprintf("clang-%d", llvmVersion)
}

// Resolve builds the provisioning plan for a classified target on the
// given host. It is pure: identical spec, host, and env snapshots
// yield identical plans, and no I/O happens here.
//
// Plans open with the host block. A Linux host always configures the
// pinned LLVM repository and installs the base toolchain before any
// target packages, so installs that reference the repository find it
// configured; the alternate compiler joins when the matched class asks
// for it. The target block follows: license acceptance, component
// install, target packages, then the shim patch.
func Resolve(spec target.Spec, host platform.HostOS, env config.Env) *plan.Plan {
	p := plan.New(spec.String(), host.String())
	rule := Match(spec)

	if host == platform.Linux {
		p.Add(plan.ConfigureRepo{Vendor: LLVMVendor, Version: env.LLVMVersion})
		p.Add(plan.InstallPackages{Packages: []string{BaseToolchainPackage}})
		if rule.NeedsClang {
			p.Add(plan.InstallPackages{Packages: []string{ClangPackage(env.LLVMVersion)}})
		}
	}

	if rule.AndroidSDK && env.SDKRoot != "" {
		p.Add(plan.AcceptLicense{
			LicenseID: AndroidLicenseID,
			Path:      filepath.Join(env.LicensesDir(), AndroidLicenseID),
			Token:     AndroidLicenseToken,
		})
		p.Add(plan.InstallComponent{ID: "ndk;" + env.NDKVersion})
	}

	if rule.Component != "" && (rule.RequiresFeature == "" || spec.HasFeature(rule.RequiresFeature)) {
		p.Add(plan.InstallComponent{ID: rule.Component})
	}

	if len(rule.Packages) > 0 {
		p.Add(plan.InstallPackages{Packages: rule.Packages})
	}

	if rule.AndroidSDK {
		// A host with only ANDROID_NDK_ROOT set still gets its
		// preinstalled NDK patched; an empty root is carried through
		// and fails at execution with a pointer at the variables.
		p.Add(plan.PatchLibraryShim{
			SearchRoot:      env.NDKRoot,
			FilenamePattern: ShimPattern,
			Replacement:     ShimReplacement,
		})
	}

	return p
}
