// Package config resolves rigup's process environment into a startup
// snapshot.
//
// Plan resolution is deterministic over its inputs, so everything read
// from the environment is captured exactly once, in main, into an Env
// value that flows through the resolver explicitly. Nothing below the
// CLI reads environment variables on its own.
package config

import (
	"os"
	"path/filepath"
)

const (
	// EnvSDKRoot is the primary Android SDK root variable.
	EnvSDKRoot = "ANDROID_HOME"

	// EnvSDKRootAlt is the older SDK root variable still exported by
	// many CI images; consulted when EnvSDKRoot is unset.
	EnvSDKRootAlt = "ANDROID_SDK_ROOT"

	// EnvNDKRoot points at a preinstalled NDK. It is the documented
	// fallback search root for shim patching when no SDK root is set.
	EnvNDKRoot = "ANDROID_NDK_ROOT"

	// EnvConfigFile overrides the user config file location.
	EnvConfigFile = "RIGUP_CONFIG"

	// DefaultLLVMVersion pins the LLVM toolchain repository major.
	DefaultLLVMVersion = 15

	// DefaultNDKVersion pins the Android NDK release the android class
	// installs and patches.
	DefaultNDKVersion = "26.3.11579264"

	// DefaultCodename keeps apt source lines well formed when the host
	// codename cannot be detected.
	DefaultCodename = "jammy"

	// AptSourcesDir receives per-repository source list files.
	AptSourcesDir = "/etc/apt/sources.list.d"

	// AptKeyringsDir receives repository signing keys.
	AptKeyringsDir = "/etc/apt/keyrings"
)

// Env is the startup snapshot consumed by plan resolution and the
// executor. Build it with ResolveEnv in main; construct it literally in
// tests.
type Env struct {
	// SDKRoot is the Android SDK root, empty when neither SDK variable
	// is set.
	SDKRoot string

	// NDKRoot is the shim-patch search root: the pinned NDK directory
	// under the SDK root when one is set, otherwise EnvNDKRoot,
	// otherwise empty.
	NDKRoot string

	// LLVMVersion is the toolchain repository major version.
	LLVMVersion int

	// NDKVersion is the pinned NDK release identifier.
	NDKVersion string

	// Codename is the distro codename for apt source lines.
	Codename string
}

// ResolveEnv captures the environment once. Zero-valued pins fall back
// to the package defaults; codename comes from the caller (detected
// from os-release, overridable) and defaults when empty.
func ResolveEnv(llvmVersion int, ndkVersion, codename string) Env {
	if llvmVersion == 0 {
		llvmVersion = DefaultLLVMVersion
	}
	if ndkVersion == "" {
		ndkVersion = DefaultNDKVersion
	}
	if codename == "" {
		codename = DefaultCodename
	}

	sdkRoot := os.Getenv(EnvSDKRoot)
	if sdkRoot == "" {
		sdkRoot = os.Getenv(EnvSDKRootAlt)
	}

	ndkRoot := ""
	if sdkRoot != "" {
		ndkRoot = filepath.Join(sdkRoot, "ndk", ndkVersion)
	} else {
		ndkRoot = os.Getenv(EnvNDKRoot)
	}

	return Env{
		SDKRoot:     sdkRoot,
		NDKRoot:     ndkRoot,
		LLVMVersion: llvmVersion,
		NDKVersion:  ndkVersion,
		Codename:    codename,
	}
}

// LicensesDir returns the SDK licenses directory, empty when no SDK
// root is set.
func (e Env) LicensesDir() string {
	if e.SDKRoot == "" {
		return ""
	}
	return filepath.Join(e.SDKRoot, "licenses")
}

// SDKManagerPath returns the sdkmanager binary path under the SDK
// root, empty when no SDK root is set.
func (e Env) SDKManagerPath() string {
	if e.SDKRoot == "" {
		return ""
	}
	return filepath.Join(e.SDKRoot, "cmdline-tools", "latest", "bin", "sdkmanager")
}
