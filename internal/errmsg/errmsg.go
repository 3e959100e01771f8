// Package errmsg provides enhanced error message formatting with actionable suggestions.
package errmsg

import (
	"errors"
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/rigup-dev/rigup/internal/config"
	"github.com/rigup-dev/rigup/internal/provision"
)

// ErrorContext provides additional context for error formatting
type ErrorContext struct {
	Target string // The target being provisioned (for suggestions)
}

// Format returns a formatted error message with possible causes and suggestions.
// The context parameter is optional - pass nil for generic formatting.
func Format(err error, ctx *ErrorContext) string {
	if err == nil {
		return ""
	}

	errMsg := err.Error()

	// Check for typed provisioning errors first; they carry the most
	// context about what was being attempted.
	var repoErr *provision.RepoConfigError
	if errors.As(err, &repoErr) {
		return formatRepoConfigError(err, repoErr)
	}

	var pkgErr *provision.PackageInstallError
	if errors.As(err, &pkgErr) {
		return formatPackageInstallError(err, ctx)
	}

	var licErr *provision.LicenseError
	if errors.As(err, &licErr) {
		return formatLicenseError(err, licErr)
	}

	var compErr *provision.ComponentInstallError
	if errors.As(err, &compErr) {
		return formatComponentInstallError(err, compErr)
	}

	var shimErr *provision.ShimPatchError
	if errors.As(err, &shimErr) {
		return formatShimPatchError(err, shimErr)
	}

	// Check for network errors
	var netErr net.Error
	if errors.As(err, &netErr) {
		return formatNetworkError(netErr)
	}

	// Check for connection-related errors by message
	if isNetworkError(errMsg) {
		return formatGenericNetworkError(errMsg)
	}

	// Check for permission errors
	if isPermissionError(errMsg) {
		return formatPermissionError(errMsg)
	}

	// Return original error for unrecognized types
	return errMsg
}

// Fprint writes a formatted error message to w with an Error: prefix.
func Fprint(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(w, "Error: %s\n", Format(err, nil))
}

func formatRepoConfigError(err error, repoErr *provision.RepoConfigError) string {
	var sb strings.Builder
	sb.WriteString(err.Error())
	sb.WriteString("\n")

	if strings.Contains(err.Error(), "fingerprint mismatch") {
		sb.WriteString("\nPossible causes:\n")
		sb.WriteString("  - The repository signing key was rotated\n")
		sb.WriteString("  - The key download was tampered with in transit\n")

		sb.WriteString("\nSuggestions:\n")
		sb.WriteString("  - Do NOT install the downloaded key\n")
		sb.WriteString(fmt.Sprintf("  - Check the %s repository announcements for a key rotation\n", repoErr.Vendor))
		sb.WriteString("  - Report the issue if the pinned fingerprint is stale\n")
		return sb.String()
	}

	sb.WriteString("\nPossible causes:\n")
	sb.WriteString("  - Network connectivity issue reaching the repository\n")
	sb.WriteString("  - apt sources or keyrings directory not writable\n")

	sb.WriteString("\nSuggestions:\n")
	sb.WriteString("  - Check your internet connection\n")
	sb.WriteString("  - Run 'rigup config get sudo' and enable sudo if disabled\n")
	sb.WriteString("  - Try again in a few minutes\n")

	return sb.String()
}

func formatPackageInstallError(err error, ctx *ErrorContext) string {
	var sb strings.Builder
	sb.WriteString(err.Error())
	sb.WriteString("\n")

	sb.WriteString("\nPossible causes:\n")
	if isNotFoundError(err.Error()) {
		sb.WriteString("  - The package index is stale\n")
		sb.WriteString("  - The package is not available for this release codename\n")
	} else {
		sb.WriteString("  - The package manager is held by another process\n")
		sb.WriteString("  - Insufficient privileges for package installation\n")
	}

	sb.WriteString("\nSuggestions:\n")
	sb.WriteString("  - Run 'sudo apt-get update' and retry\n")
	sb.WriteString("  - Re-run with --verbose to stream package manager output\n")
	if ctx != nil && ctx.Target != "" {
		sb.WriteString(fmt.Sprintf("  - Run 'rigup plan --target %s' to inspect the full plan\n", ctx.Target))
	}
	sb.WriteString("  - Run 'rigup doctor' to check the host setup\n")

	return sb.String()
}

func formatLicenseError(err error, licErr *provision.LicenseError) string {
	var sb strings.Builder
	sb.WriteString(err.Error())
	sb.WriteString("\n")

	sb.WriteString("\nPossible causes:\n")
	sb.WriteString("  - The SDK licenses directory is not writable\n")
	sb.WriteString("  - The SDK root points at a system-owned installation\n")

	sb.WriteString("\nSuggestions:\n")
	sb.WriteString(fmt.Sprintf("  - Check ownership of the directory holding %s\n", licErr.Path))
	sb.WriteString(fmt.Sprintf("  - Point %s at an SDK your user owns\n", config.EnvSDKRoot))

	return sb.String()
}

func formatComponentInstallError(err error, compErr *provision.ComponentInstallError) string {
	var sb strings.Builder
	sb.WriteString(err.Error())
	sb.WriteString("\n")

	sb.WriteString("\nPossible causes:\n")
	if strings.Contains(compErr.ID, ";") {
		sb.WriteString("  - sdkmanager is missing under the SDK root\n")
		sb.WriteString("  - The Android cmdline-tools package is not installed\n")

		sb.WriteString("\nSuggestions:\n")
		sb.WriteString("  - Install the Android SDK command-line tools\n")
		sb.WriteString(fmt.Sprintf("  - Verify %s points at a complete SDK\n", config.EnvSDKRoot))
	} else {
		sb.WriteString("  - cargo is not on PATH\n")
		sb.WriteString("  - The component failed to build from source\n")

		sb.WriteString("\nSuggestions:\n")
		sb.WriteString("  - Install a Rust toolchain via rustup\n")
		sb.WriteString("  - Re-run with --verbose to stream build output\n")
	}
	sb.WriteString("  - Run 'rigup doctor' to check the host setup\n")

	return sb.String()
}

func formatShimPatchError(err error, shimErr *provision.ShimPatchError) string {
	var sb strings.Builder
	sb.WriteString(err.Error())
	sb.WriteString("\n")

	sb.WriteString("\nPossible causes:\n")
	if shimErr.SearchRoot == "" {
		sb.WriteString("  - No Android SDK or NDK root is configured\n")
	} else {
		sb.WriteString("  - The NDK is not installed at the expected path\n")
		sb.WriteString("  - The NDK directory is not writable\n")
	}

	sb.WriteString("\nSuggestions:\n")
	sb.WriteString(fmt.Sprintf("  - Export %s (or %s for a standalone NDK)\n", config.EnvSDKRoot, config.EnvNDKRoot))
	sb.WriteString("  - Run 'rigup doctor' to list installed NDK releases\n")

	return sb.String()
}

func formatNetworkError(err net.Error) string {
	var sb strings.Builder
	sb.WriteString(err.Error())
	sb.WriteString("\n")

	sb.WriteString("\nPossible causes:\n")
	if err.Timeout() {
		sb.WriteString("  - Request timed out\n")
		sb.WriteString("  - Slow or unstable network connection\n")
	} else {
		sb.WriteString("  - Network connectivity issue\n")
		sb.WriteString("  - DNS resolution failure\n")
	}
	sb.WriteString("  - Firewall or proxy blocking the connection\n")

	sb.WriteString("\nSuggestions:\n")
	sb.WriteString("  - Check your internet connection\n")
	sb.WriteString("  - Try again in a few minutes\n")
	if err.Timeout() {
		sb.WriteString("  - Check if you're behind a slow proxy\n")
	}

	return sb.String()
}

func formatGenericNetworkError(errMsg string) string {
	var sb strings.Builder
	sb.WriteString(errMsg)
	sb.WriteString("\n")

	sb.WriteString("\nPossible causes:\n")
	sb.WriteString("  - Network connectivity issue\n")
	sb.WriteString("  - DNS resolution failure\n")
	sb.WriteString("  - Service temporarily unavailable\n")

	sb.WriteString("\nSuggestions:\n")
	sb.WriteString("  - Check your internet connection\n")
	sb.WriteString("  - Try again in a few minutes\n")

	return sb.String()
}

func formatPermissionError(errMsg string) string {
	var sb strings.Builder
	sb.WriteString(errMsg)
	sb.WriteString("\n")

	sb.WriteString("\nPossible causes:\n")
	sb.WriteString("  - Insufficient permissions for system paths\n")
	sb.WriteString("  - Package manager commands running without sudo\n")

	sb.WriteString("\nSuggestions:\n")
	sb.WriteString("  - Run 'rigup config set sudo true' to use sudo for system commands\n")
	sb.WriteString("  - Check permissions on /etc/apt/sources.list.d and /etc/apt/keyrings\n")

	return sb.String()
}

// isNetworkError checks if the error message indicates a network issue
func isNetworkError(msg string) bool {
	lower := strings.ToLower(msg)
	return strings.Contains(lower, "connection refused") ||
		strings.Contains(lower, "connection reset") ||
		strings.Contains(lower, "no such host") ||
		strings.Contains(lower, "network is unreachable") ||
		strings.Contains(lower, "dial tcp") ||
		strings.Contains(lower, "timeout") ||
		strings.Contains(lower, "i/o timeout")
}

// isNotFoundError checks if the error message indicates a missing package
func isNotFoundError(msg string) bool {
	lower := strings.ToLower(msg)
	return strings.Contains(lower, "unable to locate") ||
		strings.Contains(lower, "not found") ||
		strings.Contains(lower, "has no installation candidate")
}

// isPermissionError checks if the error message indicates a permission issue
func isPermissionError(msg string) bool {
	lower := strings.ToLower(msg)
	return strings.Contains(lower, "permission denied") ||
		strings.Contains(lower, "access denied") ||
		strings.Contains(lower, "operation not permitted")
}
