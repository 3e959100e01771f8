package provision

import (
	"fmt"
	"strings"
)

// Every failure the executor produces is typed by the action that
// raised it, wraps the collaborator's error unchanged, and stops the
// run. Callers match with errors.As.

// RepoConfigError reports a failed package repository configuration.
type RepoConfigError struct {
	Vendor  string
	Version int
	Err     error
}

func (e *RepoConfigError) Error() string {
	return fmt.Sprintf("configuring %s-%d package repository: %v", e.Vendor, e.Version, e.Err)
}

func (e *RepoConfigError) Unwrap() error { return e.Err }

// LicenseError reports a failed license acceptance.
type LicenseError struct {
	LicenseID string
	Path      string
	Err       error
}

func (e *LicenseError) Error() string {
	return fmt.Sprintf("accepting license %s at %s: %v", e.LicenseID, e.Path, e.Err)
}

func (e *LicenseError) Unwrap() error { return e.Err }

// PackageInstallError reports a failed package installation.
type PackageInstallError struct {
	Packages []string
	Err      error
}

func (e *PackageInstallError) Error() string {
	return fmt.Sprintf("installing packages %s: %v", strings.Join(e.Packages, " "), e.Err)
}

func (e *PackageInstallError) Unwrap() error { return e.Err }

// ComponentInstallError reports a failed component installation.
type ComponentInstallError struct {
	ID  string
	Err error
}

func (e *ComponentInstallError) Error() string {
	return fmt.Sprintf("installing component %s: %v", e.ID, e.Err)
}

func (e *ComponentInstallError) Unwrap() error { return e.Err }

// ShimPatchError reports a failed library shim patch.
type ShimPatchError struct {
	SearchRoot string
	Err        error
}

func (e *ShimPatchError) Error() string {
	if e.SearchRoot == "" {
		return fmt.Sprintf("patching library shims: %v", e.Err)
	}
	return fmt.Sprintf("patching library shims under %s: %v", e.SearchRoot, e.Err)
}

func (e *ShimPatchError) Unwrap() error { return e.Err }
