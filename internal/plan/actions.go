// Package plan defines the provisioning action data model.
//
// A Plan is an ordered list of typed actions resolved for one target on
// one host. Actions are pure data: the resolver builds them, the
// executor interprets them. Plans are built fresh per invocation and
// never persisted.
package plan

import (
	"fmt"
	"strings"
)

// Kind identifies an action variant in logs and JSON output.
type Kind string

const (
	KindInstallPackages  Kind = "install_packages"
	KindConfigureRepo    Kind = "configure_repo"
	KindAcceptLicense    Kind = "accept_license"
	KindPatchLibraryShim Kind = "patch_library_shim"
	KindInstallComponent Kind = "install_component"
)

// Action is one provisioning step. Implementations are data only.
type Action interface {
	Kind() Kind
	Describe() string
}

// InstallPackages installs the named packages in a single package
// manager transaction. Order within the list is preserved.
type InstallPackages struct {
	Packages []string `json:"packages"`
}

func (a InstallPackages) Kind() Kind { return KindInstallPackages }

func (a InstallPackages) Describe() string {
	return "install packages: " + strings.Join(a.Packages, " ")
}

// ConfigureRepo makes a vendor's pinned toolchain repository available
// to the package manager. Repeated configuration of the same
// vendor/version pair within a process is deduplicated by the executor.
type ConfigureRepo struct {
	Vendor  string `json:"vendor"`
	Version int    `json:"version"`
}

func (a ConfigureRepo) Kind() Kind { return KindConfigureRepo }

func (a ConfigureRepo) Describe() string {
	return fmt.Sprintf("configure %s-%d package repository", a.Vendor, a.Version)
}

// DedupKey identifies the repository for the executor's once-per-process
// bookkeeping.
func (a ConfigureRepo) DedupKey() string {
	return fmt.Sprintf("%s/%d", a.Vendor, a.Version)
}

// AcceptLicense records acceptance of a vendor license by appending the
// acceptance token to the license file, once. A file already carrying
// the token is left byte-identical.
type AcceptLicense struct {
	LicenseID string `json:"license_id"`
	Path      string `json:"path"`
	Token     string `json:"token"`
}

func (a AcceptLicense) Kind() Kind { return KindAcceptLicense }

func (a AcceptLicense) Describe() string {
	return "accept license " + a.LicenseID
}

// PatchLibraryShim overwrites every file under SearchRoot whose base
// name matches FilenamePattern with Replacement. Patching an already
// patched tree rewrites identical bytes, so the action is a fixed
// point.
type PatchLibraryShim struct {
	SearchRoot      string `json:"search_root"`
	FilenamePattern string `json:"filename_pattern"`
	Replacement     string `json:"replacement"`
}

func (a PatchLibraryShim) Kind() Kind { return KindPatchLibraryShim }

func (a PatchLibraryShim) Describe() string {
	return fmt.Sprintf("patch %s under %s", a.FilenamePattern, a.SearchRoot)
}

// InstallComponent installs an SDK or tooling component by identifier,
// e.g. "ndk;26.3.11579264" or "wasm-bindgen-cli".
type InstallComponent struct {
	ID string `json:"id"`
}

func (a InstallComponent) Kind() Kind { return KindInstallComponent }

func (a InstallComponent) Describe() string {
	return "install component " + a.ID
}
