// Package components installs SDK and tooling components that do not
// come from apt: sdkmanager packages such as "ndk;26.3.11579264" and
// cargo-distributed tools such as wasm-bindgen-cli.
package components

import "context"

// Runner executes external commands. *pkgmgr.ExecRunner satisfies it;
// tests substitute a recorder.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// Manager installs one component by identifier.
type Manager interface {
	Install(ctx context.Context, id string) error
}
