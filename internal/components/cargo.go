package components

import (
	"context"

	"github.com/rigup-dev/rigup/internal/log"
)

// binOverrides narrows the build for crates that ship more binaries
// than provisioning needs.
var binOverrides = map[string][]string{
	"wasm-bindgen-cli": {"--bin", "wasm-bindgen-test-runner"},
}

// CargoInstall installs cargo-distributed tools with cargo install.
type CargoInstall struct {
	runner Runner
	logger log.Logger
}

func NewCargoInstall(runner Runner, logger log.Logger) *CargoInstall {
	if logger == nil {
		logger = log.Default()
	}
	return &CargoInstall{runner: runner, logger: logger}
}

// Install runs cargo install for the named crate. --force keeps the
// run idempotent when an older build is already present.
func (c *CargoInstall) Install(ctx context.Context, id string) error {
	args := []string{"install", id, "--force"}
	args = append(args, binOverrides[id]...)
	c.logger.Info("installing cargo component", "component", id)
	return c.runner.Run(ctx, "cargo", args...)
}
