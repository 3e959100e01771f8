package pkgmgr

import (
	"context"
	"strings"

	"github.com/rigup-dev/rigup/internal/log"
)

// installArgs keeps apt-get non-interactive and minimal. Suggests and
// recommends pull in hundreds of megabytes of packages a cross
// toolchain never needs.
var installArgs = []string{"-yq", "--no-install-suggests", "--no-install-recommends"}

// AptGet drives apt-get for package installation and index refresh.
type AptGet struct {
	runner Runner
	logger log.Logger

	// Sudo prefixes every invocation with sudo. CI images that run
	// provisioning as root disable it through user configuration.
	Sudo bool

	// Options are extra apt-get arguments appended after the defaults,
	// for proxies and local mirrors.
	Options []string
}

func NewAptGet(runner Runner, sudo bool, options []string, logger log.Logger) *AptGet {
	if logger == nil {
		logger = log.Default()
	}
	return &AptGet{runner: runner, logger: logger, Sudo: sudo, Options: options}
}

// command assembles the argv for an apt-get subcommand, applying the
// sudo prefix and configured extra options.
func (a *AptGet) command(subcommand string, rest ...string) (string, []string) {
	args := make([]string, 0, len(installArgs)+len(a.Options)+len(rest)+2)
	name := "apt-get"
	if a.Sudo {
		name = "sudo"
		args = append(args, "apt-get")
	}
	args = append(args, installArgs...)
	args = append(args, a.Options...)
	args = append(args, subcommand)
	args = append(args, rest...)
	return name, args
}

// Install installs the named packages in one apt-get transaction.
// Installing nothing is a no-op, not an error.
func (a *AptGet) Install(ctx context.Context, packages []string) error {
	if len(packages) == 0 {
		return nil
	}
	a.logger.Info("installing packages", "packages", strings.Join(packages, " "))
	name, args := a.command("install", packages...)
	return a.runner.Run(ctx, name, args...)
}

// Update refreshes the package index. Required after a new repository
// is configured, before its packages become installable.
func (a *AptGet) Update(ctx context.Context) error {
	a.logger.Info("refreshing package index")
	name, args := a.command("update")
	return a.runner.Run(ctx, name, args...)
}
