// Package provision applies action plans to the host.
//
// The executor walks plan steps strictly in order and stops at the
// first failure. There is no retry and no rollback: a halted run is
// reported with the failing step, and rerunning after the cause is
// fixed converges because every action is idempotent or harmlessly
// repeatable.
package provision

import (
	"context"
	"fmt"

	"github.com/rigup-dev/rigup/internal/androidsdk"
	"github.com/rigup-dev/rigup/internal/config"
	"github.com/rigup-dev/rigup/internal/log"
	"github.com/rigup-dev/rigup/internal/plan"
)

// PackageInstaller installs system packages. *pkgmgr.AptGet satisfies
// it.
type PackageInstaller interface {
	Install(ctx context.Context, packages []string) error
}

// ComponentManager installs SDK and tooling components.
// *components.Router satisfies it.
type ComponentManager interface {
	Install(ctx context.Context, id string) error
}

// RepoConfigurator installs package repositories.
// *aptrepo.Configurator satisfies it.
type RepoConfigurator interface {
	Configure(ctx context.Context, vendor string, version int) error
}

// StepObserver receives step lifecycle notifications alongside the
// structured log. The CLI installs a terminal reporter; the default
// does nothing.
type StepObserver interface {
	StepStarted(index, total int, description string)
	StepApplied(index, total int, description string)
	StepFailed(index, total int, description string)
}

type noopObserver struct{}

func (noopObserver) StepStarted(int, int, string) {}
func (noopObserver) StepApplied(int, int, string) {}
func (noopObserver) StepFailed(int, int, string)  {}

// Executor applies plan steps through its collaborators. License and
// shim actions are plain file manipulation and run in-process.
type Executor struct {
	packages   PackageInstaller
	components ComponentManager
	repos      RepoConfigurator
	logger     log.Logger
	observer   StepObserver

	// configured tracks repositories handled during this run, so a plan
	// naming the same repository twice configures it once.
	configured map[string]bool
}

func NewExecutor(packages PackageInstaller, components ComponentManager, repos RepoConfigurator, logger log.Logger) *Executor {
	if logger == nil {
		logger = log.Default()
	}
	return &Executor{
		packages:   packages,
		components: components,
		repos:      repos,
		logger:     logger,
		observer:   noopObserver{},
		configured: make(map[string]bool),
	}
}

// SetObserver installs a step observer for terminal feedback.
func (e *Executor) SetObserver(o StepObserver) {
	if o != nil {
		e.observer = o
	}
}

// Run applies every step of the plan in order, marking each applied as
// it completes. The first failure marks its step failed and halts the
// run; earlier steps stay applied.
func (e *Executor) Run(ctx context.Context, p *plan.Plan) error {
	total := len(p.Steps)
	for i, step := range p.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		e.logger.Info("applying step",
			"step", i+1, "total", total, "action", string(step.Action.Kind()))
		e.observer.StepStarted(i+1, total, step.Action.Describe())

		if err := e.apply(ctx, step.Action); err != nil {
			step.Status = plan.StatusFailed
			e.observer.StepFailed(i+1, total, step.Action.Describe())
			return fmt.Errorf("step %d (%s) failed: %w", i+1, step.Action.Kind(), err)
		}
		step.Status = plan.StatusApplied
		e.observer.StepApplied(i+1, total, step.Action.Describe())
	}
	return nil
}

// apply dispatches one action to its collaborator and wraps any
// failure in the action's typed error. Collaborator errors are carried
// unchanged underneath.
func (e *Executor) apply(ctx context.Context, act plan.Action) error {
	switch a := act.(type) {
	case plan.ConfigureRepo:
		if e.configured[a.DedupKey()] {
			e.logger.Debug("repository already configured this run", "repo", a.DedupKey())
			return nil
		}
		if err := e.repos.Configure(ctx, a.Vendor, a.Version); err != nil {
			return &RepoConfigError{Vendor: a.Vendor, Version: a.Version, Err: err}
		}
		e.configured[a.DedupKey()] = true
		return nil

	case plan.InstallPackages:
		if err := e.packages.Install(ctx, a.Packages); err != nil {
			return &PackageInstallError{Packages: a.Packages, Err: err}
		}
		return nil

	case plan.AcceptLicense:
		added, err := androidsdk.AcceptLicense(a.Path, a.Token)
		if err != nil {
			return &LicenseError{LicenseID: a.LicenseID, Path: a.Path, Err: err}
		}
		if added {
			e.logger.Info("accepted license", "license", a.LicenseID)
		} else {
			e.logger.Debug("license already accepted", "license", a.LicenseID)
		}
		return nil

	case plan.InstallComponent:
		if err := e.components.Install(ctx, a.ID); err != nil {
			return &ComponentInstallError{ID: a.ID, Err: err}
		}
		return nil

	case plan.PatchLibraryShim:
		if a.SearchRoot == "" {
			return &ShimPatchError{Err: fmt.Errorf(
				"no NDK root found; set %s or %s", config.EnvSDKRoot, config.EnvNDKRoot)}
		}
		patched, err := androidsdk.PatchShims(a.SearchRoot, a.FilenamePattern, a.Replacement, e.logger)
		if err != nil {
			return &ShimPatchError{SearchRoot: a.SearchRoot, Err: err}
		}
		e.logger.Info("patched library shims", "root", a.SearchRoot, "patched", patched)
		return nil

	default:
		return fmt.Errorf("unknown action %q", act.Kind())
	}
}
