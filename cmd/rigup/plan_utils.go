package main

import (
	"fmt"
	"io"

	"github.com/rigup-dev/rigup/internal/config"
	"github.com/rigup-dev/rigup/internal/log"
	"github.com/rigup-dev/rigup/internal/plan"
	"github.com/rigup-dev/rigup/internal/platform"
	"github.com/rigup-dev/rigup/internal/rules"
	"github.com/rigup-dev/rigup/internal/target"
	"github.com/rigup-dev/rigup/internal/userconfig"
)

// resolveInputs carries everything plan resolution consumed, so
// commands can reuse the snapshot for execution and error context.
type resolveInputs struct {
	spec target.Spec
	host platform.HostOS
	env  config.Env
	cfg  *userconfig.Config
}

// resolveForHost classifies the target argument and snapshots the host
// environment. A config file parse error is fatal; a malformed triple
// degrades to the host baseline with a warning.
func resolveForHost(rawTarget, features string) (resolveInputs, error) {
	cfg, err := userconfig.Load()
	if err != nil {
		return resolveInputs{}, err
	}

	spec := target.Classify(rawTarget, features)
	if spec.Malformed {
		log.Default().Warn("unrecognized target triple, provisioning host baseline", "target", spec.Triple)
	}

	return resolveInputs{
		spec: spec,
		host: platform.DetectHostOS(),
		env:  config.ResolveEnv(cfg.LLVMVersion, cfg.NDKVersion, platform.DetectCodename()),
		cfg:  cfg,
	}, nil
}

// resolvePlan builds the provisioning plan for the given target and
// feature flags.
func resolvePlan(rawTarget, features string) (*plan.Plan, resolveInputs, error) {
	in, err := resolveForHost(rawTarget, features)
	if err != nil {
		return nil, in, err
	}
	return rules.Resolve(in.spec, in.host, in.env), in, nil
}

// renderPlan writes the human-readable plan listing.
func renderPlan(w io.Writer, p *plan.Plan) {
	fmt.Fprintf(w, "Plan for %s on %s\n", p.Target, p.Host)
	fmt.Fprintln(w)

	if len(p.Steps) == 0 {
		fmt.Fprintln(w, "No steps: nothing to provision on this host.")
		return
	}

	fmt.Fprintf(w, "Steps (%d):\n", len(p.Steps))
	for i, step := range p.Steps {
		fmt.Fprintf(w, "  %d. [%s] %s\n", i+1, step.Action.Kind(), step.Action.Describe())
	}
}
