// Package pkgmgr shells out to the system package manager.
//
// rigup never interprets package manager output; it composes the
// command line, runs it, and propagates failures with the captured
// output attached. apt-get is the only backend.
package pkgmgr

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Runner executes external commands. Production code uses ExecRunner;
// tests substitute a recorder so nothing touches the system.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs commands with os/exec. When Stream is set the child
// inherits stdout/stderr so package manager progress stays visible;
// otherwise output is captured and attached to the error on failure.
type ExecRunner struct {
	Stream bool
}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)

	if r.Stream {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
		}
		return nil
	}

	out, err := cmd.CombinedOutput()
	if err != nil {
		out = bytes.TrimSpace(out)
		if len(out) > 0 {
			return fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, out)
		}
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}
