package functional

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"
)

// scrubbedVars are dropped from the inherited environment so plans
// resolve identically on developer machines that export Android roots
// or rigup settings of their own.
var scrubbedVars = map[string]bool{
	"ANDROID_HOME":     true,
	"ANDROID_SDK_ROOT": true,
	"ANDROID_NDK_ROOT": true,
	"RIGUP_CONFIG":     true,
	"RIGUP_QUIET":      true,
	"RIGUP_VERBOSE":    true,
	"RIGUP_DEBUG":      true,
}

// aDefaultConfiguration is a no-op because the Before hook already
// isolates the config file. This step exists so feature files read
// naturally.
func aDefaultConfiguration(ctx context.Context) (context.Context, error) {
	return ctx, nil
}

// theConfigFileContains writes the scenario's config file, which iRun
// points RIGUP_CONFIG at.
func theConfigFileContains(ctx context.Context, doc *godog.DocString) (context.Context, error) {
	state := getState(ctx)
	if state == nil {
		return ctx, fmt.Errorf("no test state; is the Before hook running?")
	}
	path := filepath.Join(state.workDir, "config.toml")
	return ctx, os.WriteFile(path, []byte(doc.Content+"\n"), 0o644)
}

// anAndroidSDKRootAt creates a directory under the scratch dir and
// exports it as ANDROID_HOME for subsequent runs.
func anAndroidSDKRootAt(ctx context.Context, name string) (context.Context, error) {
	state := getState(ctx)
	if state == nil {
		return ctx, fmt.Errorf("no test state; is the Before hook running?")
	}
	sdkRoot := filepath.Join(state.workDir, name)
	if err := os.MkdirAll(sdkRoot, 0o755); err != nil {
		return ctx, err
	}
	state.extraEnv["ANDROID_HOME"] = sdkRoot
	return ctx, nil
}

func theEnvironmentVariableIs(ctx context.Context, name, value string) error {
	state := getState(ctx)
	state.extraEnv[name] = value
	return nil
}

// iRun executes a command string, replacing "rigup" with the test binary path.
func iRun(ctx context.Context, command string) (context.Context, error) {
	state := getState(ctx)
	if state == nil {
		return ctx, fmt.Errorf("no test state; is the Before hook running?")
	}

	// Replace "rigup" at the start of the command with the test binary path
	args := strings.Fields(command)
	if len(args) > 0 && args[0] == "rigup" {
		args[0] = state.binPath
	}

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = state.workDir

	// Build environment: drop host Android and rigup variables, pin the
	// config file into the scratch dir, then layer scenario overrides on
	// top. Later entries win, so overrides shadow the inherited set.
	var env []string
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if scrubbedVars[name] {
			continue
		}
		env = append(env, kv)
	}
	env = append(env, "RIGUP_CONFIG="+filepath.Join(state.workDir, "config.toml"))
	for name, value := range state.extraEnv {
		env = append(env, name+"="+value)
	}
	if len(state.hiddenBinaries) > 0 {
		env = append(env, "PATH="+filteredPATH(state.hiddenBinaries))
	}
	cmd.Env = env

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	state.stdout = stdout.String()
	state.stderr = stderr.String()

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			state.exitCode = exitErr.ExitCode()
		} else {
			return ctx, fmt.Errorf("command execution failed: %w", err)
		}
	} else {
		state.exitCode = 0
	}

	return ctx, nil
}

func theExitCodeIs(ctx context.Context, expected int) error {
	state := getState(ctx)
	if state.exitCode != expected {
		return fmt.Errorf("expected exit code %d, got %d\nstdout: %s\nstderr: %s",
			expected, state.exitCode, state.stdout, state.stderr)
	}
	return nil
}

func theExitCodeIsNot(ctx context.Context, notExpected int) error {
	state := getState(ctx)
	if state.exitCode == notExpected {
		return fmt.Errorf("expected exit code to not be %d\nstdout: %s\nstderr: %s",
			notExpected, state.stdout, state.stderr)
	}
	return nil
}

func theOutputContains(ctx context.Context, text string) error {
	state := getState(ctx)
	if !strings.Contains(state.stdout, text) {
		return fmt.Errorf("expected stdout to contain %q, got:\n%s", text, state.stdout)
	}
	return nil
}

// theOutputContainsBlock is the doc string form of theOutputContains,
// for assertion text that itself contains double quotes (JSON output).
func theOutputContainsBlock(ctx context.Context, doc *godog.DocString) error {
	state := getState(ctx)
	text := strings.TrimSpace(doc.Content)
	if !strings.Contains(state.stdout, text) {
		return fmt.Errorf("expected stdout to contain %q, got:\n%s", text, state.stdout)
	}
	return nil
}

func theOutputDoesNotContain(ctx context.Context, text string) error {
	state := getState(ctx)
	if strings.Contains(state.stdout, text) {
		return fmt.Errorf("expected stdout not to contain %q, got:\n%s", text, state.stdout)
	}
	return nil
}

func theErrorOutputContains(ctx context.Context, text string) error {
	state := getState(ctx)
	if !strings.Contains(state.stderr, text) {
		return fmt.Errorf("expected stderr to contain %q, got:\n%s", text, state.stderr)
	}
	return nil
}

func theErrorOutputDoesNotContain(ctx context.Context, text string) error {
	state := getState(ctx)
	if strings.Contains(state.stderr, text) {
		return fmt.Errorf("expected stderr not to contain %q, got:\n%s", text, state.stderr)
	}
	return nil
}

func theFileExists(ctx context.Context, path string) error {
	state := getState(ctx)
	fullPath := filepath.Join(state.workDir, path)
	// Use Lstat to detect symlinks even if their target doesn't resolve
	if _, err := os.Lstat(fullPath); os.IsNotExist(err) {
		return fmt.Errorf("expected file %q to exist", fullPath)
	}
	return nil
}

func theFileDoesNotExist(ctx context.Context, path string) error {
	state := getState(ctx)
	fullPath := filepath.Join(state.workDir, path)
	if _, err := os.Lstat(fullPath); err == nil {
		return fmt.Errorf("expected file %q not to exist", fullPath)
	}
	return nil
}
