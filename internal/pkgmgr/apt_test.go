package pkgmgr

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

type call struct {
	name string
	args []string
}

// fakeRunner records invocations and optionally fails them.
type fakeRunner struct {
	calls []call
	err   error
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) error {
	f.calls = append(f.calls, call{name: name, args: args})
	return f.err
}

func TestInstallComposesCommand(t *testing.T) {
	tests := []struct {
		name     string
		sudo     bool
		options  []string
		packages []string
		wantName string
		wantArgs []string
	}{
		{
			name:     "plain install",
			packages: []string{"qemu-user"},
			wantName: "apt-get",
			wantArgs: []string{"-yq", "--no-install-suggests", "--no-install-recommends", "install", "qemu-user"},
		},
		{
			name:     "sudo prefixes apt-get",
			sudo:     true,
			packages: []string{"build-essential"},
			wantName: "sudo",
			wantArgs: []string{"apt-get", "-yq", "--no-install-suggests", "--no-install-recommends", "install", "build-essential"},
		},
		{
			name:     "extra options come after defaults",
			options:  []string{"-o", "Acquire::Retries=3"},
			packages: []string{"clang-15", "gcc-aarch64-linux-gnu"},
			wantName: "apt-get",
			wantArgs: []string{"-yq", "--no-install-suggests", "--no-install-recommends", "-o", "Acquire::Retries=3", "install", "clang-15", "gcc-aarch64-linux-gnu"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{}
			apt := NewAptGet(runner, tt.sudo, tt.options, nil)
			if err := apt.Install(context.Background(), tt.packages); err != nil {
				t.Fatalf("Install() error = %v", err)
			}
			if len(runner.calls) != 1 {
				t.Fatalf("Install() ran %d commands, want 1", len(runner.calls))
			}
			got := runner.calls[0]
			if got.name != tt.wantName {
				t.Errorf("Install() command = %q, want %q", got.name, tt.wantName)
			}
			if !reflect.DeepEqual(got.args, tt.wantArgs) {
				t.Errorf("Install() args = %v, want %v", got.args, tt.wantArgs)
			}
		})
	}
}

func TestInstallNothingIsNoOp(t *testing.T) {
	runner := &fakeRunner{}
	apt := NewAptGet(runner, true, nil, nil)
	if err := apt.Install(context.Background(), nil); err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	if len(runner.calls) != 0 {
		t.Errorf("Install() ran %d commands, want 0", len(runner.calls))
	}
}

func TestInstallPropagatesRunnerError(t *testing.T) {
	wantErr := errors.New("exit status 100")
	runner := &fakeRunner{err: wantErr}
	apt := NewAptGet(runner, false, nil, nil)

	err := apt.Install(context.Background(), []string{"clang-15"})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Install() error = %v, want %v", err, wantErr)
	}
}

func TestUpdate(t *testing.T) {
	runner := &fakeRunner{}
	apt := NewAptGet(runner, true, nil, nil)
	if err := apt.Update(context.Background()); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if len(runner.calls) != 1 {
		t.Fatalf("Update() ran %d commands, want 1", len(runner.calls))
	}
	got := runner.calls[0]
	if got.name != "sudo" {
		t.Errorf("Update() command = %q, want %q", got.name, "sudo")
	}
	joined := strings.Join(got.args, " ")
	if !strings.HasSuffix(joined, "update") {
		t.Errorf("Update() args = %v, want trailing update subcommand", got.args)
	}
	if !strings.HasPrefix(joined, "apt-get -yq") {
		t.Errorf("Update() args = %v, want apt-get -yq prefix", got.args)
	}
}
