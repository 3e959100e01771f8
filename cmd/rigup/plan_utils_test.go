package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rigup-dev/rigup/internal/plan"
	"github.com/rigup-dev/rigup/internal/platform"
)

func TestRenderPlan(t *testing.T) {
	p := plan.New("aarch64-unknown-linux-gnu", "linux")
	p.Add(plan.ConfigureRepo{Vendor: "llvm", Version: 15})
	p.Add(plan.InstallPackages{Packages: []string{"build-essential"}})
	p.Add(plan.InstallPackages{Packages: []string{"clang-15"}})

	var sb strings.Builder
	renderPlan(&sb, p)
	got := sb.String()

	want := `Plan for aarch64-unknown-linux-gnu on linux

Steps (3):
  1. [configure_repo] configure llvm-15 package repository
  2. [install_packages] install packages: build-essential
  3. [install_packages] install packages: clang-15
`
	if got != want {
		t.Errorf("renderPlan() =\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderPlanEmpty(t *testing.T) {
	p := plan.New("host", "macos")

	var sb strings.Builder
	renderPlan(&sb, p)
	got := sb.String()

	if !strings.Contains(got, "Plan for host on macos") {
		t.Errorf("renderPlan() missing header, got:\n%s", got)
	}
	if !strings.Contains(got, "nothing to provision") {
		t.Errorf("renderPlan() missing empty-plan message, got:\n%s", got)
	}
}

func TestResolvePlanUsesConfigPins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("llvm_version = 17\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("RIGUP_CONFIG", path)

	p, in, err := resolvePlan("aarch64-unknown-linux-gnu", "")
	if err != nil {
		t.Fatalf("resolvePlan: %v", err)
	}

	if in.env.LLVMVersion != 17 {
		t.Errorf("env.LLVMVersion = %d, want 17", in.env.LLVMVersion)
	}
	if p.Target != "aarch64-unknown-linux-gnu" {
		t.Errorf("plan target = %q, want %q", p.Target, "aarch64-unknown-linux-gnu")
	}
	if p.Host != platform.DetectHostOS().String() {
		t.Errorf("plan host = %q, want %q", p.Host, platform.DetectHostOS().String())
	}

	// The host block reflects the configured pin on Linux hosts.
	if in.host == platform.Linux {
		repo, ok := p.Steps[0].Action.(plan.ConfigureRepo)
		if !ok {
			t.Fatalf("first action = %T, want ConfigureRepo", p.Steps[0].Action)
		}
		if repo.Version != 17 {
			t.Errorf("repo version = %d, want 17", repo.Version)
		}
	}
}

func TestResolvePlanMissingConfigUsesDefaults(t *testing.T) {
	t.Setenv("RIGUP_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))

	_, in, err := resolvePlan("", "")
	if err != nil {
		t.Fatalf("resolvePlan: %v", err)
	}

	if !in.spec.HostNative {
		t.Error("empty target should classify as host-native")
	}
	if in.env.LLVMVersion != 15 {
		t.Errorf("env.LLVMVersion = %d, want default 15", in.env.LLVMVersion)
	}
	if in.env.NDKVersion != "26.3.11579264" {
		t.Errorf("env.NDKVersion = %q, want default pin", in.env.NDKVersion)
	}
}

func TestResolvePlanRejectsBrokenConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("llvm_version = [not toml"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("RIGUP_CONFIG", path)

	_, _, err := resolvePlan("aarch64-unknown-linux-gnu", "")
	if err == nil {
		t.Fatal("expected error for unparseable config file")
	}
}
