package rules

import (
	"reflect"
	"testing"

	"github.com/rigup-dev/rigup/internal/config"
	"github.com/rigup-dev/rigup/internal/plan"
	"github.com/rigup-dev/rigup/internal/platform"
	"github.com/rigup-dev/rigup/internal/target"
)

func testEnv() config.Env {
	return config.Env{
		LLVMVersion: 15,
		NDKVersion:  "26.3.11579264",
		Codename:    "jammy",
	}
}

func androidEnv() config.Env {
	env := testEnv()
	env.SDKRoot = "/opt/android"
	env.NDKRoot = "/opt/android/ndk/26.3.11579264"
	return env
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		features string
		host     platform.HostOS
		env      config.Env
		want     []plan.Action
	}{
		{
			name: "aarch64 gnu on linux",
			raw:  "aarch64-unknown-linux-gnu",
			host: platform.Linux,
			env:  testEnv(),
			want: []plan.Action{
				plan.ConfigureRepo{Vendor: "llvm", Version: 15},
				plan.InstallPackages{Packages: []string{"build-essential"}},
				plan.InstallPackages{Packages: []string{"clang-15"}},
				plan.InstallPackages{Packages: []string{"qemu-user", "gcc-aarch64-linux-gnu", "libc6-dev-arm64-cross"}},
			},
		},
		{
			name: "x86_64 musl needs only the alternate compiler",
			raw:  "x86_64-unknown-linux-musl",
			host: platform.Linux,
			env:  testEnv(),
			want: []plan.Action{
				plan.ConfigureRepo{Vendor: "llvm", Version: 15},
				plan.InstallPackages{Packages: []string{"build-essential"}},
				plan.InstallPackages{Packages: []string{"clang-15"}},
			},
		},
		{
			name: "arm gnueabi installs cross gcc without clang",
			raw:  "arm-unknown-linux-gnueabi",
			host: platform.Linux,
			env:  testEnv(),
			want: []plan.Action{
				plan.ConfigureRepo{Vendor: "llvm", Version: 15},
				plan.InstallPackages{Packages: []string{"build-essential"}},
				plan.InstallPackages{Packages: []string{"qemu-user", "gcc-arm-linux-gnueabi", "libc6-dev-armel-cross"}},
			},
		},
		{
			name: "unknown triple degrades to host baseline",
			raw:  "totally-unknown-triple-xyz",
			host: platform.Linux,
			env:  testEnv(),
			want: []plan.Action{
				plan.ConfigureRepo{Vendor: "llvm", Version: 15},
				plan.InstallPackages{Packages: []string{"build-essential"}},
			},
		},
		{
			name: "host native gets baseline only",
			raw:  "",
			host: platform.Linux,
			env:  testEnv(),
			want: []plan.Action{
				plan.ConfigureRepo{Vendor: "llvm", Version: 15},
				plan.InstallPackages{Packages: []string{"build-essential"}},
			},
		},
		{
			name: "malformed triple degrades to host baseline",
			raw:  "arm--linux",
			host: platform.Linux,
			env:  testEnv(),
			want: []plan.Action{
				plan.ConfigureRepo{Vendor: "llvm", Version: 15},
				plan.InstallPackages{Packages: []string{"build-essential"}},
			},
		},
		{
			name: "android with sdk root manages the full sdk",
			raw:  "aarch64-linux-android",
			host: platform.Linux,
			env:  androidEnv(),
			want: []plan.Action{
				plan.ConfigureRepo{Vendor: "llvm", Version: 15},
				plan.InstallPackages{Packages: []string{"build-essential"}},
				plan.AcceptLicense{
					LicenseID: "android-sdk-license",
					Path:      "/opt/android/licenses/android-sdk-license",
					Token:     AndroidLicenseToken,
				},
				plan.InstallComponent{ID: "ndk;26.3.11579264"},
				plan.PatchLibraryShim{
					SearchRoot:      "/opt/android/ndk/26.3.11579264",
					FilenamePattern: "libunwind.a",
					Replacement:     "INPUT(-lunwind)\n",
				},
			},
		},
		{
			name: "android without sdk root patches the preinstalled ndk",
			raw:  "armv7-linux-androideabi",
			host: platform.Linux,
			env: config.Env{
				LLVMVersion: 15,
				NDKVersion:  "26.3.11579264",
				Codename:    "jammy",
				NDKRoot:     "/preinstalled/ndk",
			},
			want: []plan.Action{
				plan.ConfigureRepo{Vendor: "llvm", Version: 15},
				plan.InstallPackages{Packages: []string{"build-essential"}},
				plan.PatchLibraryShim{
					SearchRoot:      "/preinstalled/ndk",
					FilenamePattern: "libunwind.a",
					Replacement:     "INPUT(-lunwind)\n",
				},
			},
		},
		{
			name:     "wasm32 with the wasm-bindgen feature",
			raw:      "wasm32-unknown-unknown",
			features: "wasm-bindgen",
			host:     platform.Linux,
			env:      testEnv(),
			want: []plan.Action{
				plan.ConfigureRepo{Vendor: "llvm", Version: 15},
				plan.InstallPackages{Packages: []string{"build-essential"}},
				plan.InstallComponent{ID: "wasm-bindgen-cli"},
			},
		},
		{
			name: "wasm32 without the feature contributes nothing",
			raw:  "wasm32-unknown-unknown",
			host: platform.Linux,
			env:  testEnv(),
			want: []plan.Action{
				plan.ConfigureRepo{Vendor: "llvm", Version: 15},
				plan.InstallPackages{Packages: []string{"build-essential"}},
			},
		},
		{
			name: "macos host skips the host block",
			raw:  "aarch64-linux-android",
			host: platform.MacOS,
			env:  androidEnv(),
			want: []plan.Action{
				plan.AcceptLicense{
					LicenseID: "android-sdk-license",
					Path:      "/opt/android/licenses/android-sdk-license",
					Token:     AndroidLicenseToken,
				},
				plan.InstallComponent{ID: "ndk;26.3.11579264"},
				plan.PatchLibraryShim{
					SearchRoot:      "/opt/android/ndk/26.3.11579264",
					FilenamePattern: "libunwind.a",
					Replacement:     "INPUT(-lunwind)\n",
				},
			},
		},
		{
			name: "other host resolves to an empty plan for host native",
			raw:  "",
			host: platform.OtherOS,
			env:  testEnv(),
			want: nil,
		},
		{
			name: "pinned llvm version flows into repo and compiler",
			raw:  "x86_64-unknown-linux-musl",
			host: platform.Linux,
			env: config.Env{
				LLVMVersion: 17,
				NDKVersion:  "26.3.11579264",
				Codename:    "noble",
			},
			want: []plan.Action{
				plan.ConfigureRepo{Vendor: "llvm", Version: 17},
				plan.InstallPackages{Packages: []string{"build-essential"}},
				plan.InstallPackages{Packages: []string{"clang-17"}},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			spec := target.Classify(tt.raw, tt.features)
			got := Resolve(spec, tt.host, tt.env).Actions()

			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Resolve(%q) plan mismatch\n got: %+v\nwant: %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestResolveDeterministic(t *testing.T) {
	t.Parallel()

	inputs := []struct {
		raw      string
		features string
		host     platform.HostOS
		env      config.Env
	}{
		{raw: "aarch64-unknown-linux-gnu", host: platform.Linux, env: testEnv()},
		{raw: "aarch64-linux-android", host: platform.Linux, env: androidEnv()},
		{raw: "wasm32-unknown-unknown", features: "wasm-bindgen", host: platform.Linux, env: testEnv()},
		{raw: "", host: platform.Linux, env: testEnv()},
	}

	for _, in := range inputs {
		spec := target.Classify(in.raw, in.features)
		first := Resolve(spec, in.host, in.env)
		second := Resolve(spec, in.host, in.env)

		if !reflect.DeepEqual(first, second) {
			t.Errorf("Resolve(%q) is not deterministic:\nfirst:  %+v\nsecond: %+v", in.raw, first, second)
		}
	}
}

func TestResolvePlanHeader(t *testing.T) {
	t.Parallel()

	p := Resolve(target.Classify("aarch64-unknown-linux-gnu", ""), platform.Linux, testEnv())
	if p.Target != "aarch64-unknown-linux-gnu" {
		t.Errorf("Target = %q, want triple", p.Target)
	}
	if p.Host != "linux" {
		t.Errorf("Host = %q, want linux", p.Host)
	}

	p = Resolve(target.Classify("", ""), platform.MacOS, testEnv())
	if p.Target != "host" {
		t.Errorf("Target = %q, want host", p.Target)
	}
	if p.Host != "macos" {
		t.Errorf("Host = %q, want macos", p.Host)
	}
}

func TestClangPackage(t *testing.T) {
	t.Parallel()

	if got := ClangPackage(15); got != "clang-15" {
		t.Errorf("ClangPackage(15) = %q, want clang-15", got)
	}
	if got := ClangPackage(18); got != "clang-18" {
		t.Errorf("ClangPackage(18) = %q, want clang-18", got)
	}
}
