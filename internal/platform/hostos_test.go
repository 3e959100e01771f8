package platform

import (
	"runtime"
	"testing"
)

func TestHostOSString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		host HostOS
		want string
	}{
		{Linux, "linux"},
		{MacOS, "macos"},
		{Windows, "windows"},
		{OtherOS, "other"},
		{HostOS(99), "other"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			if got := tt.host.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectHostOS(t *testing.T) {
	t.Parallel()

	got := DetectHostOS()

	var want HostOS
	switch runtime.GOOS {
	case "linux":
		want = Linux
	case "darwin":
		want = MacOS
	case "windows":
		want = Windows
	default:
		want = OtherOS
	}

	if got != want {
		t.Errorf("DetectHostOS() = %v, want %v for GOOS=%s", got, want, runtime.GOOS)
	}
}
