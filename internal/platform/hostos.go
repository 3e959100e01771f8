// Package platform inspects the host that rigup provisions.
//
// This package classifies the host operating system and parses the
// distro's os-release file. The host OS and distro codename are inputs
// to plan resolution: the codename selects the apt repository pocket
// for the pinned LLVM toolchain, and the family tells doctor whether
// the apt backend applies at all.
package platform

import "runtime"

// HostOS classifies the operating system rigup is running on.
type HostOS int

const (
	// OtherOS covers hosts with no provisioning rules.
	OtherOS HostOS = iota
	Linux
	MacOS
	Windows
)

func (h HostOS) String() string {
	switch h {
	case Linux:
		return "linux"
	case MacOS:
		return "macos"
	case Windows:
		return "windows"
	default:
		return "other"
	}
}

// DetectHostOS classifies the current host from runtime.GOOS.
// Callers derive this once per process; resolution inputs must not
// drift mid-run.
func DetectHostOS() HostOS {
	switch runtime.GOOS {
	case "linux":
		return Linux
	case "darwin":
		return MacOS
	case "windows":
		return Windows
	default:
		return OtherOS
	}
}
