package platform

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// OSRelease contains parsed values from the os-release file.
type OSRelease struct {
	ID              string   // Canonical distro identifier (e.g., "ubuntu", "debian")
	IDLike          []string // Parent/similar distros (e.g., ["debian"] for Ubuntu)
	VersionID       string   // Version number (e.g., "22.04")
	VersionCodename string   // Codename (e.g., "jammy")
	UbuntuCodename  string   // Upstream Ubuntu codename on derivatives (e.g., "noble")
}

// osReleasePaths are consulted in order. systemd permits either location;
// /etc wins when both exist.
var osReleasePaths = []string{"/etc/os-release", "/usr/lib/os-release"}

// distroToFamily maps distro IDs to package-manager families.
// rigup only drives apt, so anything outside the debian family is
// diagnosed rather than provisioned.
var distroToFamily = map[string]string{
	// Debian family (apt)
	"debian": "debian", "ubuntu": "debian", "linuxmint": "debian",
	"pop": "debian", "elementary": "debian", "zorin": "debian",
	// RHEL family (dnf)
	"fedora": "rhel", "rhel": "rhel", "centos": "rhel",
	"rocky": "rhel", "almalinux": "rhel", "ol": "rhel",
	// Arch family (pacman)
	"arch": "arch", "manjaro": "arch", "endeavouros": "arch",
	// Alpine (apk)
	"alpine": "alpine",
	// SUSE family (zypper)
	"opensuse":            "suse",
	"opensuse-leap":       "suse",
	"opensuse-tumbleweed": "suse",
	"sles":                "suse",
}

// ParseOSRelease parses the os-release file format.
// Returns an error if the file cannot be read.
func ParseOSRelease(path string) (*OSRelease, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	release := &OSRelease{}
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		// Remove quotes from value
		value = strings.Trim(value, `"'`)

		switch key {
		case "ID":
			release.ID = value
		case "ID_LIKE":
			// ID_LIKE is space-separated
			release.IDLike = strings.Fields(value)
		case "VERSION_ID":
			release.VersionID = value
		case "VERSION_CODENAME":
			release.VersionCodename = value
		case "UBUNTU_CODENAME":
			release.UbuntuCodename = value
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return release, nil
}

// Codename returns the codename used to compose apt source lines.
// On Ubuntu derivatives VERSION_CODENAME names the derivative release
// (e.g. Mint "virginia") while UBUNTU_CODENAME names the pocket their
// repositories actually track, so UBUNTU_CODENAME wins when present.
func (r *OSRelease) Codename() string {
	if r.UbuntuCodename != "" {
		return r.UbuntuCodename
	}
	return r.VersionCodename
}

// MapDistroToFamily maps a distro ID to its package-manager family.
// Falls back to the ID_LIKE chain if ID is not directly recognized.
// Returns an error if the distro cannot be mapped to a family.
func MapDistroToFamily(id string, idLike []string) (string, error) {
	if family, ok := distroToFamily[id]; ok {
		return family, nil
	}

	for _, like := range idLike {
		if family, ok := distroToFamily[like]; ok {
			return family, nil
		}
	}

	return "", fmt.Errorf("unknown distro: %s", id)
}

// DetectOSRelease reads the first os-release file present on the host.
// Returns nil with no error when neither location exists, which is how
// non-systemd hosts and non-Linux platforms present.
func DetectOSRelease() (*OSRelease, error) {
	for _, path := range osReleasePaths {
		release, err := ParseOSRelease(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		return release, nil
	}
	return nil, nil
}

// DetectCodename returns the host distro codename, or empty when it
// cannot be determined. Callers substitute a pinned default so that apt
// source lines remain well formed.
func DetectCodename() string {
	release, err := DetectOSRelease()
	if err != nil || release == nil {
		return ""
	}
	return release.Codename()
}

// DetectFamily returns the package-manager family for the current host.
// Returns empty string and nil error when no os-release file exists.
func DetectFamily() (string, error) {
	release, err := DetectOSRelease()
	if err != nil {
		return "", err
	}
	if release == nil {
		return "", nil
	}
	return MapDistroToFamily(release.ID, release.IDLike)
}
