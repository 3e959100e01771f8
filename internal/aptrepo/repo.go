// Package aptrepo installs third-party apt repositories: the signing
// key goes into the keyrings directory, the deb line into
// sources.list.d, and the package index gets refreshed so the new
// packages are installable.
//
// Keys are pinned by fingerprint. A key that downloads fine but does
// not carry the expected fingerprint never reaches the apt trust
// store.
package aptrepo

import (
	"fmt"
	"regexp"
	"strings"
)

// apt.llvm.org publishes every toolchain version under one snapshot
// signing key.
const (
	llvmKeyURL         = "https://apt.llvm.org/llvm-snapshot.gpg.key"
	llvmKeyFingerprint = "6084F3CF814B57C1CF12EFD515CF4D18AF4F7421"
)

// Repo describes one third-party apt repository: where its packages
// live, where its signing key comes from, and the fingerprint that key
// must carry.
type Repo struct {
	// Name is the short identifier used for the list and keyring file
	// names, e.g. "llvm-15" becomes llvm-15.list and llvm-15.gpg.
	Name string

	// URL is the package base URL for the deb line.
	URL string

	// Suite and Component complete the deb line.
	Suite     string
	Component string

	// KeyURL is where the armored signing key is published.
	KeyURL string

	// Fingerprint is the 40 hex character fingerprint the signing key
	// must match, in any case.
	Fingerprint string
}

// LLVM returns the apt.llvm.org repository for a toolchain version on
// a distribution codename, e.g. LLVM("jammy", 15) serves clang-15 on
// Ubuntu 22.04.
func LLVM(codename string, version int) Repo {
	return Repo{
		Name:        fmt.Sprintf("llvm-%d", version),
		URL:         fmt.Sprintf("https://apt.llvm.org/%s/", codename),
		Suite:       fmt.Sprintf("llvm-toolchain-%s-%d", codename, version),
		Component:   "main",
		KeyURL:      llvmKeyURL,
		Fingerprint: llvmKeyFingerprint,
	}
}

// SourceLine renders the sources.list entry, bound to the keyring that
// holds the repository's signing key.
func (r Repo) SourceLine(keyringPath string) string {
	return fmt.Sprintf("deb [signed-by=%s] %s %s %s\n", keyringPath, r.URL, r.Suite, r.Component)
}

// ListFile returns the file name for the sources.list.d entry.
func (r Repo) ListFile() string {
	return r.Name + ".list"
}

// KeyringFile returns the file name for the binary keyring.
func (r Repo) KeyringFile() string {
	return r.Name + ".gpg"
}

var fingerprintPattern = regexp.MustCompile(`^[0-9A-Fa-f]{40}$`)

// NormalizeFingerprint uppercases a fingerprint and validates its
// shape. PGP fingerprints are 40 hex characters.
func NormalizeFingerprint(fingerprint string) (string, error) {
	fingerprint = strings.ReplaceAll(fingerprint, " ", "")
	if !fingerprintPattern.MatchString(fingerprint) {
		return "", fmt.Errorf("invalid fingerprint %q: must be 40 hex characters", fingerprint)
	}
	return strings.ToUpper(fingerprint), nil
}
