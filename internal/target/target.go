// Package target classifies cross-compilation target triples.
//
// This package is pure parsing: it never inspects the host or touches
// the filesystem. A raw triple argument and a feature-flag string go in,
// an immutable Spec comes out. Malformed input degrades to a catch-all
// spec instead of failing, so an unrecognized target still provisions
// the host baseline.
package target

import (
	"sort"
	"strings"
	"unicode"
)

// Spec is the classified form of a target triple.
type Spec struct {
	Triple    string // triple as given, without any --target= prefix
	Arch      string // e.g. "aarch64", "armv7", "wasm32"
	Vendor    string // e.g. "unknown", "pc"; empty when the triple omits it
	OS        string // e.g. "linux", "android", "unknown"
	ABI       string // base ABI, e.g. "gnu", "musl", "android"
	ABISuffix string // float variant split off the ABI, e.g. "eabi", "eabihf"

	// HostNative marks the absence of an explicit target argument.
	// The host itself is the target; no cross tooling applies.
	HostNative bool

	// Malformed marks a triple that did not parse. The spec lands in
	// the catch-all class and resolution proceeds with the host
	// baseline alone.
	Malformed bool

	features map[string]bool
}

// knownVendors are second components that denote a vendor rather than
// an OS in three-part triples. "aarch64-linux-android" omits the
// vendor; "wasm32-unknown-unknown" omits the ABI. The second component
// disambiguates.
var knownVendors = map[string]bool{
	"unknown": true,
	"pc":      true,
	"apple":   true,
	"sun":     true,
	"nvidia":  true,
	"amd":     true,
	"uwp":     true,
	"w64":     true,
}

// Classify parses a raw target argument and feature-flag string.
//
// The raw value may carry the --target= prefix used on provisioning
// command lines; it is stripped. An empty value selects the host-native
// class. Feature flags split on commas and whitespace; unrecognized
// flags are carried but never consulted, so new flags stay compatible
// with old binaries.
func Classify(raw, features string) Spec {
	spec := Spec{features: parseFeatures(features)}

	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "--target=")
	if raw == "" {
		spec.HostNative = true
		return spec
	}
	spec.Triple = raw

	parts := strings.Split(raw, "-")
	for _, p := range parts {
		if p == "" {
			spec.Malformed = true
			return spec
		}
	}

	switch len(parts) {
	case 2:
		spec.Arch, spec.OS = parts[0], parts[1]
	case 3:
		if knownVendors[parts[1]] {
			spec.Arch, spec.Vendor, spec.OS = parts[0], parts[1], parts[2]
		} else {
			spec.Arch, spec.OS = parts[0], parts[1]
			spec.ABI, spec.ABISuffix = splitABI(parts[2])
		}
	case 4:
		spec.Arch, spec.Vendor, spec.OS = parts[0], parts[1], parts[2]
		spec.ABI, spec.ABISuffix = splitABI(parts[3])
	default:
		spec.Malformed = true
	}

	return spec
}

// splitABI separates the float-ABI suffix from the base ABI component.
// "gnueabihf" yields ("gnu", "eabihf"); a bare "eabi" yields ("", "eabi").
func splitABI(abi string) (base, suffix string) {
	for _, s := range []string{"eabihf", "eabi"} {
		if rest, ok := strings.CutSuffix(abi, s); ok {
			return rest, s
		}
	}
	return abi, ""
}

func parseFeatures(s string) map[string]bool {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return nil
	}
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}

// HasFeature reports whether the given feature flag was supplied.
func (s Spec) HasFeature(name string) bool {
	return s.features[name]
}

// Features returns the supplied feature flags in sorted order.
func (s Spec) Features() []string {
	if len(s.features) == 0 {
		return nil
	}
	out := make([]string, 0, len(s.features))
	for f := range s.features {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// String names the spec for logs and plan headers.
func (s Spec) String() string {
	if s.HostNative {
		return "host"
	}
	return s.Triple
}
