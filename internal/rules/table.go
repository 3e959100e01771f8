// Package rules maps classified targets to provisioning plans.
//
// The decision logic is a fixed, ordered table of rules. Rules are
// grouped in specificity bands: exact-triple rules first, then
// ABI-level rules (android matches any architecture), then a single
// catch-all that absorbs host-native, malformed, and unrecognized
// specs. Within the walk the first match wins, and a unit test holds
// the bands mutually exclusive so ordering inside a band never
// matters.
package rules

import "github.com/rigup-dev/rigup/internal/target"

// Rule pairs a match predicate with the provisioning a target class
// needs. Rules are data; Resolve materializes them into plan actions.
type Rule struct {
	// Name identifies the class in logs and the targets listing.
	Name string

	// Triples are the exact triples this rule matches. Empty for
	// structural rules (ABI or CatchAll).
	Triples []string

	// ABI matches any triple whose base ABI equals this value,
	// regardless of architecture.
	ABI string

	// CatchAll matches everything, including host-native and
	// malformed specs. Exactly one rule sets it, last in the table.
	CatchAll bool

	// Packages are installed for the class in a single transaction,
	// in order.
	Packages []string

	// NeedsClang asks the host block for the alternate compiler from
	// the pinned LLVM repository.
	NeedsClang bool

	// AndroidSDK marks the class that manages the Android SDK: license
	// acceptance and NDK install when an SDK root is configured, plus
	// the libunwind shim patch.
	AndroidSDK bool

	// Component is a tooling component id installed for the class,
	// gated on RequiresFeature when that is non-empty.
	Component       string
	RequiresFeature string
}

// Matches reports whether the rule applies to the spec. Host-native
// and malformed specs only ever reach the catch-all.
func (r Rule) Matches(spec target.Spec) bool {
	if r.CatchAll {
		return true
	}
	if spec.HostNative || spec.Malformed {
		return false
	}
	if r.ABI != "" {
		return spec.ABI == r.ABI
	}
	for _, t := range r.Triples {
		if spec.Triple == t {
			return true
		}
	}
	return false
}

// table mirrors the per-class pairing of packages and compiler needs
// exactly; the asymmetry between classes is intentional. qemu runs the
// target's test binaries, the gcc-* cross packages provide linkers and
// sysroots, and clang-only classes build with the host LLVM
// exclusively.
var table = []Rule{
	{
		Name:       "aarch64-gnu",
		Triples:    []string{"aarch64-unknown-linux-gnu"},
		Packages:   []string{"qemu-user", "gcc-aarch64-linux-gnu", "libc6-dev-arm64-cross"},
		NeedsClang: true,
	},
	{
		Name:       "arm-musl",
		Triples:    []string{"aarch64-unknown-linux-musl", "armv7-unknown-linux-musleabihf"},
		Packages:   []string{"qemu-user"},
		NeedsClang: true,
	},
	{
		Name:     "arm-gnueabi",
		Triples:  []string{"arm-unknown-linux-gnueabi"},
		Packages: []string{"qemu-user", "gcc-arm-linux-gnueabi", "libc6-dev-armel-cross"},
	},
	{
		Name:     "arm-gnueabihf",
		Triples:  []string{"arm-unknown-linux-gnueabihf", "armv7-unknown-linux-gnueabihf"},
		Packages: []string{"qemu-user", "gcc-arm-linux-gnueabihf", "libc6-dev-armhf-cross"},
	},
	{
		Name:     "i686-gnu",
		Triples:  []string{"i686-unknown-linux-gnu"},
		Packages: []string{"gcc-multilib", "libc6-dev-i386"},
	},
	{
		Name:       "x86-musl",
		Triples:    []string{"i686-unknown-linux-musl", "x86_64-unknown-linux-musl"},
		NeedsClang: true,
	},
	{
		Name:     "mipsel-gnu",
		Triples:  []string{"mipsel-unknown-linux-gnu"},
		Packages: []string{"gcc-mipsel-linux-gnu", "libc6-dev-mipsel-cross", "qemu-user"},
	},
	{
		Name:     "riscv64-gnu",
		Triples:  []string{"riscv64gc-unknown-linux-gnu"},
		Packages: []string{"gcc-riscv64-linux-gnu", "libc6-dev-riscv64-cross", "qemu-user"},
	},
	{
		Name:            "wasm32",
		Triples:         []string{"wasm32-unknown-unknown"},
		Component:       "wasm-bindgen-cli",
		RequiresFeature: "wasm-bindgen",
	},
	{
		Name:       "android",
		ABI:        "android",
		AndroidSDK: true,
	},
	{
		Name:     "baseline",
		CatchAll: true,
	},
}

// Match walks the table in order and returns the first matching rule.
// The trailing catch-all guarantees a match.
func Match(spec target.Spec) Rule {
	for _, r := range table {
		if r.Matches(spec) {
			return r
		}
	}
	return Rule{Name: "baseline", CatchAll: true}
}

// Table returns a copy of the rule table for listings.
func Table() []Rule {
	out := make([]Rule, len(table))
	copy(out, table)
	return out
}
