package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rigup-dev/rigup/internal/rules"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List the target classes rigup can provision",
	Long: `List every target class in the rule table: what it matches, whether it
installs the pinned clang, and what it provisions beyond the host
baseline.

Targets outside every class fall back to the baseline class, which
provisions the host toolchain only.`,
	Args: cobra.NoArgs,
	Run:  runTargets,
}

func init() {
	rootCmd.AddCommand(targetsCmd)
}

func runTargets(cmd *cobra.Command, args []string) {
	renderTargets(os.Stdout, rules.Table())
}

// renderTargets writes the rule table listing with computed column
// widths.
func renderTargets(w io.Writer, table []rules.Rule) {
	maxName := 5  // "CLASS"
	maxMatch := 7 // "MATCHES"
	for _, r := range table {
		if len(r.Name) > maxName {
			maxName = len(r.Name)
		}
		if m := matchSummary(r); len(m) > maxMatch {
			maxMatch = len(m)
		}
	}

	fmt.Fprintf(w, "%-*s  %-*s  %-5s  %s\n", maxName, "CLASS", maxMatch, "MATCHES", "CLANG", "PROVISIONS")
	for _, r := range table {
		clang := "-"
		if r.NeedsClang {
			clang = "yes"
		}
		fmt.Fprintf(w, "%-*s  %-*s  %-5s  %s\n", maxName, r.Name, maxMatch, matchSummary(r), clang, describeProvisions(r))
	}
}

// matchSummary names what a rule matches in one table cell.
func matchSummary(r rules.Rule) string {
	if r.CatchAll {
		return "(any other target)"
	}
	if r.ABI != "" {
		return "*-" + r.ABI
	}
	if len(r.Triples) == 1 {
		return r.Triples[0]
	}
	return fmt.Sprintf("%s (+%d more)", r.Triples[0], len(r.Triples)-1)
}

// describeProvisions summarizes what a class provisions beyond the host
// baseline.
func describeProvisions(r rules.Rule) string {
	var parts []string
	if len(r.Packages) > 0 {
		parts = append(parts, strings.Join(r.Packages, ", "))
	}
	if r.Component != "" {
		c := "component " + r.Component
		if r.RequiresFeature != "" {
			c += fmt.Sprintf(" (feature %s)", r.RequiresFeature)
		}
		parts = append(parts, c)
	}
	if r.AndroidSDK {
		parts = append(parts, "Android SDK license, NDK, libunwind shim patch")
	}
	if len(parts) == 0 {
		return "host baseline only"
	}
	return strings.Join(parts, "; ")
}
