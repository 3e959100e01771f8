// Package buildinfo derives the rigup version string from Go build
// metadata.
package buildinfo

import "runtime/debug"

// Version returns the version for the current build: the module tag
// for released builds installed with go install, "dev-<hash>" (plus
// "-dirty" for modified trees) for builds from a checkout, and "dev"
// when no VCS information was stamped.
func Version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return devVersion(info)
}

func devVersion(info *debug.BuildInfo) string {
	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	if revision == "" {
		return "dev"
	}
	if len(revision) > 12 {
		revision = revision[:12]
	}
	if modified {
		return "dev-" + revision + "-dirty"
	}
	return "dev-" + revision
}
