package androidsdk

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/Masterminds/semver/v3"
)

// InstalledNDKs lists the NDK versions present under the SDK root,
// newest first. sdkmanager installs NDKs side by side as
// <sdk>/ndk/<version>. A missing directory means no NDKs, not an
// error.
func InstalledNDKs(sdkRoot string) ([]string, error) {
	if sdkRoot == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(filepath.Join(sdkRoot, "ndk"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	versions := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		// Directories that don't parse as versions are leftovers from
		// manual installs; skip them.
		if _, err := semver.NewVersion(e.Name()); err != nil {
			continue
		}
		versions = append(versions, e.Name())
	}

	// Sort by semver (newest first)
	sort.Slice(versions, func(i, j int) bool {
		v1, err1 := semver.NewVersion(versions[i])
		v2, err2 := semver.NewVersion(versions[j])
		if err1 == nil && err2 == nil {
			return v2.LessThan(v1)
		}
		return versions[i] > versions[j]
	})

	return versions, nil
}
