package androidsdk

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rigup-dev/rigup/internal/log"
)

// PatchShims walks root and overwrites every file whose base name
// matches pattern with replacement, preserving file modes. The NDK
// ships placeholder static archives; rewriting them as linker scripts
// redirects the link to the shared library. Files already holding the
// replacement are left alone, so the operation is a fixed point.
// Returns how many files were rewritten.
func PatchShims(root, pattern, replacement string, logger log.Logger) (int, error) {
	if logger == nil {
		logger = log.Default()
	}
	if root == "" {
		return 0, fmt.Errorf("no search root configured")
	}

	patched := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		matched, err := filepath.Match(pattern, d.Name())
		if err != nil {
			return fmt.Errorf("invalid shim pattern %q: %w", pattern, err)
		}
		if !matched {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if string(content) == replacement {
			logger.Debug("shim already patched", "path", path)
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("stat %s: %w", path, err)
		}
		if err := os.WriteFile(path, []byte(replacement), info.Mode()); err != nil {
			return fmt.Errorf("patching %s: %w", path, err)
		}
		logger.Debug("patched library shim", "path", path)
		patched++
		return nil
	})
	if err != nil {
		return patched, err
	}
	return patched, nil
}
