// Package androidsdk handles the Android SDK pieces of provisioning
// that are plain file manipulation: license acceptance, NDK library
// shim patching, and the installed NDK inventory.
package androidsdk

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AcceptLicense records a license hash in an sdkmanager license file,
// creating the file and its directory when absent. The hash is
// appended only when missing, so repeated runs converge. Returns true
// when the file was modified.
func AcceptLicense(path, token string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("reading license file: %w", err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == token {
			return false, nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("creating licenses directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return false, fmt.Errorf("opening license file: %w", err)
	}
	defer f.Close()

	// sdkmanager reads one accepted hash per line.
	entry := token + "\n"
	if len(data) > 0 && !bytes.HasSuffix(data, []byte("\n")) {
		entry = "\n" + entry
	}
	if _, err := f.WriteString(entry); err != nil {
		return false, fmt.Errorf("writing license file: %w", err)
	}
	return true, nil
}
