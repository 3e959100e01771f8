package aptrepo

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rigup-dev/rigup/internal/config"
	"github.com/rigup-dev/rigup/internal/log"
)

// IndexRefresher refreshes the package index after the repository set
// changes. *pkgmgr.AptGet satisfies it.
type IndexRefresher interface {
	Update(ctx context.Context) error
}

// Configurator writes repository definitions into the apt
// configuration tree.
type Configurator struct {
	// SourcesDir and KeyringsDir locate the apt configuration tree.
	// Tests point them at temp directories.
	SourcesDir  string
	KeyringsDir string

	// Codename is the distribution codename repositories are resolved
	// against, e.g. "jammy".
	Codename string

	Fetcher   KeyFetcher
	Refresher IndexRefresher

	logger log.Logger
}

// NewConfigurator wires a Configurator against the real apt tree.
func NewConfigurator(codename string, fetcher KeyFetcher, refresher IndexRefresher, logger log.Logger) *Configurator {
	if logger == nil {
		logger = log.Default()
	}
	return &Configurator{
		SourcesDir:  config.AptSourcesDir,
		KeyringsDir: config.AptKeyringsDir,
		Codename:    codename,
		Fetcher:     fetcher,
		Refresher:   refresher,
		logger:      logger,
	}
}

// Configure installs the repository for a vendor at a version. The only
// vendor currently served from a third-party repository is "llvm".
func (c *Configurator) Configure(ctx context.Context, vendor string, version int) error {
	switch vendor {
	case "llvm":
		return c.Install(ctx, LLVM(c.Codename, version))
	default:
		return fmt.Errorf("unsupported repository vendor %q", vendor)
	}
}

// Install fetches and pins the signing key, writes the keyring and the
// source list, and refreshes the package index. Files already holding
// the desired content are left alone, and when nothing changed the
// index refresh is skipped too. The key is re-verified against the
// pinned fingerprint on every run.
func (c *Configurator) Install(ctx context.Context, repo Repo) error {
	armored, err := c.Fetcher.FetchKey(ctx, repo.KeyURL)
	if err != nil {
		return fmt.Errorf("fetching signing key for %s: %w", repo.Name, err)
	}
	key, err := ParseKey(armored, repo.Fingerprint)
	if err != nil {
		return err
	}
	keyring, err := key.GetPublicKey()
	if err != nil {
		return fmt.Errorf("serializing signing key for %s: %w", repo.Name, err)
	}

	keyringPath := filepath.Join(c.KeyringsDir, repo.KeyringFile())
	keyringChanged, err := writeIfChanged(keyringPath, keyring, 0644)
	if err != nil {
		return fmt.Errorf("writing keyring: %w", err)
	}

	listPath := filepath.Join(c.SourcesDir, repo.ListFile())
	listChanged, err := writeIfChanged(listPath, []byte(repo.SourceLine(keyringPath)), 0644)
	if err != nil {
		return fmt.Errorf("writing source list: %w", err)
	}

	if !keyringChanged && !listChanged {
		c.logger.Debug("repository already configured", "repo", repo.Name)
		return nil
	}

	c.logger.Info("configured package repository", "repo", repo.Name, "suite", repo.Suite)
	if err := c.Refresher.Update(ctx); err != nil {
		return fmt.Errorf("refreshing package index: %w", err)
	}
	return nil
}

// writeIfChanged writes data to path unless the file already holds
// exactly that content. Parent directories are created as needed.
func writeIfChanged(path string, data []byte, perm os.FileMode) (bool, error) {
	existing, err := os.ReadFile(path)
	if err == nil && bytes.Equal(existing, data) {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, err
	}
	if err := os.WriteFile(path, data, perm); err != nil {
		return false, err
	}
	return true, nil
}
