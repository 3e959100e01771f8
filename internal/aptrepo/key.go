package aptrepo

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ProtonMail/gopenpgp/v2/crypto"

	"github.com/rigup-dev/rigup/internal/httputil"
)

const (
	// maxKeySize bounds a signing key download.
	maxKeySize = 100 * 1024

	// keyFetchTimeout bounds one key download end to end.
	keyFetchTimeout = 30 * time.Second
)

// KeyFetcher downloads the armored signing key for a repository.
// Tests substitute a fixture loader.
type KeyFetcher interface {
	FetchKey(ctx context.Context, url string) ([]byte, error)
}

// HTTPKeyFetcher fetches keys over the hardened download client.
type HTTPKeyFetcher struct {
	// Client overrides the default hardened client, for tests.
	Client *http.Client
}

func (f *HTTPKeyFetcher) FetchKey(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, keyFetchTimeout)
	defer cancel()
	return httputil.Fetch(ctx, f.Client, url, maxKeySize)
}

// ParseKey parses an armored public key and enforces the expected
// fingerprint. The returned key is safe to hand to apt.
func ParseKey(armored []byte, wantFingerprint string) (*crypto.Key, error) {
	want, err := NormalizeFingerprint(wantFingerprint)
	if err != nil {
		return nil, err
	}

	key, err := crypto.NewKeyFromArmored(string(armored))
	if err != nil {
		return nil, fmt.Errorf("parsing signing key: %w", err)
	}

	got := strings.ToUpper(key.GetFingerprint())
	if got != want {
		return nil, fmt.Errorf("signing key fingerprint mismatch: expected %s, got %s", want, got)
	}
	return key, nil
}
