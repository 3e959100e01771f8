// Package httputil provides the hardened HTTP client rigup uses to
// download repository signing keys.
//
// A signing key fetch is the one network operation in the provisioning
// path, and it feeds material straight into the apt trust store. The
// client therefore refuses redirects off HTTPS, validates redirect
// targets against private and local address space (resolving hostnames
// so DNS rebinding cannot slip past the check), and keeps transport
// compression disabled.
package httputil

import (
	"fmt"
	"net"
	"net/http"
	"time"
)

// ClientOptions configures the download client. Zero values take the
// defaults documented per field.
type ClientOptions struct {
	// Timeout is the overall request timeout. Default: 30s.
	Timeout time.Duration

	// DialTimeout is the TCP dial timeout. Default: 30s.
	DialTimeout time.Duration

	// TLSHandshakeTimeout is the TLS handshake timeout. Default: 10s.
	TLSHandshakeTimeout time.Duration

	// ResponseHeaderTimeout is the time to wait for response headers.
	// Default: 10s.
	ResponseHeaderTimeout time.Duration

	// MaxRedirects is the maximum redirect depth. Default: 10.
	MaxRedirects int
}

// NewClient creates the hardened HTTP client.
func NewClient(opts ClientOptions) *http.Client {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = 30 * time.Second
	}
	if opts.TLSHandshakeTimeout == 0 {
		opts.TLSHandshakeTimeout = 10 * time.Second
	}
	if opts.ResponseHeaderTimeout == 0 {
		opts.ResponseHeaderTimeout = 10 * time.Second
	}
	if opts.MaxRedirects == 0 {
		opts.MaxRedirects = 10
	}

	return &http.Client{
		Timeout: opts.Timeout,
		Transport: &http.Transport{
			// Keys are small ASCII-armored blobs; compression only
			// opens the door to decompression bombs.
			DisableCompression: true,
			DialContext: (&net.Dialer{
				Timeout:   opts.DialTimeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   opts.TLSHandshakeTimeout,
			ResponseHeaderTimeout: opts.ResponseHeaderTimeout,
			ExpectContinueTimeout: 1 * time.Second,
			MaxIdleConns:          10,
			IdleConnTimeout:       90 * time.Second,
		},
		CheckRedirect: redirectPolicy(opts.MaxRedirects),
	}
}

// redirectPolicy builds the CheckRedirect hook: HTTPS only, bounded
// depth, and no redirecting into private or local address space.
func redirectPolicy(maxRedirects int) func(req *http.Request, via []*http.Request) error {
	return func(req *http.Request, via []*http.Request) error {
		if req.URL.Scheme != "https" {
			return fmt.Errorf("redirect to non-HTTPS URL is not allowed: %s", req.URL)
		}
		if len(via) >= maxRedirects {
			return fmt.Errorf("too many redirects")
		}

		host := req.URL.Hostname()
		if ip := net.ParseIP(host); ip != nil {
			return validateIP(ip, host)
		}

		// Hostname form: resolve and check every address, so a
		// rebinding entry cannot hide a blocked IP behind a public one.
		ips, err := net.LookupIP(host)
		if err != nil {
			return fmt.Errorf("failed to resolve redirect host %s: %w", host, err)
		}
		for _, ip := range ips {
			if err := validateIP(ip, host); err != nil {
				return fmt.Errorf("refusing redirect: %s resolves to blocked IP %s", host, ip)
			}
		}
		return nil
	}
}

// validateIP rejects addresses a key server has no business living at:
// private ranges, loopback, link-local (the cloud metadata services
// live there), multicast, and the unspecified address.
func validateIP(ip net.IP, host string) error {
	switch {
	case ip.IsPrivate():
		return fmt.Errorf("refusing redirect to private IP: %s (%s)", host, ip)
	case ip.IsLoopback():
		return fmt.Errorf("refusing redirect to loopback IP: %s (%s)", host, ip)
	case ip.IsLinkLocalUnicast():
		return fmt.Errorf("refusing redirect to link-local IP: %s (%s)", host, ip)
	case ip.IsLinkLocalMulticast():
		return fmt.Errorf("refusing redirect to link-local multicast: %s (%s)", host, ip)
	case ip.IsMulticast():
		return fmt.Errorf("refusing redirect to multicast IP: %s (%s)", host, ip)
	case ip.IsUnspecified():
		return fmt.Errorf("refusing redirect to unspecified IP: %s (%s)", host, ip)
	}
	return nil
}
