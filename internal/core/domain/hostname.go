package domain

import (
	"net/url"
	"strings"
)

// Hostname extracts the hostname from a raw URL. A URL that fails to parse
// yields an empty string rather than an error, so a single bad item never
// fails an entire batch.
func Hostname(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u == nil {
		return ""
	}
	return u.Hostname()
}

// NormalizeHostname lower-cases a hostname and strips a leading "www."
// prefix. This is the single normalization used by hostname derivation and
// domain filtering, so membership tests stay consistent.
func NormalizeHostname(hostname string) string {
	h := strings.ToLower(hostname)
	return strings.TrimPrefix(h, "www.")
}

// MatchesDomain reports whether hostname belongs to the domain filter.
// After normalizing both sides: exact match, or hostname is a strict
// dot-suffix of the domain. "m.github.com" matches "github.com";
// "notgithub.com" does not. False when either side normalizes to empty.
//
// This is the one domain rule shared by every source adapter.
func MatchesDomain(hostname, domainFilter string) bool {
	h := NormalizeHostname(hostname)
	d := NormalizeHostname(domainFilter)

	if h == "" || d == "" {
		return false
	}
	if h == d {
		return true
	}
	return strings.HasSuffix(h, "."+d)
}
