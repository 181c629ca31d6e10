package domain

import (
	"fmt"
	"strings"
)

// ResultKind identifies the source a result came from.
type ResultKind string

const (
	// KindHistory is a browsing history hit.
	KindHistory ResultKind = "history"

	// KindBookmark is a bookmark hit.
	KindBookmark ResultKind = "bookmark"

	// KindTab is a currently open tab.
	KindTab ResultKind = "tab"
)

// Result id prefixes. The prefix deterministically identifies the kind, so
// an id can be reverse-mapped to its source without carrying the kind.
const (
	historyIDPrefix  = "h:"
	bookmarkIDPrefix = "b:"
	tabIDPrefix      = "t:"
)

// IDPrefix returns the result id prefix for the kind.
func (k ResultKind) IDPrefix() string {
	switch k {
	case KindHistory:
		return historyIDPrefix
	case KindBookmark:
		return bookmarkIDPrefix
	case KindTab:
		return tabIDPrefix
	default:
		return ""
	}
}

// ResultID builds a globally unique result id from a kind and the
// source-native identifier.
func ResultID(kind ResultKind, nativeID string) string {
	return kind.IDPrefix() + nativeID
}

// SplitResultID reverse-maps a result id to its source kind and native
// identifier. Returns ErrUnknownResultID for an unrecognised prefix.
func SplitResultID(id string) (ResultKind, string, error) {
	switch {
	case strings.HasPrefix(id, historyIDPrefix):
		return KindHistory, id[len(historyIDPrefix):], nil
	case strings.HasPrefix(id, bookmarkIDPrefix):
		return KindBookmark, id[len(bookmarkIDPrefix):], nil
	case strings.HasPrefix(id, tabIDPrefix):
		return KindTab, id[len(tabIDPrefix):], nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnknownResultID, id)
	}
}

// ResultItem is a normalized, source-tagged search hit.
type ResultItem struct {
	// ID is globally unique and encodes the source kind plus the
	// source-native identifier (or the URL when the source omits an id).
	ID string

	// Kind is the owning source.
	Kind ResultKind

	// Title is the display string. Falls back to the URL when the source
	// provides no title, so it is never empty for a valid item.
	Title string

	// URL is the target URL.
	URL string

	// Hostname is derived from URL with the same normalization the domain
	// filter uses. Never null but may be empty for malformed URLs.
	Hostname string

	// FaviconURL is an optional icon URL.
	FaviconURL string

	// MetaLine is an optional human-readable provenance line, e.g.
	// "Last visit: …" or "Folder: …".
	MetaLine string

	// LastVisitTime is epoch milliseconds of the last visit. Only
	// meaningful for history items; zero means unknown.
	LastVisitTime int64

	// TabID and WindowID address the exact open tab instance for
	// focus/close. Only meaningful for tab items. WindowID is zero when
	// the store does not report one.
	TabID    string
	WindowID int
}
