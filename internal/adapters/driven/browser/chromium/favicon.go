package chromium

import (
	"fmt"
	"net/url"

	"github.com/retracehq/retrace/internal/core/ports/driven"
)

// Ensure Favicons implements the interface.
var _ driven.Favicons = (*Favicons)(nil)

// Favicons derives icon URLs from page URLs using Google's shared favicon
// endpoint. The browser's own favicon cache lives in a locked SQLite
// database inside the profile, so derivation stays off-disk entirely.
type Favicons struct{}

// NewFavicons creates the favicon URL deriver.
func NewFavicons() *Favicons {
	return &Favicons{}
}

// URLFor returns the icon URL for the given page, or an empty string for
// pages without a usable URL.
func (Favicons) URLFor(pageURL string, size int) string {
	if pageURL == "" {
		return ""
	}
	if size <= 0 {
		size = 16
	}
	return fmt.Sprintf(
		"https://t2.gstatic.com/faviconV2?client=SOCIAL&type=FAVICON&fallback_opts=TYPE,SIZE,URL&size=%d&url=%s",
		size, url.QueryEscape(pageURL))
}
