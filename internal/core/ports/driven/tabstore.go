package driven

import "context"

// Tab is one currently open tab as reported by the browser.
type Tab struct {
	// ID is the store-native tab identifier. May be empty; callers fall
	// back to the URL for identity.
	ID string

	// WindowID is the owning window, when the store reports one. Zero
	// means unknown.
	WindowID int

	// URL is the tab's current URL.
	URL string

	// Title is the tab's current title.
	Title string

	// FavIconURL is the icon the tab itself reports, when available.
	FavIconURL string
}

// TabStore provides live-tab listing and mutation.
type TabStore interface {
	// QueryAll lists every open tab. There is no native query support;
	// filtering happens downstream. Enumeration order is preserved.
	QueryAll(ctx context.Context) ([]Tab, error)

	// Create opens a new tab at the given URL.
	Create(ctx context.Context, url string) error

	// Activate brings the tab to the foreground.
	Activate(ctx context.Context, tabID string) error

	// FocusWindow focuses the window owning a tab. Stores that cannot
	// address windows directly may fold this into Activate.
	FocusWindow(ctx context.Context, windowID int) error

	// CloseMany closes the given tabs.
	CloseMany(ctx context.Context, tabIDs []string) error
}
