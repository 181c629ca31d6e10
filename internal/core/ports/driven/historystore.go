package driven

import "context"

// HistoryEntry is one record from the browser's history store.
type HistoryEntry struct {
	// ID is the store-native identifier. May be empty; callers fall back
	// to the URL for identity.
	ID string

	// URL is the visited URL. Entries without a URL are dropped downstream.
	URL string

	// Title is the page title. May be empty.
	Title string

	// LastVisitTime is epoch milliseconds of the most recent visit.
	// Zero means unknown.
	LastVisitTime int64

	// VisitCount is the store's visit counter, when reported.
	VisitCount int
}

// HistoryStore provides native search and deletion over browsing history.
type HistoryStore interface {
	// Search returns entries whose text matches the query within the
	// half-open [startTime, endTime) window (epoch milliseconds), newest
	// first, at most maxResults. An empty query matches everything in the
	// window.
	Search(ctx context.Context, text string, startTime, endTime int64, maxResults int) ([]HistoryEntry, error)

	// DeleteURLs removes every history entry for the given URLs.
	DeleteURLs(ctx context.Context, urls []string) error
}
