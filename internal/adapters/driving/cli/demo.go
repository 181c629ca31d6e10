package cli

import (
	"time"

	"github.com/retracehq/retrace/internal/adapters/driven/storage/memory"
	"github.com/retracehq/retrace/internal/core/ports/driven"
)

// Demo fixtures for --demo mode. Small but varied enough to exercise
// every scope, the domain filter, and each time range.

func seedDemoHistory(store *memory.HistoryStore) {
	now := time.Now()
	visits := []struct {
		url, title string
		ago        time.Duration
		count      int
	}{
		{"https://go.dev/doc/effective_go", "Effective Go", 2 * time.Hour, 14},
		{"https://go.dev/blog/error-handling", "Error handling and Go", 5 * time.Hour, 3},
		{"https://pkg.go.dev/net/http", "net/http package", 26 * time.Hour, 9},
		{"https://github.com/charmbracelet/bubbletea", "Bubble Tea", 3 * 24 * time.Hour, 6},
		{"https://news.ycombinator.com/", "Hacker News", 8 * 24 * time.Hour, 21},
		{"https://en.wikipedia.org/wiki/Trie", "Trie - Wikipedia", 16 * 24 * time.Hour, 2},
	}
	for _, v := range visits {
		store.Add(driven.HistoryEntry{
			URL:           v.url,
			Title:         v.title,
			LastVisitTime: now.Add(-v.ago).UnixMilli(),
			VisitCount:    v.count,
		})
	}
}

func seedDemoBookmarks(store *memory.BookmarkStore) {
	store.SetTree([]driven.BookmarkNode{
		{
			ID:    "1",
			Title: "Bookmarks bar",
			Children: []driven.BookmarkNode{
				{ID: "10", Title: "Go documentation", URL: "https://go.dev/doc"},
				{
					ID:    "11",
					Title: "Reading",
					Children: []driven.BookmarkNode{
						{ID: "12", Title: "The Go Blog", URL: "https://go.dev/blog"},
						{ID: "13", Title: "Trie - Wikipedia", URL: "https://en.wikipedia.org/wiki/Trie"},
					},
				},
			},
		},
		{
			ID:    "2",
			Title: "Other bookmarks",
			Children: []driven.BookmarkNode{
				{ID: "20", Title: "Bubble Tea", URL: "https://github.com/charmbracelet/bubbletea"},
			},
		},
	})
}

func seedDemoTabs(store *memory.TabStore) {
	tabs := []driven.Tab{
		{ID: "T1", WindowID: 1, URL: "https://go.dev/play", Title: "Go Playground", FavIconURL: "https://go.dev/favicon.ico"},
		{ID: "T2", WindowID: 1, URL: "https://pkg.go.dev/net/http", Title: "net/http package"},
		{ID: "T3", WindowID: 2, URL: "https://news.ycombinator.com/", Title: "Hacker News"},
	}
	for _, tab := range tabs {
		store.Open(tab)
	}
}
