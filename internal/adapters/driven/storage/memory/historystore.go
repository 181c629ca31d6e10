// Package memory provides in-memory implementations of the driven store
// ports, used by tests and by demo mode.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/retracehq/retrace/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
type HistoryStore struct {
	mu      sync.RWMutex
	entries []driven.HistoryEntry
}

// NewHistoryStore creates an empty in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Add records a history entry, assigning an id when the entry has none.
func (s *HistoryStore) Add(entry driven.HistoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	s.entries = append(s.entries, entry)
}

// Search matches the text case-insensitively against URL and title within
// the [startTime, endTime) window, newest first.
func (s *HistoryStore) Search(
	_ context.Context, text string, startTime, endTime int64, maxResults int,
) ([]driven.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(text))

	matched := make([]driven.HistoryEntry, 0, len(s.entries))
	for _, e := range s.entries {
		if e.LastVisitTime < startTime || e.LastVisitTime >= endTime {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(e.URL), needle) &&
			!strings.Contains(strings.ToLower(e.Title), needle) {
			continue
		}
		matched = append(matched, e)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].LastVisitTime > matched[j].LastVisitTime
	})

	if maxResults > 0 && len(matched) > maxResults {
		matched = matched[:maxResults]
	}
	return matched, nil
}

// DeleteURLs removes every entry whose URL is in the list.
func (s *HistoryStore) DeleteURLs(_ context.Context, urls []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	drop := make(map[string]bool, len(urls))
	for _, u := range urls {
		drop[u] = true
	}

	kept := s.entries[:0]
	for _, e := range s.entries {
		if !drop[e.URL] {
			kept = append(kept, e)
		}
	}
	s.entries = kept
	return nil
}

// Len returns the number of stored entries.
func (s *HistoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
