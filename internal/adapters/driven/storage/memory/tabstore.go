package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/retracehq/retrace/internal/core/domain"
	"github.com/retracehq/retrace/internal/core/ports/driven"
)

// Ensure TabStore implements the interface.
var _ driven.TabStore = (*TabStore)(nil)

// TabStore is an in-memory implementation of driven.TabStore.
type TabStore struct {
	mu            sync.RWMutex
	tabs          []driven.Tab
	activeTabID   string
	focusedWindow int
}

// NewTabStore creates an empty in-memory tab store.
func NewTabStore() *TabStore {
	return &TabStore{}
}

// Open adds a tab directly, assigning an id when the tab has none.
func (s *TabStore) Open(tab driven.Tab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tab.ID == "" {
		tab.ID = uuid.NewString()
	}
	s.tabs = append(s.tabs, tab)
}

// QueryAll lists all open tabs in insertion order.
func (s *TabStore) QueryAll(_ context.Context) ([]driven.Tab, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]driven.Tab, len(s.tabs))
	copy(out, s.tabs)
	return out, nil
}

// Create opens a new tab at the given URL.
func (s *TabStore) Create(_ context.Context, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tabs = append(s.tabs, driven.Tab{ID: uuid.NewString(), URL: url})
	return nil
}

// Activate marks a tab as the active one.
func (s *TabStore) Activate(_ context.Context, tabID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tab := range s.tabs {
		if tab.ID == tabID {
			s.activeTabID = tabID
			return nil
		}
	}
	return fmt.Errorf("activate tab %s: %w", tabID, domain.ErrNotFound)
}

// FocusWindow records the focused window.
func (s *TabStore) FocusWindow(_ context.Context, windowID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.focusedWindow = windowID
	return nil
}

// CloseMany removes the given tabs. Unknown ids are ignored, matching
// browser behavior for already-closed tabs.
func (s *TabStore) CloseMany(_ context.Context, tabIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	drop := make(map[string]bool, len(tabIDs))
	for _, id := range tabIDs {
		drop[id] = true
	}

	kept := s.tabs[:0]
	for _, tab := range s.tabs {
		if !drop[tab.ID] {
			kept = append(kept, tab)
		}
	}
	s.tabs = kept
	return nil
}

// ActiveTabID returns the id of the last activated tab.
func (s *TabStore) ActiveTabID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeTabID
}

// FocusedWindow returns the last focused window id.
func (s *TabStore) FocusedWindow() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.focusedWindow
}
