package memory

import (
	"context"
	"sync"

	"github.com/retracehq/retrace/internal/core/ports/driven"
)

// Ensure BookmarkStore implements the interface.
var _ driven.BookmarkStore = (*BookmarkStore)(nil)

// BookmarkStore is an in-memory implementation of driven.BookmarkStore.
type BookmarkStore struct {
	mu     sync.RWMutex
	forest []driven.BookmarkNode
}

// NewBookmarkStore creates an empty in-memory bookmark store.
func NewBookmarkStore() *BookmarkStore {
	return &BookmarkStore{}
}

// SetTree replaces the stored forest.
func (s *BookmarkStore) SetTree(forest []driven.BookmarkNode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forest = forest
}

// GetTree returns a deep copy of the forest so callers can never observe
// concurrent mutation.
func (s *BookmarkStore) GetTree(_ context.Context) ([]driven.BookmarkNode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyForest(s.forest), nil
}

// DeleteByIDs removes the nodes with the given ids, subtrees included.
func (s *BookmarkStore) DeleteByIDs(_ context.Context, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	s.forest = pruneForest(s.forest, drop)
	return nil
}

func copyForest(forest []driven.BookmarkNode) []driven.BookmarkNode {
	out := make([]driven.BookmarkNode, len(forest))
	for i, node := range forest {
		out[i] = node
		out[i].Children = copyForest(node.Children)
	}
	return out
}

func pruneForest(forest []driven.BookmarkNode, drop map[string]bool) []driven.BookmarkNode {
	kept := make([]driven.BookmarkNode, 0, len(forest))
	for _, node := range forest {
		if drop[node.ID] {
			continue
		}
		node.Children = pruneForest(node.Children, drop)
		kept = append(kept, node)
	}
	return kept
}
