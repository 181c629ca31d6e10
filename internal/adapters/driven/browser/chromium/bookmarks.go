package chromium

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/retracehq/retrace/internal/core/domain"
	"github.com/retracehq/retrace/internal/core/ports/driven"
	"github.com/retracehq/retrace/internal/logger"
)

// Ensure BookmarkStore implements the interface.
var _ driven.BookmarkStore = (*BookmarkStore)(nil)

// Root container keys in the Bookmarks file, paired with the display
// titles Chromium uses for them.
var bookmarkRoots = []struct {
	key   string
	title string
}{
	{"bookmark_bar", "Bookmarks bar"},
	{"other", "Other bookmarks"},
	{"synced", "Mobile bookmarks"},
}

// BookmarkStore reads and mutates the profile's plain-JSON Bookmarks file.
type BookmarkStore struct {
	path string

	// Serialises read-modify-write cycles in DeleteByIDs.
	mu sync.Mutex
}

// NewBookmarkStore creates a bookmark store over the given Bookmarks file.
// Returns domain.ErrStoreUnavailable when the file does not exist.
func NewBookmarkStore(path string) (*BookmarkStore, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("bookmarks file %s: %w", path, domain.ErrStoreUnavailable)
	}
	return &BookmarkStore{path: path}, nil
}

// bookmarkFileNode mirrors the node shape in the Bookmarks file. Fields we
// do not touch are dropped on read, which is fine for the read path: writes
// go through the raw-map walk in DeleteByIDs instead.
type bookmarkFileNode struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Type     string             `json:"type"`
	URL      string             `json:"url"`
	Children []bookmarkFileNode `json:"children"`
}

// GetTree parses the Bookmarks file into a forest, one tree per root
// container, titled the way the browser titles them.
func (s *BookmarkStore) GetTree(ctx context.Context) ([]driven.BookmarkNode, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading bookmarks file: %w", err)
	}

	var file struct {
		Roots map[string]bookmarkFileNode `json:"roots"`
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing bookmarks file: %w", err)
	}

	var forest []driven.BookmarkNode
	for _, root := range bookmarkRoots {
		node, ok := file.Roots[root.key]
		if !ok {
			continue
		}
		converted := convertBookmarkNode(node)
		converted.Title = root.title
		forest = append(forest, converted)
	}
	logger.Debug("Chromium bookmarks: %d root containers", len(forest))
	return forest, nil
}

func convertBookmarkNode(n bookmarkFileNode) driven.BookmarkNode {
	out := driven.BookmarkNode{
		ID:    n.ID,
		Title: n.Name,
		URL:   n.URL,
	}
	for _, child := range n.Children {
		out.Children = append(out.Children, convertBookmarkNode(child))
	}
	return out
}

// DeleteByIDs removes the nodes with the given ids from the Bookmarks file.
// The file is round-tripped as a raw JSON map so fields this store does not
// model survive the rewrite; the checksum is dropped so the browser
// recomputes it on next load.
func (s *BookmarkStore) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("reading bookmarks file: %w", err)
	}

	var file map[string]any
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing bookmarks file: %w", err)
	}

	doomed := make(map[string]bool, len(ids))
	for _, id := range ids {
		doomed[id] = true
	}

	removed := 0
	if roots, ok := file["roots"].(map[string]any); ok {
		for _, root := range roots {
			if node, ok := root.(map[string]any); ok {
				removed += pruneRawBookmarks(node, doomed)
			}
		}
	}
	if removed == 0 {
		return fmt.Errorf("bookmark ids %v: %w", ids, domain.ErrNotFound)
	}

	// A stale checksum makes the browser discard the file.
	delete(file, "checksum")

	out, err := json.MarshalIndent(file, "", "   ")
	if err != nil {
		return fmt.Errorf("encoding bookmarks file: %w", err)
	}
	if err := writeFileAtomic(s.path, out); err != nil {
		return fmt.Errorf("writing bookmarks file: %w", err)
	}
	logger.Debug("Chromium bookmarks: deleted %d of %d requested nodes", removed, len(ids))
	return nil
}

// pruneRawBookmarks removes doomed children from node, recursing into the
// survivors, and returns how many nodes were dropped.
func pruneRawBookmarks(node map[string]any, doomed map[string]bool) int {
	children, ok := node["children"].([]any)
	if !ok {
		return 0
	}

	removed := 0
	kept := children[:0]
	for _, raw := range children {
		child, ok := raw.(map[string]any)
		if !ok {
			kept = append(kept, raw)
			continue
		}
		if id, _ := child["id"].(string); doomed[id] {
			removed++
			continue
		}
		removed += pruneRawBookmarks(child, doomed)
		kept = append(kept, raw)
	}
	node["children"] = kept
	return removed
}

// writeFileAtomic writes via a sibling temp file and rename so a crash
// never leaves a truncated Bookmarks file behind.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".retrace-bookmarks-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
