package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/retracehq/retrace/internal/core/domain"
	"github.com/retracehq/retrace/internal/core/ports/driven"
	"github.com/retracehq/retrace/internal/logger"
)

// Ensure BookmarkAdapter implements the interface.
var _ SourceAdapter = (*BookmarkAdapter)(nil)

// maxFolderDepth bounds upward traversal, guarding against pathological or
// cyclic trees.
const maxFolderDepth = 50

// BookmarkAdapter searches the bookmark tree.
type BookmarkAdapter struct {
	store    driven.BookmarkStore
	favicons driven.Favicons
	collator *collate.Collator
}

// NewBookmarkAdapter creates a bookmark source adapter.
func NewBookmarkAdapter(store driven.BookmarkStore, favicons driven.Favicons) *BookmarkAdapter {
	return &BookmarkAdapter{
		store:    store,
		favicons: favicons,
		collator: collate.New(language.Und),
	}
}

// Kind returns domain.KindBookmark.
func (a *BookmarkAdapter) Kind() domain.ResultKind {
	return domain.KindBookmark
}

// bookmarkIndex is the transient working structure for one search: flat
// id->node and id->parent-id maps built fresh per call and discarded.
// Never cached across calls - the tree can mutate between searches, and
// staleness would silently hide deletions.
type bookmarkIndex struct {
	byID       map[string]driven.BookmarkNode
	parentByID map[string]string
	order      []string
}

func buildBookmarkIndex(forest []driven.BookmarkNode) *bookmarkIndex {
	idx := &bookmarkIndex{
		byID:       make(map[string]driven.BookmarkNode),
		parentByID: make(map[string]string),
	}
	var walk func(node driven.BookmarkNode, parentID string)
	walk = func(node driven.BookmarkNode, parentID string) {
		idx.byID[node.ID] = node
		if parentID != "" {
			idx.parentByID[node.ID] = parentID
		}
		idx.order = append(idx.order, node.ID)
		for _, child := range node.Children {
			walk(child, node.ID)
		}
	}
	for _, root := range forest {
		walk(root, "")
	}
	return idx
}

// folderPath returns the ancestor folder chain for a node, root-first,
// joined with " / ". Untitled ancestors (the synthetic root) are skipped.
func (idx *bookmarkIndex) folderPath(nodeID string) string {
	var parts []string

	currentID, ok := idx.parentByID[nodeID]
	for depth := 0; ok && depth < maxFolderDepth; depth++ {
		node, found := idx.byID[currentID]
		if !found {
			break
		}
		if node.Title != "" {
			parts = append(parts, node.Title)
		}
		currentID, ok = idx.parentByID[currentID]
	}

	// Collected nearest-ancestor-first; reverse to root-first.
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, " / ")
}

// Search matches the query case-insensitively against title, URL, or folder
// path. An empty query returns nothing even when a domain filter is set:
// bookmarks are not time-bounded, so a domain-only dump would return far
// too much - this is deliberate per-source policy, unlike history and tabs.
func (a *BookmarkAdapter) Search(ctx context.Context, filters domain.FilterState) ([]domain.ResultItem, error) {
	if a.store == nil {
		return nil, fmt.Errorf("bookmarks: %w", domain.ErrStoreUnavailable)
	}

	query := strings.ToLower(strings.TrimSpace(filters.Query))
	if query == "" {
		return []domain.ResultItem{}, nil
	}

	forest, err := a.store.GetTree(ctx)
	if err != nil {
		return nil, fmt.Errorf("bookmark tree: %w", err)
	}

	idx := buildBookmarkIndex(forest)
	logger.Debug("Bookmark search: query=%q, %d nodes indexed", query, len(idx.byID))

	domainFilter := strings.TrimSpace(filters.Domain)

	results := make([]domain.ResultItem, 0)
	for _, id := range idx.order {
		node := idx.byID[id]
		if node.URL == "" {
			// Folders are never results.
			continue
		}

		hostname := domain.Hostname(node.URL)
		path := idx.folderPath(id)

		if domainFilter != "" && !domain.MatchesDomain(hostname, domainFilter) {
			continue
		}
		if !matchesBookmark(node, path, query) {
			continue
		}

		title := strings.TrimSpace(node.Title)
		if title == "" {
			title = node.URL
		}

		metaLine := "Folder: (root)"
		if path != "" {
			metaLine = "Folder: " + path
		}

		item := domain.ResultItem{
			ID:       domain.ResultID(domain.KindBookmark, node.ID),
			Kind:     domain.KindBookmark,
			Title:    title,
			URL:      node.URL,
			Hostname: hostname,
			MetaLine: metaLine,
		}
		if a.favicons != nil {
			item.FaviconURL = a.favicons.URLFor(node.URL, 16)
		}
		results = append(results, item)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return a.collator.CompareString(results[i].Title, results[j].Title) < 0
	})

	if len(results) > filters.Limit {
		results = results[:filters.Limit]
	}
	logger.Debug("Bookmark search: %d results", len(results))
	return results, nil
}

// matchesBookmark reports whether the query hits the node's title, URL, or
// folder path. Any one hit qualifies.
func matchesBookmark(node driven.BookmarkNode, folderPath, query string) bool {
	return strings.Contains(strings.ToLower(node.Title), query) ||
		strings.Contains(strings.ToLower(node.URL), query) ||
		strings.Contains(strings.ToLower(folderPath), query)
}
