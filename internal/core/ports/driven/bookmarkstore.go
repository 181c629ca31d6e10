package driven

import "context"

// BookmarkNode is one node of the bookmark tree. A node with a URL is a
// bookmark; a node without one is a folder.
type BookmarkNode struct {
	// ID is the store-native node identifier.
	ID string

	// Title is the bookmark or folder title. Root containers may have an
	// empty title.
	Title string

	// URL is set for leaf bookmarks only.
	URL string

	// Children holds the folder's child nodes.
	Children []BookmarkNode
}

// BookmarkStore provides bookmark tree retrieval and deletion.
type BookmarkStore interface {
	// GetTree returns the full bookmark forest. Callers must treat the
	// result as a snapshot: the tree can mutate between calls, so it is
	// never cached across searches.
	GetTree(ctx context.Context) ([]BookmarkNode, error)

	// DeleteByIDs removes the bookmarks with the given node ids.
	DeleteByIDs(ctx context.Context, ids []string) error
}
