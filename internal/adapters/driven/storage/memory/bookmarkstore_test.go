package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retracehq/retrace/internal/core/ports/driven"
)

func sampleForest() []driven.BookmarkNode {
	return []driven.BookmarkNode{
		{
			ID: "1", Title: "Bookmarks bar",
			Children: []driven.BookmarkNode{
				{ID: "2", Title: "Work", Children: []driven.BookmarkNode{
					{ID: "3", Title: "CI", URL: "https://ci.example.com"},
				}},
				{ID: "4", Title: "News", URL: "https://news.example.com"},
			},
		},
	}
}

func TestBookmarkStoreGetTreeReturnsCopy(t *testing.T) {
	s := NewBookmarkStore()
	s.SetTree(sampleForest())

	got, err := s.GetTree(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)

	// Mutating the returned tree must not affect the store.
	got[0].Children[0].Title = "mutated"

	again, err := s.GetTree(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Work", again[0].Children[0].Title)
}

func TestBookmarkStoreDeleteByIDs(t *testing.T) {
	s := NewBookmarkStore()
	s.SetTree(sampleForest())

	require.NoError(t, s.DeleteByIDs(context.Background(), []string{"3", "4"}))

	got, err := s.GetTree(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	work := got[0].Children[0]
	assert.Equal(t, "Work", work.Title)
	assert.Empty(t, work.Children, "leaf under Work removed")
	assert.Len(t, got[0].Children, 1, "News removed")
}

func TestBookmarkStoreDeleteSubtree(t *testing.T) {
	s := NewBookmarkStore()
	s.SetTree(sampleForest())

	require.NoError(t, s.DeleteByIDs(context.Background(), []string{"2"}))

	got, err := s.GetTree(context.Background())
	require.NoError(t, err)
	require.Len(t, got[0].Children, 1)
	assert.Equal(t, "News", got[0].Children[0].Title)
}
