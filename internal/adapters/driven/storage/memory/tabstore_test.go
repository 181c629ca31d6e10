package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retracehq/retrace/internal/core/domain"
	"github.com/retracehq/retrace/internal/core/ports/driven"
)

func TestTabStoreQueryAllPreservesOrder(t *testing.T) {
	s := NewTabStore()
	s.Open(driven.Tab{ID: "a", URL: "https://a.example/"})
	s.Open(driven.Tab{ID: "b", URL: "https://b.example/"})
	s.Open(driven.Tab{ID: "c", URL: "https://c.example/"})

	got, err := s.QueryAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestTabStoreActivate(t *testing.T) {
	s := NewTabStore()
	s.Open(driven.Tab{ID: "a", URL: "https://a.example/"})

	require.NoError(t, s.Activate(context.Background(), "a"))
	assert.Equal(t, "a", s.ActiveTabID())

	err := s.Activate(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTabStoreCreateAndCloseMany(t *testing.T) {
	s := NewTabStore()
	require.NoError(t, s.Create(context.Background(), "https://new.example/"))

	got, err := s.QueryAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.NotEmpty(t, got[0].ID)

	// Closing an unknown id alongside a real one is not an error.
	require.NoError(t, s.CloseMany(context.Background(), []string{got[0].ID, "gone"}))

	got, err = s.QueryAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
