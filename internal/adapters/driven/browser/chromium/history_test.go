package chromium

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retracehq/retrace/internal/core/domain"
)

// newTestHistoryDB creates a minimal History database with the columns the
// store reads and returns its path.
func newTestHistoryDB(t *testing.T, entries []testVisit) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "History")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE urls (
			id INTEGER PRIMARY KEY,
			url TEXT,
			title TEXT,
			visit_count INTEGER DEFAULT 0,
			last_visit_time INTEGER DEFAULT 0,
			hidden INTEGER DEFAULT 0
		);
		CREATE TABLE visits (
			id INTEGER PRIMARY KEY,
			url INTEGER,
			visit_time INTEGER
		);`)
	require.NoError(t, err)

	for _, e := range entries {
		webkit := unixMillisToWebkit(e.visitedAt.UnixMilli())
		res, err := db.Exec(
			`INSERT INTO urls (url, title, visit_count, last_visit_time, hidden) VALUES (?, ?, ?, ?, ?)`,
			e.url, e.title, e.visitCount, webkit, boolToInt(e.hidden))
		require.NoError(t, err)
		urlID, err := res.LastInsertId()
		require.NoError(t, err)
		_, err = db.Exec(`INSERT INTO visits (url, visit_time) VALUES (?, ?)`, urlID, webkit)
		require.NoError(t, err)
	}
	return path
}

type testVisit struct {
	url        string
	title      string
	visitCount int
	visitedAt  time.Time
	hidden     bool
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func TestHistoryStoreMissingFile(t *testing.T) {
	_, err := NewHistoryStore(filepath.Join(t.TempDir(), "History"))
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestHistoryStoreSearch(t *testing.T) {
	now := time.Now()
	path := newTestHistoryDB(t, []testVisit{
		{url: "https://go.dev/doc", title: "Go documentation", visitCount: 4, visitedAt: now.Add(-1 * time.Hour)},
		{url: "https://go.dev/blog", title: "The Go Blog", visitCount: 2, visitedAt: now.Add(-3 * time.Hour)},
		{url: "https://example.org/", title: "Example", visitCount: 1, visitedAt: now.Add(-2 * time.Hour)},
		{url: "https://go.dev/secret", title: "hidden entry", visitCount: 1, visitedAt: now.Add(-1 * time.Hour), hidden: true},
		{url: "https://go.dev/old", title: "ancient", visitCount: 9, visitedAt: now.Add(-40 * 24 * time.Hour)},
	})

	store, err := NewHistoryStore(path)
	require.NoError(t, err)

	start := now.Add(-24 * time.Hour).UnixMilli()
	end := now.Add(time.Minute).UnixMilli()

	got, err := store.Search(context.Background(), "go", start, end, 100)
	require.NoError(t, err)
	require.Len(t, got, 2, "hidden and out-of-window entries excluded")

	assert.Equal(t, "https://go.dev/doc", got[0].URL, "newest first")
	assert.Equal(t, "Go documentation", got[0].Title)
	assert.Equal(t, 4, got[0].VisitCount)
	assert.NotEmpty(t, got[0].ID)
	assert.Equal(t, "https://go.dev/blog", got[1].URL)

	// Empty text matches everything in the window.
	all, err := store.Search(context.Background(), "", start, end, 100)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// maxResults truncates after ordering.
	capped, err := store.Search(context.Background(), "", start, end, 1)
	require.NoError(t, err)
	require.Len(t, capped, 1)
	assert.Equal(t, "https://go.dev/doc", capped[0].URL)
}

func TestHistoryStoreSearchEscapesWildcards(t *testing.T) {
	now := time.Now()
	path := newTestHistoryDB(t, []testVisit{
		{url: "https://example.org/100%25", title: "percent page", visitedAt: now.Add(-time.Hour)},
		{url: "https://example.org/other", title: "other", visitedAt: now.Add(-time.Hour)},
	})

	store, err := NewHistoryStore(path)
	require.NoError(t, err)

	start := now.Add(-24 * time.Hour).UnixMilli()
	end := now.Add(time.Minute).UnixMilli()

	got, err := store.Search(context.Background(), "100%", start, end, 100)
	require.NoError(t, err)
	require.Len(t, got, 1, "%% treated literally, not as a wildcard")
	assert.Equal(t, "https://example.org/100%25", got[0].URL)
}

func TestHistoryStoreDeleteURLs(t *testing.T) {
	now := time.Now()
	path := newTestHistoryDB(t, []testVisit{
		{url: "https://go.dev/doc", title: "Go documentation", visitedAt: now.Add(-time.Hour)},
		{url: "https://example.org/", title: "Example", visitedAt: now.Add(-time.Hour)},
	})

	store, err := NewHistoryStore(path)
	require.NoError(t, err)

	require.NoError(t, store.DeleteURLs(context.Background(), []string{"https://go.dev/doc"}))

	start := now.Add(-24 * time.Hour).UnixMilli()
	end := now.Add(time.Minute).UnixMilli()
	got, err := store.Search(context.Background(), "", start, end, 100)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "https://example.org/", got[0].URL)

	// Visit rows for the deleted URL are gone too.
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()
	var visits int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM visits`).Scan(&visits))
	assert.Equal(t, 1, visits)
}

func TestHistoryStoreDeleteNoURLsIsNoOp(t *testing.T) {
	path := newTestHistoryDB(t, nil)
	store, err := NewHistoryStore(path)
	require.NoError(t, err)
	assert.NoError(t, store.DeleteURLs(context.Background(), nil))
}
