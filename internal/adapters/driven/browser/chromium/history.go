package chromium

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/retracehq/retrace/internal/core/domain"
	"github.com/retracehq/retrace/internal/core/ports/driven"
	"github.com/retracehq/retrace/internal/logger"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore reads and mutates the profile's History SQLite database.
type HistoryStore struct {
	path string
}

// NewHistoryStore creates a history store over the given History database
// file. Returns domain.ErrStoreUnavailable when the file does not exist.
func NewHistoryStore(path string) (*HistoryStore, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("history database %s: %w", path, domain.ErrStoreUnavailable)
	}
	return &HistoryStore{path: path}, nil
}

// Search queries the urls table within the window, newest first. The text
// matches URL or title case-insensitively. An empty text matches
// everything in the window.
func (s *HistoryStore) Search(
	ctx context.Context, text string, startTime, endTime int64, maxResults int,
) ([]driven.HistoryEntry, error) {
	dbPath, cleanup, err := s.copyAside()
	if err != nil {
		return nil, fmt.Errorf("history copy-aside: %w", err)
	}
	defer cleanup()

	db, err := sql.Open("sqlite", "file:"+dbPath+"?mode=ro&_pragma=busy_timeout(2000)")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	defer db.Close()

	const query = `
		SELECT id, url, title, last_visit_time, visit_count
		FROM urls
		WHERE hidden = 0
		  AND last_visit_time >= ?
		  AND last_visit_time < ?
		  AND (? = '' OR url LIKE ? ESCAPE '\' OR title LIKE ? ESCAPE '\')
		ORDER BY last_visit_time DESC
		LIMIT ?`

	pattern := "%" + escapeLike(text) + "%"
	rows, err := db.QueryContext(ctx, query,
		unixMillisToWebkit(startTime), unixMillisToWebkit(endTime),
		text, pattern, pattern, maxResults)
	if err != nil {
		return nil, fmt.Errorf("history query: %w", err)
	}
	defer rows.Close()

	var entries []driven.HistoryEntry
	for rows.Next() {
		var (
			id         int64
			url, title sql.NullString
			visitTime  sql.NullInt64
			visitCount sql.NullInt64
		)
		if err := rows.Scan(&id, &url, &title, &visitTime, &visitCount); err != nil {
			return nil, fmt.Errorf("history scan: %w", err)
		}
		entries = append(entries, driven.HistoryEntry{
			ID:            strconv.FormatInt(id, 10),
			URL:           url.String,
			Title:         title.String,
			LastVisitTime: webkitToUnixMillis(visitTime.Int64),
			VisitCount:    int(visitCount.Int64),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history rows: %w", err)
	}
	logger.Debug("Chromium history: %d entries for %q", len(entries), text)
	return entries, nil
}

// DeleteURLs removes the URLs and their visit rows from the live database.
// Fails while the browser holds its lock; the caller surfaces that as an
// operation error rather than retrying.
func (s *HistoryStore) DeleteURLs(ctx context.Context, urls []string) error {
	if len(urls) == 0 {
		return nil
	}

	db, err := sql.Open("sqlite", "file:"+s.path+"?_pragma=busy_timeout(2000)")
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("history delete begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(urls)), ",")
	args := make([]any, len(urls))
	for i, u := range urls {
		args[i] = u
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM visits WHERE url IN (SELECT id FROM urls WHERE url IN (`+placeholders+`))`,
		args...); err != nil {
		return fmt.Errorf("history delete visits: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM urls WHERE url IN (`+placeholders+`)`, args...); err != nil {
		return fmt.Errorf("history delete urls: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("history delete commit: %w", err)
	}
	logger.Debug("Chromium history: deleted %d urls", len(urls))
	return nil
}

// copyAside copies the locked database (and its WAL, when present) to a
// temporary directory and returns the copy's path with a cleanup func.
func (s *HistoryStore) copyAside() (string, func(), error) {
	dir, err := os.MkdirTemp("", "retrace-history-*")
	if err != nil {
		return "", nil, err
	}
	cleanup := func() { os.RemoveAll(dir) }

	dst := filepath.Join(dir, "History")
	if err := copyFile(s.path, dst); err != nil {
		cleanup()
		return "", nil, err
	}
	// The WAL may hold recent visits not yet checkpointed.
	if err := copyFile(s.path+"-wal", dst+"-wal"); err != nil && !os.IsNotExist(err) {
		cleanup()
		return "", nil, err
	}
	return dst, cleanup, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// escapeLike escapes the SQL LIKE wildcards in user text.
func escapeLike(text string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(text)
}
