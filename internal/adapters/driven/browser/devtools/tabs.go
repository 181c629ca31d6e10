// Package devtools implements the tab driven port over the Chromium
// DevTools remote-debugging HTTP endpoint. The browser must be started
// with --remote-debugging-port for the endpoint to exist.
package devtools

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/retracehq/retrace/internal/core/domain"
	"github.com/retracehq/retrace/internal/core/ports/driven"
	"github.com/retracehq/retrace/internal/logger"
)

// Ensure TabStore implements the interface.
var _ driven.TabStore = (*TabStore)(nil)

const (
	defaultTimeout = 5 * time.Second

	// The endpoint is a single-threaded debug server; keep request bursts
	// gentle so bulk closes do not starve the browser's IO thread.
	requestsPerSecond = 20
	burstSize         = 5
)

// TabStore talks to a browser's DevTools HTTP endpoint.
type TabStore struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// NewTabStore creates a tab store for the DevTools endpoint at baseURL,
// e.g. "http://127.0.0.1:9222".
func NewTabStore(baseURL string) *TabStore {
	return &TabStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: defaultTimeout},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize),
	}
}

// devtoolsTarget is one entry from /json/list. Targets include service
// workers and extensions; only "page" targets are tabs.
type devtoolsTarget struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	URL        string `json:"url"`
	Title      string `json:"title"`
	FavIconURL string `json:"faviconUrl"`
}

// QueryAll lists the open page targets in the endpoint's enumeration order.
func (s *TabStore) QueryAll(ctx context.Context) ([]driven.Tab, error) {
	body, err := s.get(ctx, "/json/list")
	if err != nil {
		return nil, err
	}

	var targets []devtoolsTarget
	if err := json.Unmarshal(body, &targets); err != nil {
		return nil, fmt.Errorf("parsing target list: %w", err)
	}

	var tabs []driven.Tab
	for _, target := range targets {
		if target.Type != "page" {
			continue
		}
		tabs = append(tabs, driven.Tab{
			ID:         target.ID,
			URL:        target.URL,
			Title:      target.Title,
			FavIconURL: target.FavIconURL,
		})
	}
	logger.Debug("DevTools: %d page targets of %d total", len(tabs), len(targets))
	return tabs, nil
}

// Create opens a new tab at the given URL.
func (s *TabStore) Create(ctx context.Context, pageURL string) error {
	// Newer Chromium requires PUT for /json/new.
	_, err := s.request(ctx, http.MethodPut, "/json/new?"+url.Values{"url": {pageURL}}.Encode())
	return err
}

// Activate brings the tab to the foreground. DevTools raises the owning
// window as part of activation, so FocusWindow has no separate work to do.
func (s *TabStore) Activate(ctx context.Context, tabID string) error {
	_, err := s.get(ctx, "/json/activate/"+url.PathEscape(tabID))
	return err
}

// FocusWindow is a no-op: the endpoint cannot address windows directly and
// Activate already raises the right one.
func (s *TabStore) FocusWindow(ctx context.Context, windowID int) error {
	return nil
}

// CloseMany closes the given tabs one by one, stopping at the first
// failure. A tab that is already gone reports 404 and is skipped.
func (s *TabStore) CloseMany(ctx context.Context, tabIDs []string) error {
	for _, id := range tabIDs {
		if _, err := s.get(ctx, "/json/close/"+url.PathEscape(id)); err != nil {
			if strings.Contains(err.Error(), "404") {
				logger.Debug("DevTools: tab %s already closed", id)
				continue
			}
			return fmt.Errorf("closing tab %s: %w", id, err)
		}
	}
	return nil
}

func (s *TabStore) get(ctx context.Context, path string) ([]byte, error) {
	return s.request(ctx, http.MethodGet, path)
}

func (s *TabStore) request(ctx context.Context, method, path string) ([]byte, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("building devtools request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		// Connection refused means no browser is listening on the port.
		return nil, fmt.Errorf("devtools endpoint %s: %v: %w",
			s.baseURL, err, domain.ErrStoreUnavailable)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading devtools response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("devtools %s %s: status %d: %s",
			method, path, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}
