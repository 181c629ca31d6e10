package services

import (
	"context"
	"sync"

	"github.com/retracehq/retrace/internal/core/domain"
	"github.com/retracehq/retrace/internal/core/ports/driving"
	"github.com/retracehq/retrace/internal/logger"
)

// Ensure QuerySession implements the interface.
var _ driving.SearchService = (*QuerySession)(nil)

// QuerySession wraps the orchestrator with the two behaviors a live UI
// needs:
//
//   - Stale-result suppression. Each fetch carries a monotonically
//     increasing generation token; when a new call starts before an older
//     one resolves, the older completion is discarded (ErrSuperseded)
//     rather than applied. There is no true cancellation of in-flight
//     store calls, only suppression of their result application.
//
//   - Local limit slicing. The unsliced base results of the last fetch are
//     cached under the filter's fetch key, so a call that changes only the
//     limit reslices locally without re-invoking any adapter.
type QuerySession struct {
	engine *Orchestrator

	mu       sync.Mutex
	gen      uint64
	baseKey  string
	base     []domain.ResultItem
	haveBase bool
}

// NewQuerySession creates a query session over the orchestrator.
func NewQuerySession(engine *Orchestrator) *QuerySession {
	return &QuerySession{engine: engine}
}

// Search implements driving.SearchService.
func (s *QuerySession) Search(ctx context.Context, filters domain.FilterState) ([]domain.ResultItem, error) {
	if err := filters.Validate(); err != nil {
		return nil, err
	}

	key := filters.FetchKey()

	s.mu.Lock()
	if s.haveBase && s.baseKey == key {
		base := s.base
		s.mu.Unlock()
		logger.Debug("Search: limit-only change, reslicing %d cached results", len(base))
		return sliceLimit(base, filters.Limit), nil
	}
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	base, err := s.engine.fetch(ctx, filters)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		// A newer call started while this one was in flight. Its result
		// must never overwrite the newer call's, whatever the timing.
		logger.Debug("Search: generation %d superseded by %d, discarding", gen, s.gen)
		return nil, domain.ErrSuperseded
	}
	if err != nil {
		s.haveBase = false
		s.base = nil
		s.baseKey = ""
		return nil, err
	}

	s.baseKey = key
	s.base = base
	s.haveBase = true
	return sliceLimit(base, filters.Limit), nil
}

// Invalidate drops the cached base results. Called after mutations so the
// next query reflects the stores, never a patched in-memory list.
func (s *QuerySession) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.haveBase = false
	s.base = nil
	s.baseKey = ""
}
