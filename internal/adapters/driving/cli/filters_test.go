package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retracehq/retrace/internal/core/domain"
)

func TestFilterFlagsToFilterState(t *testing.T) {
	f := filterFlags{scope: "history", domain: "go.dev", timeRange: "weeks", weeks: 3, limit: 10}

	filters, err := f.toFilterState("compiler")
	require.NoError(t, err)

	assert.Equal(t, "compiler", filters.Query)
	assert.Equal(t, domain.ScopeHistory, filters.Scope)
	assert.Equal(t, "go.dev", filters.Domain)
	assert.Equal(t, domain.PastWeeks(3), filters.TimeRange)
	assert.Equal(t, 10, filters.Limit)
}

func TestFilterFlagsDefaultLimitFromConfig(t *testing.T) {
	prev := cfg
	defer func() { cfg = prev }()
	cfg.Search.DefaultLimit = 25

	f := filterFlags{scope: "all", timeRange: "today"}
	filters, err := f.toFilterState("x")
	require.NoError(t, err)
	assert.Equal(t, 25, filters.Limit)
}

func TestFilterFlagsRejectBadRange(t *testing.T) {
	f := filterFlags{scope: "all", timeRange: "yesterday", limit: 10}
	_, err := f.toFilterState("x")
	assert.ErrorContains(t, err, "unknown --range")
}

func TestFilterFlagsRejectBadScope(t *testing.T) {
	f := filterFlags{scope: "windows", timeRange: "today", limit: 10}
	_, err := f.toFilterState("x")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
