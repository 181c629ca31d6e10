package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fixedNow is Wednesday 2024-01-10 15:00 local time.
func fixedNow(t *testing.T) time.Time {
	t.Helper()
	now := time.Date(2024, time.January, 10, 15, 0, 0, 0, time.Local)
	assert.Equal(t, time.Wednesday, now.Weekday())
	return now
}

func TestResolveWindowToday(t *testing.T) {
	now := fixedNow(t)
	w := ResolveWindow(Today(), now)

	wantStart := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.Local)
	assert.Equal(t, wantStart.UnixMilli(), w.Start)
	assert.Equal(t, now.UnixMilli(), w.End)
}

func TestResolveWindowThisWeek(t *testing.T) {
	now := fixedNow(t)
	w := ResolveWindow(ThisWeek(), now)

	// Most recent Monday is 2024-01-08.
	wantStart := time.Date(2024, time.January, 8, 0, 0, 0, 0, time.Local)
	assert.Equal(t, wantStart.UnixMilli(), w.Start)
	assert.Equal(t, now.UnixMilli(), w.End)
}

func TestResolveWindowPastWeeks(t *testing.T) {
	now := fixedNow(t)

	// pastWeeks(1) behaves identically to thisWeek.
	one := ResolveWindow(PastWeeks(1), now)
	week := ResolveWindow(ThisWeek(), now)
	assert.Equal(t, week, one)

	// pastWeeks(2) starts one full week before the most recent Monday.
	two := ResolveWindow(PastWeeks(2), now)
	wantStart := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)
	assert.Equal(t, wantStart.UnixMilli(), two.Start)
	assert.Equal(t, now.UnixMilli(), two.End)
}

func TestResolveWindowSunday(t *testing.T) {
	// On a Sunday the most recent Monday is six days back.
	sunday := time.Date(2024, time.January, 14, 12, 0, 0, 0, time.Local)
	assert.Equal(t, time.Sunday, sunday.Weekday())

	w := ResolveWindow(ThisWeek(), sunday)
	wantStart := time.Date(2024, time.January, 8, 0, 0, 0, 0, time.Local)
	assert.Equal(t, wantStart.UnixMilli(), w.Start)
}

func TestResolveWindowMonday(t *testing.T) {
	monday := time.Date(2024, time.January, 8, 9, 30, 0, 0, time.Local)
	assert.Equal(t, time.Monday, monday.Weekday())

	w := ResolveWindow(ThisWeek(), monday)
	wantStart := time.Date(2024, time.January, 8, 0, 0, 0, 0, time.Local)
	assert.Equal(t, wantStart.UnixMilli(), w.Start)
}
