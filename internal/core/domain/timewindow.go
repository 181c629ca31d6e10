package domain

import "time"

// TimeWindow is a half-open [Start, End) interval in epoch milliseconds.
type TimeWindow struct {
	Start int64
	End   int64
}

// ResolveWindow converts a symbolic time range into an absolute window
// anchored at now. End is always now. Weeks start on Monday, computed in
// the location of the supplied instant. Pure in (r, now): no hidden clock
// reads.
func ResolveWindow(r TimeRange, now time.Time) TimeWindow {
	end := now.UnixMilli()

	switch r.Kind {
	case RangeToday:
		return TimeWindow{Start: startOfDay(now).UnixMilli(), End: end}
	case RangeThisWeek:
		return TimeWindow{Start: startOfWeekMonday(now).UnixMilli(), End: end}
	case RangePastWeeks:
		weeks := r.Weeks
		if weeks < 1 {
			weeks = 1
		}
		start := startOfWeekMonday(now).AddDate(0, 0, -7*(weeks-1))
		return TimeWindow{Start: start.UnixMilli(), End: end}
	default:
		return TimeWindow{Start: startOfDay(now).UnixMilli(), End: end}
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeekMonday returns the most recent Monday 00:00. A Sunday counts
// six days back, not one.
func startOfWeekMonday(t time.Time) time.Time {
	day := startOfDay(t)
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return day.AddDate(0, 0, -offset)
}
