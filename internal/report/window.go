package report

import "time"

// Window is an optional [From, To] date range. Each bound is resolved
// independently: a missing From defaults to seven days before "now" at start
// of day, a missing To defaults to "now" at end of day. Both bounds are
// inclusive at day granularity.
type Window struct {
	From *time.Time
	To   *time.Time
}

const defaultWindowDays = 7

// ResolveWindow normalizes the window against the given instant. From is
// clamped to 00:00:00 of its calendar day, To to the last nanosecond of its
// day, so inclusive comparisons cover whole days.
func ResolveWindow(now time.Time, w Window) (time.Time, time.Time) {
	from := now.AddDate(0, 0, -defaultWindowDays)
	if w.From != nil {
		from = *w.From
	}
	to := now
	if w.To != nil {
		to = *w.To
	}
	return StartOfDay(from), EndOfDay(to)
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}
