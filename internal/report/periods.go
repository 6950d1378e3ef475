package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/nurpe/yardops/internal/model"
)

type PeriodGrouping string

const (
	GroupByDay   PeriodGrouping = "day"
	GroupByWeek  PeriodGrouping = "week"
	GroupByMonth PeriodGrouping = "month"
)

// ParsePeriodGrouping maps a request value onto a grouping, rejecting
// anything outside day/week/month.
func ParsePeriodGrouping(raw string) (PeriodGrouping, bool) {
	switch PeriodGrouping(raw) {
	case GroupByDay, GroupByWeek, GroupByMonth:
		return PeriodGrouping(raw), true
	default:
		return "", false
	}
}

// AggregateVisits buckets every visit entry into its period. Keys are
// zero-padded so lexicographic order equals chronological order; rows come
// back ascending. Weeks follow ISO-8601: Monday start, the week containing
// January 4th is week 1, and the year component is the ISO year, which can
// differ from the calendar year near year edges.
func (e *Engine) AggregateVisits(groupBy PeriodGrouping, entries []time.Time) []model.PeriodCount {
	counts := make(map[string]int64)
	for _, entry := range entries {
		counts[periodKey(groupBy, entry)]++
	}

	rows := make([]model.PeriodCount, 0, len(counts))
	for period, count := range counts {
		rows = append(rows, model.PeriodCount{Period: period, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Period < rows[j].Period })
	return rows
}

func periodKey(groupBy PeriodGrouping, t time.Time) string {
	switch groupBy {
	case GroupByWeek:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case GroupByMonth:
		return t.Format("2006-01")
	default:
		return t.Format("2006-01-02")
	}
}
