package report

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/nurpe/yardops/internal/model"
)

// Engine computes yard statistics from an in-memory snapshot. It holds no
// state and never touches a clock: the caller supplies "now", which keeps
// rolling windows deterministic under test.
type Engine struct {
	topWarehouses int
}

func NewEngine(topWarehouses int) *Engine {
	if topWarehouses <= 0 {
		topWarehouses = 5
	}
	return &Engine{topWarehouses: topWarehouses}
}

// Generate builds the full report for the resolved window. Window-scoped
// aggregates (tasks, loadings, weighings, visitors per day) are computed from
// the same filtered collections, so totals and breakdowns cannot drift apart.
// Fleet size and the today/week/month visitor counts are anchored to now, not
// to the window.
func (e *Engine) Generate(now time.Time, w Window, snap model.StatsSnapshot) model.StatsReport {
	from, to := ResolveWindow(now, w)

	windowTasks := make([]model.TaskRecord, 0, len(snap.Tasks))
	taskIDs := make(map[uuid.UUID]struct{}, len(snap.Tasks))
	for _, task := range snap.Tasks {
		if !inRange(task.PlanDate, from, to) {
			continue
		}
		windowTasks = append(windowTasks, task)
		taskIDs[task.ID] = struct{}{}
	}

	report := model.StatsReport{
		WindowFrom:     from.Format("2006-01-02"),
		WindowTo:       to.Format("2006-01-02"),
		TotalTasks:     int64(len(windowTasks)),
		TasksByStatus:  e.tasksByStatus(windowTasks, snap.Statuses),
		TotalTrucks:    snap.TruckCount,
		TotalDrivers:   snap.DriverCount,
		VisitorsPerDay: e.visitorsPerDay(snap.VisitorEntries, from, to),
		TasksPerUser:   e.tasksPerUser(windowTasks, snap.Users),
	}

	loadings := make([]model.LoadingRecord, 0, len(snap.Loadings))
	for _, loading := range snap.Loadings {
		if _, ok := taskIDs[loading.TaskID]; ok {
			loadings = append(loadings, loading)
		}
	}
	report.TotalLoadings = int64(len(loadings))
	report.TopWarehousesByLoadings = e.topWarehousesByLoadings(loadings, snap.Warehouses)

	var weightSum float64
	var weightCount int64
	for _, weighing := range snap.Weighings {
		if _, ok := taskIDs[weighing.TaskID]; !ok {
			continue
		}
		weightSum += weighing.Weight
		weightCount++
	}
	report.TotalWeighings = weightCount
	if weightCount > 0 {
		report.AverageWeight = round2(weightSum / float64(weightCount))
	}

	report.VisitorsToday, report.VisitorsWeek, report.VisitorsMonth = e.rollingVisitorCounts(now, snap.VisitorEntries)

	return report
}

func (e *Engine) tasksByStatus(tasks []model.TaskRecord, statuses []model.NamedRef) []model.StatusCount {
	counts := make(map[uuid.UUID]int64)
	for _, task := range tasks {
		counts[task.StatusID]++
	}

	names := refNames(statuses)
	rows := make([]model.StatusCount, 0, len(counts))
	for id, count := range counts {
		rows = append(rows, model.StatusCount{
			StatusID:   id,
			StatusName: names[id],
			Count:      count,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].StatusID.String() < rows[j].StatusID.String()
	})
	return rows
}

func (e *Engine) tasksPerUser(tasks []model.TaskRecord, users []model.NamedRef) []model.UserTaskCount {
	counts := make(map[uuid.UUID]int64)
	for _, task := range tasks {
		counts[task.UserID]++
	}

	names := refNames(users)
	rows := make([]model.UserTaskCount, 0, len(counts))
	for id, count := range counts {
		rows = append(rows, model.UserTaskCount{
			UserID:   id,
			UserName: names[id],
			Count:    count,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].UserID.String() < rows[j].UserID.String()
	})
	return rows
}

func (e *Engine) topWarehousesByLoadings(loadings []model.LoadingRecord, warehouses []model.NamedRef) []model.WarehouseCount {
	counts := make(map[uuid.UUID]int64)
	for _, loading := range loadings {
		counts[loading.WarehouseID]++
	}

	names := refNames(warehouses)
	rows := make([]model.WarehouseCount, 0, len(counts))
	for id, count := range counts {
		rows = append(rows, model.WarehouseCount{
			WarehouseID:   id,
			WarehouseName: names[id],
			Count:         count,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].WarehouseID.String() < rows[j].WarehouseID.String()
	})
	if len(rows) > e.topWarehouses {
		rows = rows[:e.topWarehouses]
	}
	return rows
}

func (e *Engine) visitorsPerDay(entries []time.Time, from, to time.Time) []model.DayCount {
	counts := make(map[string]int64)
	for _, entry := range entries {
		if !inRange(entry, from, to) {
			continue
		}
		counts[entry.Format("2006-01-02")]++
	}

	rows := make([]model.DayCount, 0, len(counts))
	for date, count := range counts {
		rows = append(rows, model.DayCount{Date: date, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
	return rows
}

// rollingVisitorCounts is anchored to now, never to the report window: today
// covers the current calendar day, week and month are trailing 7 and 30 day
// periods ending at now.
func (e *Engine) rollingVisitorCounts(now time.Time, entries []time.Time) (today, week, month int64) {
	weekStart := now.AddDate(0, 0, -7)
	monthStart := now.AddDate(0, 0, -30)
	for _, entry := range entries {
		if sameDay(entry, now) {
			today++
		}
		if entry.After(now) {
			continue
		}
		if !entry.Before(weekStart) {
			week++
		}
		if !entry.Before(monthStart) {
			month++
		}
	}
	return today, week, month
}

func refNames(refs []model.NamedRef) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string, len(refs))
	for _, ref := range refs {
		names[ref.ID] = ref.Name
	}
	return names
}

// round2 rounds half away from zero to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
