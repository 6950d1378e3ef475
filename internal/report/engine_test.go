package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/yardops/internal/model"
)

var fixedNow = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

func testUUID(n byte) uuid.UUID {
	var id uuid.UUID
	id[15] = n
	return id
}

func TestResolveWindowDefaults(t *testing.T) {
	from, to := ResolveWindow(fixedNow, Window{})

	assert.Equal(t, time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond), to)
}

func TestResolveWindowBoundsDefaultIndependently(t *testing.T) {
	explicitFrom := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	from, to := ResolveWindow(fixedNow, Window{From: &explicitFrom})

	assert.Equal(t, explicitFrom, from)
	// to follows today's end of day, not from+7d
	assert.Equal(t, 15, to.Day())
	assert.Equal(t, time.June, to.Month())
	assert.Equal(t, 23, to.Hour())

	explicitTo := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	from, to = ResolveWindow(fixedNow, Window{To: &explicitTo})

	assert.Equal(t, time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1).Add(-time.Nanosecond), to)
}

func TestGenerateWindowEcho(t *testing.T) {
	engine := NewEngine(5)
	report := engine.Generate(fixedNow, Window{}, model.StatsSnapshot{})

	assert.Equal(t, "2024-06-08", report.WindowFrom)
	assert.Equal(t, "2024-06-15", report.WindowTo)
}

func TestGenerateZeroDataDefaults(t *testing.T) {
	engine := NewEngine(5)
	report := engine.Generate(fixedNow, Window{}, model.StatsSnapshot{})

	assert.Zero(t, report.TotalTasks)
	assert.Zero(t, report.TotalWeighings)
	assert.Equal(t, float64(0), report.AverageWeight)
	assert.NotNil(t, report.TasksByStatus)
	assert.Empty(t, report.TasksByStatus)
	assert.NotNil(t, report.VisitorsPerDay)
	assert.NotNil(t, report.TopWarehousesByLoadings)
	assert.NotNil(t, report.TasksPerUser)
}

func TestGenerateAverageWeightRounding(t *testing.T) {
	taskID := testUUID(1)
	snap := model.StatsSnapshot{
		Tasks: []model.TaskRecord{
			{ID: taskID, StatusID: testUUID(9), UserID: testUUID(8), PlanDate: fixedNow},
		},
		Weighings: []model.WeighingRecord{
			{ID: testUUID(2), TaskID: taskID, Weight: 10.005},
			{ID: testUUID(3), TaskID: taskID, Weight: 20.0},
		},
	}

	report := NewEngine(5).Generate(fixedNow, Window{}, snap)

	// true mean 15.0025 rounds half away from zero to 15.0
	assert.Equal(t, int64(2), report.TotalWeighings)
	assert.Equal(t, 15.0, report.AverageWeight)
}

func TestGenerateWeighingsAttributedViaParentTask(t *testing.T) {
	inWindow := testUUID(1)
	outOfWindow := testUUID(2)
	snap := model.StatsSnapshot{
		Tasks: []model.TaskRecord{
			{ID: inWindow, StatusID: testUUID(9), UserID: testUUID(8), PlanDate: fixedNow},
			{ID: outOfWindow, StatusID: testUUID(9), UserID: testUUID(8), PlanDate: fixedNow.AddDate(0, -2, 0)},
		},
		Loadings: []model.LoadingRecord{
			{ID: testUUID(3), TaskID: inWindow, WarehouseID: testUUID(7)},
			{ID: testUUID(4), TaskID: outOfWindow, WarehouseID: testUUID(7)},
		},
		Weighings: []model.WeighingRecord{
			{ID: testUUID(5), TaskID: inWindow, Weight: 12},
			{ID: testUUID(6), TaskID: outOfWindow, Weight: 99},
		},
	}

	report := NewEngine(5).Generate(fixedNow, Window{}, snap)

	assert.Equal(t, int64(1), report.TotalTasks)
	assert.Equal(t, int64(1), report.TotalLoadings)
	assert.Equal(t, int64(1), report.TotalWeighings)
	assert.Equal(t, 12.0, report.AverageWeight)
}

func TestTopWarehousesTieBreakAndLimit(t *testing.T) {
	taskID := testUUID(1)
	warehouseA := testUUID(2)
	warehouseB := testUUID(3)
	snap := model.StatsSnapshot{
		Tasks: []model.TaskRecord{
			{ID: taskID, StatusID: testUUID(9), UserID: testUUID(8), PlanDate: fixedNow},
		},
		Warehouses: []model.NamedRef{
			{ID: warehouseA, Name: "North"},
			{ID: warehouseB, Name: "South"},
		},
	}
	// equal counts: two loadings each, plus a third warehouse with three
	warehouseC := testUUID(4)
	for i := byte(10); i < 12; i++ {
		snap.Loadings = append(snap.Loadings, model.LoadingRecord{ID: testUUID(i), TaskID: taskID, WarehouseID: warehouseA})
		snap.Loadings = append(snap.Loadings, model.LoadingRecord{ID: testUUID(i + 10), TaskID: taskID, WarehouseID: warehouseB})
	}
	for i := byte(30); i < 33; i++ {
		snap.Loadings = append(snap.Loadings, model.LoadingRecord{ID: testUUID(i), TaskID: taskID, WarehouseID: warehouseC})
	}

	report := NewEngine(2).Generate(fixedNow, Window{}, snap)

	require.Len(t, report.TopWarehousesByLoadings, 2)
	assert.Equal(t, warehouseC, report.TopWarehousesByLoadings[0].WarehouseID)
	// tie between A and B broken by ascending warehouse id
	assert.Equal(t, warehouseA, report.TopWarehousesByLoadings[1].WarehouseID)
	assert.Equal(t, "North", report.TopWarehousesByLoadings[1].WarehouseName)
}

func TestTasksPerUserUnbounded(t *testing.T) {
	snap := model.StatsSnapshot{}
	// 12 users so any implicit top-N cap would show
	for i := byte(1); i <= 12; i++ {
		for j := byte(0); j <= i; j++ {
			snap.Tasks = append(snap.Tasks, model.TaskRecord{
				ID:       uuid.New(),
				StatusID: testUUID(9),
				UserID:   testUUID(i),
				PlanDate: fixedNow,
			})
		}
	}

	report := NewEngine(5).Generate(fixedNow, Window{}, snap)

	require.Len(t, report.TasksPerUser, 12)
	for i := 1; i < len(report.TasksPerUser); i++ {
		assert.GreaterOrEqual(t, report.TasksPerUser[i-1].Count, report.TasksPerUser[i].Count)
	}
	assert.Equal(t, testUUID(12), report.TasksPerUser[0].UserID)
}

func TestTasksByStatusOrderedByStatusID(t *testing.T) {
	statusA := testUUID(1)
	statusB := testUUID(2)
	snap := model.StatsSnapshot{
		Tasks: []model.TaskRecord{
			{ID: uuid.New(), StatusID: statusB, UserID: testUUID(8), PlanDate: fixedNow},
			{ID: uuid.New(), StatusID: statusA, UserID: testUUID(8), PlanDate: fixedNow},
			{ID: uuid.New(), StatusID: statusB, UserID: testUUID(8), PlanDate: fixedNow},
		},
		Statuses: []model.NamedRef{
			{ID: statusA, Name: "planned"},
			{ID: statusB, Name: "done"},
		},
	}

	report := NewEngine(5).Generate(fixedNow, Window{}, snap)

	require.Len(t, report.TasksByStatus, 2)
	assert.Equal(t, statusA, report.TasksByStatus[0].StatusID)
	assert.Equal(t, "planned", report.TasksByStatus[0].StatusName)
	assert.Equal(t, int64(1), report.TasksByStatus[0].Count)
	assert.Equal(t, int64(2), report.TasksByStatus[1].Count)
}

func TestRollingWindowsAnchoredToClockNotWindow(t *testing.T) {
	windowFrom := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	windowTo := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	snap := model.StatsSnapshot{
		VisitorEntries: []time.Time{
			time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC), // in window, far in the past
			fixedNow.Add(-2 * time.Hour),                 // today
			fixedNow.AddDate(0, 0, -3),                   // this week
			fixedNow.AddDate(0, 0, -20),                  // this month
		},
	}

	report := NewEngine(5).Generate(fixedNow, Window{From: &windowFrom, To: &windowTo}, snap)

	assert.Equal(t, int64(1), report.VisitorsToday)
	assert.Equal(t, int64(2), report.VisitorsWeek)
	assert.Equal(t, int64(3), report.VisitorsMonth)
	// window-scoped series still reflects January 2020
	require.Len(t, report.VisitorsPerDay, 1)
	assert.Equal(t, "2020-01-01", report.VisitorsPerDay[0].Date)
}

func TestVisitorsPerDayOmitsEmptyDays(t *testing.T) {
	snap := model.StatsSnapshot{
		VisitorEntries: []time.Time{
			time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC),
			time.Date(2024, 6, 10, 17, 0, 0, 0, time.UTC),
			time.Date(2024, 6, 13, 8, 0, 0, 0, time.UTC),
		},
	}

	report := NewEngine(5).Generate(fixedNow, Window{}, snap)

	require.Len(t, report.VisitorsPerDay, 2)
	assert.Equal(t, model.DayCount{Date: "2024-06-10", Count: 2}, report.VisitorsPerDay[0])
	assert.Equal(t, model.DayCount{Date: "2024-06-13", Count: 1}, report.VisitorsPerDay[1])
}

func TestAggregateFulfillmentIgnoresWindow(t *testing.T) {
	engine := NewEngine(5)
	rows := []model.TaskPlanFact{
		{PlanDate: time.Date(2019, 5, 1, 0, 0, 0, 0, time.UTC), Completed: true},
		{PlanDate: time.Date(2019, 5, 1, 0, 0, 0, 0, time.UTC), Completed: false},
		{PlanDate: time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC), Completed: true},
	}

	result := engine.AggregateFulfillment(rows)

	require.Len(t, result, 2)
	assert.Equal(t, model.FulfillmentRow{Date: "2019-05-01", Planned: 2, Fact: 1}, result[0])
	assert.Equal(t, model.FulfillmentRow{Date: "2024-06-14", Planned: 1, Fact: 1}, result[1])
}

func TestGlobalCountsComeFromSnapshot(t *testing.T) {
	snap := model.StatsSnapshot{TruckCount: 42, DriverCount: 17}

	report := NewEngine(5).Generate(fixedNow, Window{}, snap)

	assert.Equal(t, int64(42), report.TotalTrucks)
	assert.Equal(t, int64(17), report.TotalDrivers)
}
