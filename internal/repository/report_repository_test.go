package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/nurpe/yardops/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Status{},
		&model.Truck{},
		&model.Warehouse{},
		&model.Gate{},
		&model.Task{},
		&model.TaskLoading{},
		&model.TaskWeighing{},
		&model.Visitor{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) model.User {
	t.Helper()
	user := model.User{ID: uuid.New(), Name: name, Email: name + "@yard.test", Role: model.RoleDriver}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedStatus(t *testing.T, db *gorm.DB, name string) model.Status {
	t.Helper()
	status := model.Status{ID: uuid.New(), Name: name}
	require.NoError(t, db.Create(&status).Error)
	return status
}

func seedTask(t *testing.T, db *gorm.DB, status model.Status, user model.User, planDate time.Time, endDate *time.Time) model.Task {
	t.Helper()
	task := model.Task{
		ID:       uuid.New(),
		StatusID: status.ID,
		UserID:   user.ID,
		PlanDate: planDate,
		EndDate:  endDate,
	}
	require.NoError(t, db.Create(&task).Error)
	return task
}

func TestLoadStatsSnapshotWindowFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	from := time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 15, 23, 59, 59, 0, time.UTC)

	status := seedStatus(t, db, "planned")
	user := seedUser(t, db, "aidar")
	warehouse := model.Warehouse{ID: uuid.New(), Name: "North"}
	require.NoError(t, db.Create(&warehouse).Error)

	inWindow := seedTask(t, db, status, user, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), nil)
	outOfWindow := seedTask(t, db, status, user, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), nil)

	for _, task := range []model.Task{inWindow, outOfWindow} {
		require.NoError(t, db.Create(&model.TaskLoading{ID: uuid.New(), TaskID: task.ID, WarehouseID: warehouse.ID}).Error)
		require.NoError(t, db.Create(&model.TaskWeighing{ID: uuid.New(), TaskID: task.ID, Weight: 100}).Error)
	}

	snap, err := repo.LoadStatsSnapshot(context.Background(), from, to, now)

	require.NoError(t, err)
	require.Len(t, snap.Tasks, 1)
	assert.Equal(t, inWindow.ID, snap.Tasks[0].ID)
	// dependents attributed via the parent task's plan date
	require.Len(t, snap.Loadings, 1)
	assert.Equal(t, inWindow.ID, snap.Loadings[0].TaskID)
	require.Len(t, snap.Weighings, 1)
	assert.Equal(t, inWindow.ID, snap.Weighings[0].TaskID)

	require.Len(t, snap.Statuses, 1)
	assert.Equal(t, "planned", snap.Statuses[0].Name)
	require.Len(t, snap.Warehouses, 1)
	require.Len(t, snap.Users, 1)
}

func TestLoadStatsSnapshotCountsDriversDistinct(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)

	driverOne := seedUser(t, db, "bolat")
	driverTwo := seedUser(t, db, "serik")

	// two trucks for one driver, one for another, one unassigned
	for _, owner := range []*uuid.UUID{&driverOne.ID, &driverOne.ID, &driverTwo.ID, nil} {
		truck := model.Truck{ID: uuid.New(), PlateNumber: uuid.NewString()[:8], UserID: owner}
		require.NoError(t, db.Create(&truck).Error)
	}

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	snap, err := repo.LoadStatsSnapshot(context.Background(), now.AddDate(0, 0, -7), now, now)

	require.NoError(t, err)
	assert.Equal(t, int64(4), snap.TruckCount)
	assert.Equal(t, int64(2), snap.DriverCount)
}

func TestLoadStatsSnapshotVisitorRangeCoversRollingWindows(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	// window far in the past
	from := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2020, 1, 2, 23, 59, 59, 0, time.UTC)

	visits := []time.Time{
		time.Date(2020, 1, 1, 10, 0, 0, 0, time.UTC), // in window
		now.AddDate(0, 0, -3),                        // rolling week
		time.Date(2015, 3, 3, 9, 0, 0, 0, time.UTC),  // neither
	}
	for _, entry := range visits {
		visitor := model.Visitor{ID: uuid.New(), FullName: "visitor", EntryDate: entry}
		require.NoError(t, db.Create(&visitor).Error)
	}

	snap, err := repo.LoadStatsSnapshot(context.Background(), from, to, now)

	require.NoError(t, err)
	// both the windowed visit and the rolling-window visit are present
	require.Len(t, snap.VisitorEntries, 2)
}

func TestListVisitEntriesReturnsFullHistory(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)

	entries := []time.Time{
		time.Date(2023, 1, 5, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}
	for _, entry := range entries {
		require.NoError(t, db.Create(&model.Visitor{ID: uuid.New(), FullName: "visitor", EntryDate: entry}).Error)
	}

	got, err := repo.ListVisitEntries(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Before(got[1]))
}

func TestListTaskPlanFacts(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)

	status := seedStatus(t, db, "planned")
	user := seedUser(t, db, "aidar")

	done := time.Date(2024, 6, 2, 18, 0, 0, 0, time.UTC)
	seedTask(t, db, status, user, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), &done)
	seedTask(t, db, status, user, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), nil)

	facts, err := repo.ListTaskPlanFacts(context.Background())

	require.NoError(t, err)
	require.Len(t, facts, 2)
	completed := 0
	for _, fact := range facts {
		if fact.Completed {
			completed++
		}
	}
	assert.Equal(t, 1, completed)
}
