package service

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
	"github.com/nurpe/yardops/internal/repository"
)

func newTaskServiceUnderTest(t *testing.T) (*TaskService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Status{},
		&model.Warehouse{},
		&model.Task{},
		&model.TaskLoading{},
		&model.TaskWeighing{},
	))

	svc := NewTaskService(repository.NewTaskRepository(db))
	svc.clock = func() time.Time { return fixedNow }
	return svc, db
}

func managerPrincipal() model.Principal {
	return model.Principal{UserID: uuid.New(), Role: model.RoleManager}
}

func TestTaskCreateRequiresManageRole(t *testing.T) {
	svc, db := newTaskServiceUnderTest(t)

	status := model.Status{ID: uuid.New(), Name: "planned"}
	require.NoError(t, db.Create(&status).Error)
	driver := model.Principal{UserID: uuid.New(), Role: model.RoleDriver}

	_, err := svc.Create(context.Background(), driver, CreateTaskInput{
		StatusID: status.ID,
		UserID:   driver.UserID,
		PlanDate: fixedNow,
	})

	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestTaskCreateAndGet(t *testing.T) {
	svc, db := newTaskServiceUnderTest(t)

	status := model.Status{ID: uuid.New(), Name: "planned"}
	require.NoError(t, db.Create(&status).Error)
	assignee := uuid.New()

	created, err := svc.Create(context.Background(), managerPrincipal(), CreateTaskInput{
		StatusID: status.ID,
		UserID:   assignee,
		PlanDate: time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
		Comment:  "unload pallets",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	got, err := svc.Get(context.Background(), managerPrincipal(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "unload pallets", got.Comment)
	assert.Nil(t, got.EndDate)
}

func TestTaskCompleteStampsEndDateAndStatus(t *testing.T) {
	svc, db := newTaskServiceUnderTest(t)

	planned := model.Status{ID: uuid.New(), Name: "planned"}
	completed := model.Status{ID: uuid.New(), Name: "completed"}
	require.NoError(t, db.Create(&planned).Error)
	require.NoError(t, db.Create(&completed).Error)

	assignee := uuid.New()
	task, err := svc.Create(context.Background(), managerPrincipal(), CreateTaskInput{
		StatusID: planned.ID,
		UserID:   assignee,
		PlanDate: fixedNow,
	})
	require.NoError(t, err)

	// the assigned driver may complete their own task
	driver := model.Principal{UserID: assignee, Role: model.RoleDriver}
	done, err := svc.Complete(context.Background(), driver, task.ID)

	require.NoError(t, err)
	assert.Equal(t, completed.ID, done.StatusID)
	require.NotNil(t, done.EndDate)
	assert.Equal(t, fixedNow, *done.EndDate)
}

func TestTaskCompleteForeignTaskDenied(t *testing.T) {
	svc, db := newTaskServiceUnderTest(t)

	planned := model.Status{ID: uuid.New(), Name: "planned"}
	completed := model.Status{ID: uuid.New(), Name: "completed"}
	require.NoError(t, db.Create(&planned).Error)
	require.NoError(t, db.Create(&completed).Error)

	task, err := svc.Create(context.Background(), managerPrincipal(), CreateTaskInput{
		StatusID: planned.ID,
		UserID:   uuid.New(),
		PlanDate: fixedNow,
	})
	require.NoError(t, err)

	stranger := model.Principal{UserID: uuid.New(), Role: model.RoleDriver}
	_, err = svc.Complete(context.Background(), stranger, task.ID)

	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestTaskAddWeighingValidatesWeight(t *testing.T) {
	svc, db := newTaskServiceUnderTest(t)

	planned := model.Status{ID: uuid.New(), Name: "planned"}
	require.NoError(t, db.Create(&planned).Error)

	task, err := svc.Create(context.Background(), managerPrincipal(), CreateTaskInput{
		StatusID: planned.ID,
		UserID:   uuid.New(),
		PlanDate: fixedNow,
	})
	require.NoError(t, err)

	_, err = svc.AddWeighing(context.Background(), managerPrincipal(), task.ID, -5)
	assert.ErrorIs(t, err, ErrInvalidInput)

	weighing, err := svc.AddWeighing(context.Background(), managerPrincipal(), task.ID, 120.5)
	require.NoError(t, err)
	assert.Equal(t, task.ID, weighing.TaskID)

	listed, err := svc.ListWeighings(context.Background(), task.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, 120.5, listed[0].Weight)
}

func TestTaskAddLoadingUnknownTask(t *testing.T) {
	svc, _ := newTaskServiceUnderTest(t)

	_, err := svc.AddLoading(context.Background(), managerPrincipal(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, ErrNotFound)
}
