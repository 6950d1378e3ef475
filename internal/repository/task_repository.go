package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/yardops/internal/model"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) Get(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, status_id, user_id, plan_date, end_date, comment, created_at
		FROM tasks
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&task).Error; err != nil {
		return nil, err
	}
	if task.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &task, nil
}

// List returns tasks ordered by plan date; either bound may be nil.
func (r *TaskRepository) List(ctx context.Context, from, to *time.Time, userID *uuid.UUID) ([]model.Task, error) {
	query := r.db.WithContext(ctx).Model(&model.Task{})
	if from != nil {
		query = query.Where("plan_date >= ?", *from)
	}
	if to != nil {
		query = query.Where("plan_date <= ?", *to)
	}
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	var tasks []model.Task
	if err := query.Order("plan_date ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, id, statusID uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE tasks SET status_id = ? WHERE id = ?
	`, statusID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Complete stamps end_date and moves the task into the given status.
func (r *TaskRepository) Complete(ctx context.Context, id, statusID uuid.UUID, endDate time.Time) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE tasks SET status_id = ?, end_date = ? WHERE id = ?
	`, statusID, endDate, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM tasks WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TaskRepository) AddLoading(ctx context.Context, loading *model.TaskLoading) error {
	return r.db.WithContext(ctx).Create(loading).Error
}

func (r *TaskRepository) AddWeighing(ctx context.Context, weighing *model.TaskWeighing) error {
	return r.db.WithContext(ctx).Create(weighing).Error
}

func (r *TaskRepository) ListLoadings(ctx context.Context, taskID uuid.UUID) ([]model.TaskLoading, error) {
	var loadings []model.TaskLoading
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, task_id, warehouse_id, created_at
		FROM task_loadings
		WHERE task_id = ?
		ORDER BY created_at ASC
	`, taskID).Scan(&loadings).Error; err != nil {
		return nil, err
	}
	return loadings, nil
}

func (r *TaskRepository) ListWeighings(ctx context.Context, taskID uuid.UUID) ([]model.TaskWeighing, error) {
	var weighings []model.TaskWeighing
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, task_id, weight, created_at
		FROM task_weighings
		WHERE task_id = ?
		ORDER BY created_at ASC
	`, taskID).Scan(&weighings).Error; err != nil {
		return nil, err
	}
	return weighings, nil
}

func (r *TaskRepository) ListStatuses(ctx context.Context) ([]model.Status, error) {
	var statuses []model.Status
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, name FROM statuses ORDER BY name ASC
	`).Scan(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

func (r *TaskRepository) GetStatusByName(ctx context.Context, name string) (*model.Status, error) {
	var status model.Status
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, name FROM statuses WHERE name = ? LIMIT 1
	`, name).Scan(&status).Error; err != nil {
		return nil, err
	}
	if status.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &status, nil
}
