package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/yardops/internal/model"
	"github.com/nurpe/yardops/internal/repository"
)

const completedStatusName = "completed"

type TaskService struct {
	repo  *repository.TaskRepository
	clock func() time.Time
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo, clock: time.Now}
}

type CreateTaskInput struct {
	StatusID uuid.UUID
	UserID   uuid.UUID
	PlanDate time.Time
	Comment  string
}

func (s *TaskService) Create(ctx context.Context, principal model.Principal, input CreateTaskInput) (*model.Task, error) {
	if !principal.CanManageYard() {
		return nil, ErrPermissionDenied
	}
	if input.StatusID == uuid.Nil {
		return nil, fmt.Errorf("%w: status_id is required", ErrInvalidInput)
	}
	if input.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	if input.PlanDate.IsZero() {
		return nil, fmt.Errorf("%w: plan_date is required", ErrInvalidInput)
	}

	task := &model.Task{
		ID:        uuid.New(),
		StatusID:  input.StatusID,
		UserID:    input.UserID,
		PlanDate:  input.PlanDate,
		Comment:   input.Comment,
		CreatedAt: s.clock(),
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Get(ctx context.Context, principal model.Principal, id uuid.UUID) (*model.Task, error) {
	task, err := s.repo.Get(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if principal.IsDriver() && task.UserID != principal.UserID {
		return nil, ErrPermissionDenied
	}
	return task, nil
}

// List returns tasks in the optional window. Drivers only see their own.
func (s *TaskService) List(ctx context.Context, principal model.Principal, from, to *time.Time) ([]model.Task, error) {
	var userID *uuid.UUID
	if principal.IsDriver() {
		id := principal.UserID
		userID = &id
	}
	return s.repo.List(ctx, from, to, userID)
}

func (s *TaskService) UpdateStatus(ctx context.Context, principal model.Principal, id, statusID uuid.UUID) error {
	if !principal.CanManageYard() {
		return ErrPermissionDenied
	}
	if statusID == uuid.Nil {
		return fmt.Errorf("%w: status_id is required", ErrInvalidInput)
	}
	if err := s.repo.UpdateStatus(ctx, id, statusID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Complete stamps the task's end date and moves it to the completed status.
// The assigned driver may complete their own task.
func (s *TaskService) Complete(ctx context.Context, principal model.Principal, id uuid.UUID) (*model.Task, error) {
	task, err := s.repo.Get(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !principal.CanManageYard() && task.UserID != principal.UserID {
		return nil, ErrPermissionDenied
	}

	status, err := s.repo.GetStatusByName(ctx, completedStatusName)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: status %q is not seeded", ErrInvalidInput, completedStatusName)
		}
		return nil, err
	}

	endDate := s.clock()
	if err := s.repo.Complete(ctx, id, status.ID, endDate); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	task.StatusID = status.ID
	task.EndDate = &endDate
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if !principal.CanManageYard() {
		return ErrPermissionDenied
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *TaskService) AddLoading(ctx context.Context, principal model.Principal, taskID, warehouseID uuid.UUID) (*model.TaskLoading, error) {
	if !principal.CanManageYard() {
		return nil, ErrPermissionDenied
	}
	if warehouseID == uuid.Nil {
		return nil, fmt.Errorf("%w: warehouse_id is required", ErrInvalidInput)
	}
	if _, err := s.repo.Get(ctx, taskID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	loading := &model.TaskLoading{
		ID:          uuid.New(),
		TaskID:      taskID,
		WarehouseID: warehouseID,
		CreatedAt:   s.clock(),
	}
	if err := s.repo.AddLoading(ctx, loading); err != nil {
		return nil, err
	}
	return loading, nil
}

func (s *TaskService) AddWeighing(ctx context.Context, principal model.Principal, taskID uuid.UUID, weight float64) (*model.TaskWeighing, error) {
	if !principal.CanManageYard() {
		return nil, ErrPermissionDenied
	}
	if weight <= 0 {
		return nil, fmt.Errorf("%w: weight must be positive", ErrInvalidInput)
	}
	if _, err := s.repo.Get(ctx, taskID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	weighing := &model.TaskWeighing{
		ID:        uuid.New(),
		TaskID:    taskID,
		Weight:    weight,
		CreatedAt: s.clock(),
	}
	if err := s.repo.AddWeighing(ctx, weighing); err != nil {
		return nil, err
	}
	return weighing, nil
}

func (s *TaskService) ListLoadings(ctx context.Context, taskID uuid.UUID) ([]model.TaskLoading, error) {
	return s.repo.ListLoadings(ctx, taskID)
}

func (s *TaskService) ListWeighings(ctx context.Context, taskID uuid.UUID) ([]model.TaskWeighing, error) {
	return s.repo.ListWeighings(ctx, taskID)
}

func (s *TaskService) ListStatuses(ctx context.Context) ([]model.Status, error) {
	return s.repo.ListStatuses(ctx)
}
