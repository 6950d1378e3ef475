package model

import (
	"time"

	"github.com/google/uuid"
)

type Status struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `json:"name"`
}

type Task struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	StatusID  uuid.UUID  `gorm:"type:uuid" json:"status_id"`
	UserID    uuid.UUID  `gorm:"type:uuid" json:"user_id"`
	PlanDate  time.Time  `json:"plan_date"`
	EndDate   *time.Time `json:"end_date"` // set when the task is completed
	Comment   string     `json:"comment"`
	CreatedAt time.Time  `json:"created_at"`
}

type TaskLoading struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TaskID      uuid.UUID `gorm:"type:uuid" json:"task_id"`
	WarehouseID uuid.UUID `gorm:"type:uuid" json:"warehouse_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type TaskWeighing struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TaskID    uuid.UUID `gorm:"type:uuid" json:"task_id"`
	Weight    float64   `json:"weight"`
	CreatedAt time.Time `json:"created_at"`
}
