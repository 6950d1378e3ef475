package model

import (
	"time"

	"github.com/google/uuid"
)

// StatsSnapshot is the point-in-time read the reporting engine aggregates over.
// All rows are loaded inside a single read transaction so the sub-aggregates of
// one report cannot disagree with each other.
type StatsSnapshot struct {
	Tasks          []TaskRecord
	Loadings       []LoadingRecord
	Weighings      []WeighingRecord
	Statuses       []NamedRef
	Warehouses     []NamedRef
	Users          []NamedRef
	TruckCount     int64
	DriverCount    int64
	VisitorEntries []time.Time
}

type TaskRecord struct {
	ID       uuid.UUID
	StatusID uuid.UUID
	UserID   uuid.UUID
	PlanDate time.Time
	EndDate  *time.Time
}

type LoadingRecord struct {
	ID          uuid.UUID
	TaskID      uuid.UUID
	WarehouseID uuid.UUID
}

type WeighingRecord struct {
	ID     uuid.UUID
	TaskID uuid.UUID
	Weight float64
}

// NamedRef is an id/name lookup row used for status, warehouse and user labels.
type NamedRef struct {
	ID   uuid.UUID
	Name string
}

// TaskPlanFact is one task's scheduling outcome: planned date plus whether the
// task was actually completed.
type TaskPlanFact struct {
	PlanDate  time.Time
	Completed bool
}

type StatusCount struct {
	StatusID   uuid.UUID `json:"status_id"`
	StatusName string    `json:"status_name"`
	Count      int64     `json:"count"`
}

type DayCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type WarehouseCount struct {
	WarehouseID   uuid.UUID `json:"warehouse_id"`
	WarehouseName string    `json:"warehouse_name"`
	Count         int64     `json:"count"`
}

type UserTaskCount struct {
	UserID   uuid.UUID `json:"user_id"`
	UserName string    `json:"user_name"`
	Count    int64     `json:"count"`
}

type PeriodCount struct {
	Period string `json:"period"`
	Count  int64  `json:"count"`
}

type FulfillmentRow struct {
	Date    string `json:"date"`
	Planned int64  `json:"planned"`
	Fact    int64  `json:"fact"`
}

// StatsReport is the result of one report generation. Every field is always
// present; empty collections and zero counts stand in for "no data".
type StatsReport struct {
	WindowFrom              string           `json:"window_from"`
	WindowTo                string           `json:"window_to"`
	TotalTasks              int64            `json:"total_tasks"`
	TasksByStatus           []StatusCount    `json:"tasks_by_status"`
	TotalLoadings           int64            `json:"total_loadings"`
	TotalWeighings          int64            `json:"total_weighings"`
	AverageWeight           float64          `json:"average_weight"`
	TotalTrucks             int64            `json:"total_trucks"`
	TotalDrivers            int64            `json:"total_drivers"`
	VisitorsToday           int64            `json:"visitors_today"`
	VisitorsWeek            int64            `json:"visitors_week"`
	VisitorsMonth           int64            `json:"visitors_month"`
	VisitorsPerDay          []DayCount       `json:"visitors_per_day"`
	TopWarehousesByLoadings []WarehouseCount `json:"top_warehouses_by_loadings"`
	TasksPerUser            []UserTaskCount  `json:"tasks_per_user"`
}
