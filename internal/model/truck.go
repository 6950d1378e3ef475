package model

import (
	"time"

	"github.com/google/uuid"
)

type Truck struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	PlateNumber string     `json:"plate_number"`
	Brand       string     `json:"brand"`
	UserID      *uuid.UUID `gorm:"type:uuid" json:"user_id"` // assigned driver
	CreatedAt   time.Time  `json:"created_at"`
}

// Driver is a user that owns at least one truck.
type Driver struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	TruckCount int64     `json:"truck_count"`
}
