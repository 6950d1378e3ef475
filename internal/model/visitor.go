package model

import (
	"time"

	"github.com/google/uuid"
)

type Visitor struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	FullName  string     `json:"full_name"`
	Company   string     `json:"company"`
	GateID    *uuid.UUID `gorm:"type:uuid" json:"gate_id"`
	EntryDate time.Time  `json:"entry_date"`
	ExitDate  *time.Time `json:"exit_date"`
}
