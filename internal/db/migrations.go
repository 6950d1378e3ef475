package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		role VARCHAR(32) NOT NULL DEFAULT 'DRIVER',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_users_email ON users (email);`,
	`CREATE TABLE IF NOT EXISTS statuses (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(64) NOT NULL
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_statuses_name ON statuses (name);`,
	`INSERT INTO statuses (name)
		SELECT s.name FROM (VALUES ('planned'), ('in_progress'), ('completed'), ('cancelled')) AS s(name)
		WHERE NOT EXISTS (SELECT 1 FROM statuses WHERE statuses.name = s.name);`,
	`CREATE TABLE IF NOT EXISTS trucks (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		plate_number VARCHAR(32) NOT NULL,
		brand VARCHAR(128),
		user_id UUID REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_trucks_plate ON trucks (plate_number);`,
	`CREATE INDEX IF NOT EXISTS idx_trucks_user_id ON trucks (user_id) WHERE user_id IS NOT NULL;`,
	`CREATE TABLE IF NOT EXISTS warehouses (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		address TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS gates (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		warehouse_id UUID REFERENCES warehouses(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		status_id UUID NOT NULL REFERENCES statuses(id),
		user_id UUID NOT NULL REFERENCES users(id),
		plan_date TIMESTAMPTZ NOT NULL,
		end_date TIMESTAMPTZ,
		comment TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_plan_date ON tasks (plan_date);`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_status_id ON tasks (status_id);`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_user_id ON tasks (user_id);`,
	`CREATE TABLE IF NOT EXISTS task_loadings (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		task_id UUID NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		warehouse_id UUID NOT NULL REFERENCES warehouses(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_task_loadings_task_id ON task_loadings (task_id);`,
	`CREATE INDEX IF NOT EXISTS idx_task_loadings_warehouse_id ON task_loadings (warehouse_id);`,
	`CREATE TABLE IF NOT EXISTS task_weighings (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		task_id UUID NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		weight NUMERIC(12,3) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_task_weighings_task_id ON task_weighings (task_id);`,
	`CREATE TABLE IF NOT EXISTS visitors (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		full_name VARCHAR(255) NOT NULL,
		company VARCHAR(255),
		gate_id UUID REFERENCES gates(id),
		entry_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		exit_date TIMESTAMPTZ
	);`,
	`CREATE INDEX IF NOT EXISTS idx_visitors_entry_date ON visitors (entry_date);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
