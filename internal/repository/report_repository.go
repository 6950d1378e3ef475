package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/nurpe/yardops/internal/model"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// LoadStatsSnapshot reads everything one report needs inside a single
// transaction, so the sub-aggregates of a report observe one point-in-time
// view. Visitor entries cover the union of the report window and the trailing
// 30 days, which is enough for both the per-day series and the rolling counts.
func (r *ReportRepository) LoadStatsSnapshot(ctx context.Context, from, to, now time.Time) (model.StatsSnapshot, error) {
	var snap model.StatsSnapshot

	entriesFrom := now.AddDate(0, 0, -30)
	if from.Before(entriesFrom) {
		entriesFrom = from
	}
	entriesTo := endOfDay(now)
	if to.After(entriesTo) {
		entriesTo = to
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Raw(`
			SELECT id, status_id, user_id, plan_date, end_date
			FROM tasks
			WHERE plan_date >= ? AND plan_date <= ?
		`, from, to).Scan(&snap.Tasks).Error; err != nil {
			return err
		}

		if err := tx.Raw(`
			SELECT id, task_id, warehouse_id
			FROM task_loadings
			WHERE task_id IN (SELECT id FROM tasks WHERE plan_date >= ? AND plan_date <= ?)
		`, from, to).Scan(&snap.Loadings).Error; err != nil {
			return err
		}

		if err := tx.Raw(`
			SELECT id, task_id, weight
			FROM task_weighings
			WHERE task_id IN (SELECT id FROM tasks WHERE plan_date >= ? AND plan_date <= ?)
		`, from, to).Scan(&snap.Weighings).Error; err != nil {
			return err
		}

		if err := tx.Raw(`SELECT id, name FROM statuses`).Scan(&snap.Statuses).Error; err != nil {
			return err
		}
		if err := tx.Raw(`SELECT id, name FROM warehouses`).Scan(&snap.Warehouses).Error; err != nil {
			return err
		}
		if err := tx.Raw(`SELECT id, name FROM users`).Scan(&snap.Users).Error; err != nil {
			return err
		}

		if err := tx.Raw(`SELECT COUNT(*) FROM trucks`).Scan(&snap.TruckCount).Error; err != nil {
			return err
		}
		if err := tx.Raw(`
			SELECT COUNT(DISTINCT user_id) FROM trucks WHERE user_id IS NOT NULL
		`).Scan(&snap.DriverCount).Error; err != nil {
			return err
		}

		return tx.Raw(`
			SELECT entry_date
			FROM visitors
			WHERE entry_date >= ? AND entry_date <= ?
		`, entriesFrom, entriesTo).Scan(&snap.VisitorEntries).Error
	})
	if err != nil {
		return model.StatsSnapshot{}, err
	}
	return snap, nil
}

// ListVisitEntries returns every visitor entry timestamp on record, oldest
// first. The traffic aggregator is not window scoped.
func (r *ReportRepository) ListVisitEntries(ctx context.Context) ([]time.Time, error) {
	var entries []time.Time
	if err := r.db.WithContext(ctx).Raw(`
		SELECT entry_date
		FROM visitors
		ORDER BY entry_date ASC
	`).Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListTaskPlanFacts returns one row per scheduled task, with completion
// derived from end_date.
func (r *ReportRepository) ListTaskPlanFacts(ctx context.Context) ([]model.TaskPlanFact, error) {
	var rows []struct {
		PlanDate time.Time
		EndDate  *time.Time
	}
	if err := r.db.WithContext(ctx).Raw(`
		SELECT plan_date, end_date
		FROM tasks
		ORDER BY plan_date ASC
	`).Scan(&rows).Error; err != nil {
		return nil, err
	}

	facts := make([]model.TaskPlanFact, 0, len(rows))
	for _, row := range rows {
		facts = append(facts, model.TaskPlanFact{
			PlanDate:  row.PlanDate,
			Completed: row.EndDate != nil,
		})
	}
	return facts, nil
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location()).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
