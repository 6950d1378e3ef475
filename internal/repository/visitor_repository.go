package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/yardops/internal/model"
)

type VisitorRepository struct {
	db *gorm.DB
}

func NewVisitorRepository(db *gorm.DB) *VisitorRepository {
	return &VisitorRepository{db: db}
}

func (r *VisitorRepository) Create(ctx context.Context, visitor *model.Visitor) error {
	return r.db.WithContext(ctx).Create(visitor).Error
}

func (r *VisitorRepository) Get(ctx context.Context, id uuid.UUID) (*model.Visitor, error) {
	var visitor model.Visitor
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, full_name, company, gate_id, entry_date, exit_date
		FROM visitors
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&visitor).Error; err != nil {
		return nil, err
	}
	if visitor.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &visitor, nil
}

// SetExit stamps the check-out time once; an already checked-out visitor is
// left untouched.
func (r *VisitorRepository) SetExit(ctx context.Context, id uuid.UUID, exit time.Time) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE visitors SET exit_date = ? WHERE id = ? AND exit_date IS NULL
	`, exit, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *VisitorRepository) ListBetween(ctx context.Context, from, to time.Time) ([]model.Visitor, error) {
	var visitors []model.Visitor
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, full_name, company, gate_id, entry_date, exit_date
		FROM visitors
		WHERE entry_date >= ? AND entry_date <= ?
		ORDER BY entry_date ASC
	`, from, to).Scan(&visitors).Error; err != nil {
		return nil, err
	}
	return visitors, nil
}
