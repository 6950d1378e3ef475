package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/yardops/internal/model"
	"github.com/nurpe/yardops/internal/repository"
)

type VisitorService struct {
	repo  *repository.VisitorRepository
	clock func() time.Time
}

func NewVisitorService(repo *repository.VisitorRepository) *VisitorService {
	return &VisitorService{repo: repo, clock: time.Now}
}

type CheckInInput struct {
	FullName string
	Company  string
	GateID   *uuid.UUID
}

// CheckIn registers a visitor at the gate; guards and managers may do it.
func (s *VisitorService) CheckIn(ctx context.Context, principal model.Principal, input CheckInInput) (*model.Visitor, error) {
	if principal.IsDriver() {
		return nil, ErrPermissionDenied
	}
	if strings.TrimSpace(input.FullName) == "" {
		return nil, fmt.Errorf("%w: full_name is required", ErrInvalidInput)
	}

	visitor := &model.Visitor{
		ID:        uuid.New(),
		FullName:  strings.TrimSpace(input.FullName),
		Company:   strings.TrimSpace(input.Company),
		GateID:    input.GateID,
		EntryDate: s.clock(),
	}
	if err := s.repo.Create(ctx, visitor); err != nil {
		return nil, err
	}
	return visitor, nil
}

func (s *VisitorService) CheckOut(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if principal.IsDriver() {
		return ErrPermissionDenied
	}
	if err := s.repo.SetExit(ctx, id, s.clock()); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// ListByDay lists visitors whose entry falls on the given calendar day.
func (s *VisitorService) ListByDay(ctx context.Context, day time.Time) ([]model.Visitor, error) {
	y, m, d := day.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, day.Location())
	to := from.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return s.repo.ListBetween(ctx, from, to)
}
