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

type YardService struct {
	repo  *repository.YardRepository
	clock func() time.Time
}

func NewYardService(repo *repository.YardRepository) *YardService {
	return &YardService{repo: repo, clock: time.Now}
}

type CreateTruckInput struct {
	PlateNumber string
	Brand       string
	UserID      *uuid.UUID
}

func (s *YardService) CreateTruck(ctx context.Context, principal model.Principal, input CreateTruckInput) (*model.Truck, error) {
	if !principal.CanManageYard() {
		return nil, ErrPermissionDenied
	}
	if strings.TrimSpace(input.PlateNumber) == "" {
		return nil, fmt.Errorf("%w: plate_number is required", ErrInvalidInput)
	}

	truck := &model.Truck{
		ID:          uuid.New(),
		PlateNumber: strings.ToUpper(strings.TrimSpace(input.PlateNumber)),
		Brand:       strings.TrimSpace(input.Brand),
		UserID:      input.UserID,
		CreatedAt:   s.clock(),
	}
	if err := s.repo.CreateTruck(ctx, truck); err != nil {
		return nil, err
	}
	return truck, nil
}

func (s *YardService) ListTrucks(ctx context.Context) ([]model.Truck, error) {
	return s.repo.ListTrucks(ctx)
}

func (s *YardService) AssignTruckDriver(ctx context.Context, principal model.Principal, truckID uuid.UUID, userID *uuid.UUID) error {
	if !principal.CanManageYard() {
		return ErrPermissionDenied
	}
	if err := s.repo.AssignTruckDriver(ctx, truckID, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *YardService) DeleteTruck(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if !principal.CanManageYard() {
		return ErrPermissionDenied
	}
	if err := s.repo.DeleteTruck(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *YardService) ListDrivers(ctx context.Context) ([]model.Driver, error) {
	return s.repo.ListDrivers(ctx)
}

func (s *YardService) CreateWarehouse(ctx context.Context, principal model.Principal, name, address string) (*model.Warehouse, error) {
	if !principal.CanManageYard() {
		return nil, ErrPermissionDenied
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	warehouse := &model.Warehouse{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		Address:   strings.TrimSpace(address),
		CreatedAt: s.clock(),
	}
	if err := s.repo.CreateWarehouse(ctx, warehouse); err != nil {
		return nil, err
	}
	return warehouse, nil
}

func (s *YardService) ListWarehouses(ctx context.Context) ([]model.Warehouse, error) {
	return s.repo.ListWarehouses(ctx)
}

func (s *YardService) DeleteWarehouse(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if !principal.CanManageYard() {
		return ErrPermissionDenied
	}
	if err := s.repo.DeleteWarehouse(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *YardService) CreateGate(ctx context.Context, principal model.Principal, name string, warehouseID *uuid.UUID) (*model.Gate, error) {
	if !principal.CanManageYard() {
		return nil, ErrPermissionDenied
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	gate := &model.Gate{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(name),
		WarehouseID: warehouseID,
		CreatedAt:   s.clock(),
	}
	if err := s.repo.CreateGate(ctx, gate); err != nil {
		return nil, err
	}
	return gate, nil
}

func (s *YardService) ListGates(ctx context.Context) ([]model.Gate, error) {
	return s.repo.ListGates(ctx)
}

func (s *YardService) DeleteGate(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if !principal.CanManageYard() {
		return ErrPermissionDenied
	}
	if err := s.repo.DeleteGate(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}
