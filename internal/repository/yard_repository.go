package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/yardops/internal/model"
)

// YardRepository covers the static yard entities: trucks, warehouses, gates
// and the driver roster derived from truck ownership.
type YardRepository struct {
	db *gorm.DB
}

func NewYardRepository(db *gorm.DB) *YardRepository {
	return &YardRepository{db: db}
}

func (r *YardRepository) CreateTruck(ctx context.Context, truck *model.Truck) error {
	return r.db.WithContext(ctx).Create(truck).Error
}

func (r *YardRepository) GetTruck(ctx context.Context, id uuid.UUID) (*model.Truck, error) {
	var truck model.Truck
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, plate_number, brand, user_id, created_at
		FROM trucks
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&truck).Error; err != nil {
		return nil, err
	}
	if truck.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &truck, nil
}

func (r *YardRepository) ListTrucks(ctx context.Context) ([]model.Truck, error) {
	var trucks []model.Truck
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, plate_number, brand, user_id, created_at
		FROM trucks
		ORDER BY plate_number ASC
	`).Scan(&trucks).Error; err != nil {
		return nil, err
	}
	return trucks, nil
}

func (r *YardRepository) AssignTruckDriver(ctx context.Context, truckID uuid.UUID, userID *uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE trucks SET user_id = ? WHERE id = ?
	`, userID, truckID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *YardRepository) DeleteTruck(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM trucks WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListDrivers returns users owning at least one truck, with their truck count.
func (r *YardRepository) ListDrivers(ctx context.Context) ([]model.Driver, error) {
	var drivers []model.Driver
	if err := r.db.WithContext(ctx).Raw(`
		SELECT u.id, u.name, COUNT(t.id) AS truck_count
		FROM users u
		JOIN trucks t ON t.user_id = u.id
		GROUP BY u.id, u.name
		ORDER BY u.name ASC
	`).Scan(&drivers).Error; err != nil {
		return nil, err
	}
	return drivers, nil
}

func (r *YardRepository) CreateWarehouse(ctx context.Context, warehouse *model.Warehouse) error {
	return r.db.WithContext(ctx).Create(warehouse).Error
}

func (r *YardRepository) GetWarehouse(ctx context.Context, id uuid.UUID) (*model.Warehouse, error) {
	var warehouse model.Warehouse
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, address, created_at
		FROM warehouses
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&warehouse).Error; err != nil {
		return nil, err
	}
	if warehouse.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &warehouse, nil
}

func (r *YardRepository) ListWarehouses(ctx context.Context) ([]model.Warehouse, error) {
	var warehouses []model.Warehouse
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, address, created_at
		FROM warehouses
		ORDER BY name ASC
	`).Scan(&warehouses).Error; err != nil {
		return nil, err
	}
	return warehouses, nil
}

func (r *YardRepository) DeleteWarehouse(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM warehouses WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *YardRepository) CreateGate(ctx context.Context, gate *model.Gate) error {
	return r.db.WithContext(ctx).Create(gate).Error
}

func (r *YardRepository) ListGates(ctx context.Context) ([]model.Gate, error) {
	var gates []model.Gate
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, warehouse_id, created_at
		FROM gates
		ORDER BY name ASC
	`).Scan(&gates).Error; err != nil {
		return nil, err
	}
	return gates, nil
}

func (r *YardRepository) DeleteGate(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM gates WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
