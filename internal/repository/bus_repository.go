package repository

import (
	"context"

	"gorm.io/gorm"

	"busbook/internal/model"
)

// BusRepository defines bus persistence operations. Buses are created and
// queried but never updated or deleted.
type BusRepository interface {
	Create(ctx context.Context, bus *model.Bus) error
	FindByID(ctx context.Context, id uint) (*model.Bus, error)
	List(ctx context.Context) ([]model.Bus, error)
	ListByAvailableSeats(ctx context.Context, minSeats int) ([]model.Bus, error)
}

type busRepository struct {
	db *gorm.DB
}

// NewBusRepository builds a GORM-backed repository.
func NewBusRepository(db *gorm.DB) BusRepository {
	return &busRepository{db: db}
}

func (r *busRepository) Create(ctx context.Context, bus *model.Bus) error {
	return r.db.WithContext(ctx).Create(bus).Error
}

func (r *busRepository) FindByID(ctx context.Context, id uint) (*model.Bus, error) {
	var bus model.Bus
	if err := r.db.WithContext(ctx).First(&bus, id).Error; err != nil {
		return nil, err
	}
	return &bus, nil
}

// List returns every bus ordered by bus number.
func (r *busRepository) List(ctx context.Context) ([]model.Bus, error) {
	var buses []model.Bus
	if err := r.db.WithContext(ctx).Order("busNumber").Find(&buses).Error; err != nil {
		return nil, err
	}
	return buses, nil
}

// ListByAvailableSeats returns buses with strictly more than minSeats seats
// free, most available first.
func (r *busRepository) ListByAvailableSeats(ctx context.Context, minSeats int) ([]model.Bus, error) {
	var buses []model.Bus
	if err := r.db.WithContext(ctx).
		Where("availableSeats > ?", minSeats).
		Order("availableSeats DESC").
		Find(&buses).Error; err != nil {
		return nil, err
	}
	return buses, nil
}
