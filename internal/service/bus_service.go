package service

import (
	"context"

	"busbook/internal/db"
	apperrors "busbook/internal/errors"
	"busbook/internal/model"
	"busbook/internal/repository"
)

// BusService exposes bus domain operations.
type BusService interface {
	ListBuses(ctx context.Context) ([]model.Bus, error)
	CreateBus(ctx context.Context, busNumber string, totalSeats, availableSeats int) (*model.Bus, error)
	BusesWithAvailableSeats(ctx context.Context, minSeats int) ([]model.Bus, error)
	SeedBuses(ctx context.Context, buses []model.Bus) (created, skipped int, err error)
}

type busService struct {
	repo repository.BusRepository
}

// NewBusService builds a BusService over the repository.
func NewBusService(repo repository.BusRepository) BusService {
	return &busService{repo: repo}
}

func (s *busService) ListBuses(ctx context.Context) ([]model.Bus, error) {
	return s.repo.List(ctx)
}

// CreateBus inserts the bus and re-reads the row so system-generated values
// are reflected in the result.
func (s *busService) CreateBus(ctx context.Context, busNumber string, totalSeats, availableSeats int) (*model.Bus, error) {
	bus := &model.Bus{
		BusNumber:      busNumber,
		TotalSeats:     totalSeats,
		AvailableSeats: availableSeats,
	}
	if err := s.repo.Create(ctx, bus); err != nil {
		if db.IsDuplicateKey(err) {
			return nil, apperrors.ErrDuplicateBusNumber
		}
		return nil, err
	}
	return s.repo.FindByID(ctx, bus.ID)
}

func (s *busService) BusesWithAvailableSeats(ctx context.Context, minSeats int) ([]model.Bus, error) {
	return s.repo.ListByAvailableSeats(ctx, minSeats)
}

// SeedBuses inserts buses one at a time, skipping rows whose bus number is
// already taken. Used by the seed command.
func (s *busService) SeedBuses(ctx context.Context, buses []model.Bus) (created, skipped int, err error) {
	for i := range buses {
		bus := buses[i]
		if err := s.repo.Create(ctx, &bus); err != nil {
			if db.IsDuplicateKey(err) {
				skipped++
				continue
			}
			return created, skipped, err
		}
		created++
	}
	return created, skipped, nil
}
