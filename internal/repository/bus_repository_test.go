package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"busbook/internal/db"
	"busbook/internal/model"
	"busbook/internal/repository"
)

func seedBuses(t *testing.T, repo repository.BusRepository) {
	t.Helper()
	ctx := context.Background()
	for _, bus := range []model.Bus{
		{BusNumber: "BUS003", TotalSeats: 60, AvailableSeats: 30},
		{BusNumber: "BUS001", TotalSeats: 50, AvailableSeats: 45},
		{BusNumber: "BUS002", TotalSeats: 40, AvailableSeats: 15},
		{BusNumber: "BUS004", TotalSeats: 35, AvailableSeats: 5},
	} {
		b := bus
		require.NoError(t, repo.Create(ctx, &b))
	}
}

func TestBusRepository_CreateDuplicateNumber(t *testing.T) {
	repo := repository.NewBusRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Bus{BusNumber: "BUS001", TotalSeats: 50, AvailableSeats: 45}))

	err := repo.Create(ctx, &model.Bus{BusNumber: "BUS001", TotalSeats: 40, AvailableSeats: 10})
	require.Error(t, err)
	assert.True(t, db.IsDuplicateKey(err))
}

func TestBusRepository_ListOrdersByBusNumber(t *testing.T) {
	repo := repository.NewBusRepository(newTestDB(t))
	seedBuses(t, repo)

	buses, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, buses, 4)

	numbers := make([]string, 0, len(buses))
	for _, bus := range buses {
		numbers = append(numbers, bus.BusNumber)
	}
	assert.Equal(t, []string{"BUS001", "BUS002", "BUS003", "BUS004"}, numbers)
}

func TestBusRepository_ListByAvailableSeats(t *testing.T) {
	repo := repository.NewBusRepository(newTestDB(t))
	seedBuses(t, repo)

	buses, err := repo.ListByAvailableSeats(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, buses, 3)

	// Strictly greater than the threshold, most available first
	seats := make([]int, 0, len(buses))
	for _, bus := range buses {
		seats = append(seats, bus.AvailableSeats)
	}
	assert.Equal(t, []int{45, 30, 15}, seats)
}

func TestBusRepository_ListByAvailableSeatsExclusiveBound(t *testing.T) {
	repo := repository.NewBusRepository(newTestDB(t))
	seedBuses(t, repo)

	// A bus with exactly 15 free seats must not match a threshold of 15
	buses, err := repo.ListByAvailableSeats(context.Background(), 15)
	require.NoError(t, err)
	require.Len(t, buses, 2)
	for _, bus := range buses {
		assert.Greater(t, bus.AvailableSeats, 15)
	}
}

func TestBusRepository_ListByAvailableSeatsNoMatch(t *testing.T) {
	repo := repository.NewBusRepository(newTestDB(t))
	seedBuses(t, repo)

	buses, err := repo.ListByAvailableSeats(context.Background(), 100)
	require.NoError(t, err)
	assert.Empty(t, buses)
}
