package main

import (
	"context"
	"log"

	"busbook/internal/config"
	"busbook/internal/db"
	"busbook/internal/model"
	"busbook/internal/repository"
	"busbook/internal/service"
)

var sampleUsers = []model.User{
	{Name: "John Doe", Email: "john.doe@example.com"},
	{Name: "Jane Smith", Email: "jane.smith@example.com"},
	{Name: "Mike Johnson", Email: "mike.johnson@example.com"},
	{Name: "Sarah Wilson", Email: "sarah.wilson@example.com"},
	{Name: "David Brown", Email: "david.brown@example.com"},
}

var sampleBuses = []model.Bus{
	{BusNumber: "BUS001", TotalSeats: 50, AvailableSeats: 45},
	{BusNumber: "BUS002", TotalSeats: 40, AvailableSeats: 15},
	{BusNumber: "BUS003", TotalSeats: 60, AvailableSeats: 30},
	{BusNumber: "BUS004", TotalSeats: 35, AvailableSeats: 5},
	{BusNumber: "BUS005", TotalSeats: 45, AvailableSeats: 20},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Ensure schema is up to date before inserting
	if err := gormDB.AutoMigrate(&model.User{}, &model.Bus{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userService := service.NewUserService(repository.NewUserRepository(gormDB))
	busService := service.NewBusService(repository.NewBusRepository(gormDB))

	ctx := context.Background()

	log.Println("Seeding sample users...")
	created, skipped, err := userService.SeedUsers(ctx, sampleUsers)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	log.Printf("Users: %d created, %d already existed", created, skipped)

	log.Println("Seeding sample buses...")
	created, skipped, err = busService.SeedBuses(ctx, sampleBuses)
	if err != nil {
		log.Fatalf("Failed to seed buses: %v", err)
	}
	log.Printf("Buses: %d created, %d already existed", created, skipped)

	log.Println("Seed completed successfully!")
}
