package main

import (
	"log"
	"net/http"
	"os"

	_ "busbook/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"busbook/internal/config"
	"busbook/internal/db"
	"busbook/internal/handler"
	"busbook/internal/model"
	"busbook/internal/repository"
	"busbook/internal/router"
	"busbook/internal/service"
)

// @title Bus Booking API
// @version 1.0
// @description Minimal booking backend with user CRUD and bus seat queries.
// @host localhost:3000
// @BasePath /
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Payment{},
			&model.Booking{},
			&model.Bus{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models. Bookings and Payments are schema-only
	// for now; no endpoint reads or writes them.
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Bus{},
		&model.Booking{},
		&model.Payment{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	busRepo := repository.NewBusRepository(gormDB)

	// Initialize services
	userService := service.NewUserService(userRepo)
	busService := service.NewBusService(busRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	busHandler := handler.NewBusHandler(busService)

	// Register routes
	router.Register(e, userHandler, busHandler)

	addr := ":" + cfg.ServerPort
	log.Printf("Server running on port %s", cfg.ServerPort)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
