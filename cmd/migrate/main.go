package main

// Run database migrations and seed the employee pool:
//   go run ./cmd/migrate

import (
	"context"
	"log"
	"os"

	"feasibility-backend/internal/employees"
	"feasibility-backend/internal/shared/config"
	"feasibility-backend/internal/shared/storage/db"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.DefaultMigrateOptions())
	if err != nil {
		log.Printf("failed to connect database: %v", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		log.Printf("failed to run migrations: %v", err)
		os.Exit(1)
	}

	repo := &employees.PGRepo{DB: sqlDB}
	count, err := repo.Count(ctx)
	if err != nil {
		log.Printf("failed to count employees: %v", err)
		os.Exit(1)
	}
	if count == 0 {
		if err := repo.Seed(ctx, employees.SampleEmployees()); err != nil {
			log.Printf("failed to seed employees: %v", err)
			os.Exit(1)
		}
		log.Printf("seeded employee pool")
	}
}
