package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

const migrationsDir = "migrations"

// Embedded schema for the employee pool; the analysis records themselves
// live in memory and need no tables.
//
//go:embed migrations/*.sql
var employeeSchema embed.FS

// RunMigrations applies the embedded employee schema via goose. A nil
// database is a no-op so memory-backed deployments skip migration entirely.
func RunMigrations(ctx context.Context, database *sql.DB) error {
	if database == nil {
		return nil
	}
	goose.SetBaseFS(employeeSchema)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set migration dialect: %w", err)
	}
	if err := goose.UpContext(ctx, database, migrationsDir); err != nil {
		return fmt.Errorf("apply employee schema: %w", err)
	}
	return nil
}
