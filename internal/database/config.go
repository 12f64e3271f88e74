package database

import (
	"budget/internal/config"
)

// Driver names accepted by NewManager.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds database configuration
type Config struct {
	Driver         string
	DSN            string
	MigrateURL     string
	MigrationsPath string
}

// NewConfig derives the database configuration from the application config.
func NewConfig(app *config.Config) *Config {
	if app.DBDriver == DriverSQLite {
		return &Config{
			Driver:         DriverSQLite,
			DSN:            app.SQLitePath,
			MigrationsPath: app.MigrationsPath,
		}
	}

	return &Config{
		Driver:         DriverPostgres,
		DSN:            app.PostgresDSN(),
		MigrateURL:     app.PostgresURL(),
		MigrationsPath: app.MigrationsPath,
	}
}
