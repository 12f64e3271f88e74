package database

import (
	"path/filepath"
	"testing"

	"budget/internal/config"
	"budget/internal/logger"
)

func init() {
	logger.Init("test")
}

func TestNewConfig(t *testing.T) {
	t.Run("postgres", func(t *testing.T) {
		cfg := NewConfig(&config.Config{
			DBDriver:       "postgres",
			DBHost:         "db",
			DBPort:         "5432",
			DBUser:         "budget",
			DBPassword:     "secret",
			DBName:         "budget",
			DBSSLMode:      "disable",
			MigrationsPath: "migrations",
		})

		if cfg.Driver != DriverPostgres {
			t.Errorf("expected postgres driver, got %s", cfg.Driver)
		}
		if cfg.MigrateURL != "postgres://budget:secret@db:5432/budget?sslmode=disable" {
			t.Errorf("unexpected migrate url %s", cfg.MigrateURL)
		}
		if cfg.DSN == "" {
			t.Error("expected a DSN")
		}
	})

	t.Run("sqlite", func(t *testing.T) {
		cfg := NewConfig(&config.Config{DBDriver: "sqlite", SQLitePath: "budget.db"})

		if cfg.Driver != DriverSQLite || cfg.DSN != "budget.db" {
			t.Errorf("unexpected sqlite config %+v", cfg)
		}
		if cfg.MigrateURL != "" {
			t.Errorf("expected no migrate url, got %s", cfg.MigrateURL)
		}
	})
}

func TestManager_SQLite(t *testing.T) {
	cfg := &Config{Driver: DriverSQLite, DSN: filepath.Join(t.TempDir(), "budget.db")}

	m, err := NewManager(cfg)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	defer m.Close()

	if err := m.Migrate(); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	// Auto-migration is idempotent.
	if err := m.Migrate(); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}

	var count int64
	for _, table := range []string{"accounts", "categories", "expenses", "incomes", "audit_logs"} {
		if err := m.DB().Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist: %v", table, err)
		}
	}
}

func TestNewManager_UnsupportedDriver(t *testing.T) {
	if _, err := NewManager(&Config{Driver: "mysql"}); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestNewMigrator_RequiresPostgres(t *testing.T) {
	if _, err := NewMigrator(&Config{Driver: DriverSQLite}); err == nil {
		t.Fatal("expected error for sqlite migrator")
	}
}
