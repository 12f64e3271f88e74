package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Env  string `envconfig:"ENV" default:"development"`
	Port string `envconfig:"PORT" default:"8080"`

	// Database
	DBDriver       string `envconfig:"DB_DRIVER" default:"postgres"`
	DBHost         string `envconfig:"DB_HOST" default:"localhost"`
	DBPort         string `envconfig:"DB_PORT" default:"5432"`
	DBUser         string `envconfig:"DB_USER" default:"budget"`
	DBPassword     string `envconfig:"DB_PASSWORD" default:"budget"`
	DBName         string `envconfig:"DB_NAME" default:"budget"`
	DBSSLMode      string `envconfig:"DB_SSLMODE" default:"disable"`
	SQLitePath     string `envconfig:"SQLITE_PATH" default:"budget.db"`
	MigrationsPath string `envconfig:"MIGRATIONS_PATH" default:"migrations"`

	// Ledger
	BalanceUpdateMode string `envconfig:"BALANCE_UPDATE_MODE" default:"read_modify_write"`

	// HTTP
	CORSAllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	ShutdownTimeout    time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.DBDriver = strings.ToLower(c.DBDriver)
	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (use postgres or sqlite)", c.DBDriver)
	}

	switch c.BalanceUpdateMode {
	case "read_modify_write", "atomic":
	default:
		return fmt.Errorf("unsupported BALANCE_UPDATE_MODE %q (use read_modify_write or atomic)", c.BalanceUpdateMode)
	}
	return nil
}

// PostgresURL returns the connection URL used by golang-migrate.
func (c *Config) PostgresURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// PostgresDSN returns the key/value connection string used by GORM.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}
