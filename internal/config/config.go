package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
)

// Config holds all configuration options for the timesheet tracker application
type Config struct {
	Database    DatabaseConfig
	Display     DisplayConfig
	Validation  ValidationConfig
	Application ApplicationConfig
	Commands    CommandsConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"TS_DB_DIR"`
	Filename       string        `env:"TS_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"TS_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"TS_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"TS_DB_DIR_PERMISSIONS"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	TimestampFormat string `env:"TS_DISPLAY_TIMESTAMP_FORMAT"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	NameMaxLength    int    `env:"TS_VALIDATION_NAME_MAX"`
	MaxHoursPerEntry string `env:"TS_VALIDATION_MAX_HOURS"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TS_APP_TIMEOUT"`
	Verbose bool          `env:"TS_APP_VERBOSE"`
}

// CommandsConfig holds command-specific defaults
type CommandsConfig struct {
	RecentEntriesLimit  int    `env:"TS_DASHBOARD_RECENT_LIMIT"`
	ExportDefaultFormat string `env:"TS_EXPORT_DEFAULT_FORMAT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".timesheet")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "timesheet.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Display: DisplayConfig{
			TimestampFormat: "2006-01-02 15:04:05",
		},
		Validation: ValidationConfig{
			NameMaxLength:    255,
			MaxHoursPerEntry: "24",
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
		Commands: CommandsConfig{
			RecentEntriesLimit:  10,
			ExportDefaultFormat: "csv",
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Database.WriteTimeout
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Display.TimestampFormat == "" {
		return &ConfigError{Field: "display.timestamp_format", Message: "timestamp format cannot be empty"}
	}

	if c.Validation.NameMaxLength < 1 {
		return &ConfigError{Field: "validation.name_max_length", Message: "name maximum length must be at least 1"}
	}
	maxHours, err := decimal.NewFromString(c.Validation.MaxHoursPerEntry)
	if err != nil || !maxHours.IsPositive() {
		return &ConfigError{Field: "validation.max_hours_per_entry", Message: "max hours per entry must be a positive decimal"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	if c.Commands.RecentEntriesLimit < 1 {
		return &ConfigError{Field: "commands.recent_entries_limit", Message: "recent entries limit must be at least 1"}
	}
	if c.Commands.ExportDefaultFormat != "csv" {
		return &ConfigError{Field: "commands.export_default_format", Message: "unsupported export format"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
