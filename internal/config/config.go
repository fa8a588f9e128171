// Package config defines the application configuration and its loader.
package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database"`
	Schedule ScheduleConfig `mapstructure:"schedule" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
// An empty URL means no database: the server runs against the built-in
// starter deck instead.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"omitempty"`
}

// ScheduleConfig controls the review interval policy: how many days forward
// a correct or incorrect answer schedules the next review.
type ScheduleConfig struct {
	CorrectIntervalDays   int `mapstructure:"correct_interval_days"   validate:"min=0"`
	IncorrectIntervalDays int `mapstructure:"incorrect_interval_days" validate:"min=0"`
}
