package config

// Config holds all application configuration.
type Config struct {
	Log LogConfig `mapstructure:"log" validate:"required"`
	IDs IDConfig  `mapstructure:"ids" validate:"required"`
}

// LogConfig contains the structured logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// IDConfig selects how entity identifiers are generated.
type IDConfig struct {
	Strategy string `mapstructure:"strategy" validate:"required,oneof=uuid sequential"`
	// Prefix is only used by the sequential strategy
	Prefix string `mapstructure:"prefix" validate:"required_if=Strategy sequential"`
}
