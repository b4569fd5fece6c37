package configs

// Config holds all configuration for the application.
type Config struct {
	Log        LogConfig        `mapstructure:"log" validate:"required"`
	Input      InputConfig      `mapstructure:"input" validate:"required"`
	Normalizer NormalizerConfig `mapstructure:"normalizer"`
	Report     ReportConfig     `mapstructure:"report"`
	Metrics    MetricsConfig    `mapstructure:"metrics" validate:"required"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=trace debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json console"`
}

// InputConfig names the columns of the exported log table.
type InputConfig struct {
	RawColumn  string `mapstructure:"raw_column" validate:"required"`  // free-text log line
	TimeColumn string `mapstructure:"time_column" validate:"required"` // timestamp
	EnvColumn  string `mapstructure:"env_column" validate:"required"`  // environment / index tag
}

// NormalizerConfig holds cookie name normalization configuration.
type NormalizerConfig struct {
	RulesFile string `mapstructure:"rules_file" validate:"omitempty,file"` // optional YAML, evaluated before the built-in rules
}

// ReportConfig holds report persistence configuration.
type ReportConfig struct {
	OutputDir string `mapstructure:"output_dir"` // empty disables persistence
}

// MetricsConfig holds Pushgateway configuration.
type MetricsConfig struct {
	PushgatewayURL string `mapstructure:"pushgateway_url" validate:"omitempty,url"` // empty disables push
	Job            string `mapstructure:"job" validate:"required"`
}
