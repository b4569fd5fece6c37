package configs

import (
	"fmt"
	"strings"

	"cookie-analytics/internal/shared/validators"

	"github.com/spf13/viper"
)

const envPrefix = "COOKIE_REPORT"

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("input.raw_column", "_raw")
	v.SetDefault("input.time_column", "_time")
	v.SetDefault("input.env_column", "index")
	v.SetDefault("normalizer.rules_file", "")
	v.SetDefault("report.output_dir", "")
	v.SetDefault("metrics.pushgateway_url", "")
	v.SetDefault("metrics.job", "cookie_report")
}

// LoadConfig reads configuration from file (optional), applies defaults and
// COOKIE_REPORT_* environment overrides, and validates the result.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read from file
	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()

	// Drop the root struct name: "Config.log.level" -> "log.level"
	if _, path, ok := strings.Cut(e.Namespace(), "."); ok {
		field = path
	}

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s (required)", field)
	case "oneof":
		return fmt.Sprintf("%s (oneof=%s)", field, e.Param())
	case "url":
		return fmt.Sprintf("%s (must be a url)", field)
	case "file":
		return fmt.Sprintf("%s (file does not exist)", field)
	default:
		return fmt.Sprintf("%s (%s)", field, e.Tag())
	}
}
