package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrConfigNotFound    = goerr.New("configuration file not found")
	ErrInvalidConfig     = goerr.New("invalid configuration")
	ErrUnknownLabelKey   = goerr.New("unknown label key")
	ErrEmptyModel        = goerr.New("llm model must not be empty")
	ErrInvalidTimezone   = goerr.New("invalid timezone")
	ErrInvalidBackend    = goerr.New("invalid repository backend")
	ErrInvalidLogLevel   = goerr.New("invalid log level")
	ErrInvalidLogFormat  = goerr.New("invalid log format")
	ErrMissingProjectID  = goerr.New("project ID is required")
	ErrMissingRedisAddr  = goerr.New("redis address is required")
	ErrMissingSQLitePath = goerr.New("sqlite path is required")
)

// Context keys for error values
const (
	ConfigPathKey = "config_path"
	SectionKey    = "section"
	LabelKeyKey   = "label_key"
	TimezoneKey   = "timezone"
	BackendKey    = "backend"
	LogLevelKey   = "log_level"
	LogFormatKey  = "log_format"
)
