package config

import "github.com/secmon-lab/coachnote/pkg/domain/types"

var (
	ParseLogLevel  = parseLogLevel
	ParseLogFormat = parseLogFormat
)

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{level: level, format: format, output: output}
}

// NewRepositoryForTest creates a Repository config for testing purposes
func NewRepositoryForTest(backend, sqlitePath string, deviceID types.DeviceID) *Repository {
	return &Repository{backend: backend, sqlitePath: sqlitePath, deviceID: string(deviceID)}
}

// NewLLMForTest creates an LLM config for testing purposes
func NewLLMForTest(provider, model, projectID, location string) *LLM {
	return &LLM{provider: provider, model: model, projectID: projectID, location: location}
}

// NewAppForTest creates an App config for testing purposes
func NewAppForTest(path string) *App {
	return &App{path: path}
}
