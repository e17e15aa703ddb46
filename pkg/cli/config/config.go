package config

import (
	"errors"
	"io/fs"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/coachnote/pkg/domain/model"
	"github.com/secmon-lab/coachnote/pkg/domain/types"
	"github.com/secmon-lab/coachnote/pkg/service/summary"
	"github.com/urfave/cli/v3"
)

// AppConfig represents the application configuration file
type AppConfig struct {
	Coach    CoachConfig    `toml:"coach"`
	LLM      LLMConfig      `toml:"llm"`
	Calendar CalendarConfig `toml:"calendar"`
	Labels   LabelsConfig   `toml:"labels"`
}

// CoachConfig names the coach who signs generated emails
type CoachConfig struct {
	Name    string `toml:"name"`
	Signoff string `toml:"signoff"`
}

// LLMConfig selects the model. A nil Model keeps the provider default.
type LLMConfig struct {
	Model *string `toml:"model"`
}

// CalendarConfig holds time zone settings. Timezone is where next meeting
// times are entered; an empty value means the local zone.
type CalendarConfig struct {
	Timezone      string `toml:"timezone"`
	EmbedTimezone string `toml:"embed_timezone"`
}

// LabelsConfig overrides built-in questions by key
type LabelsConfig struct {
	Engage  map[string]string `toml:"engage"`
	Express map[string]string `toml:"express"`
}

// DefaultAppConfig returns the configuration used when no file is given
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Coach: CoachConfig{
			Name:    summary.DefaultCoachName,
			Signoff: summary.DefaultSignoff,
		},
		Calendar: CalendarConfig{
			EmbedTimezone: model.DefaultEmbedTimezone,
		},
	}
}

// Validate checks if the AppConfig is valid
func (a *AppConfig) Validate() error {
	if a.LLM.Model != nil && strings.TrimSpace(*a.LLM.Model) == "" {
		return goerr.Wrap(ErrEmptyModel, "invalid [llm] section")
	}

	for _, tz := range []string{a.Calendar.Timezone, a.Calendar.EmbedTimezone} {
		if tz == "" {
			continue
		}
		if _, err := time.LoadLocation(tz); err != nil {
			return goerr.Wrap(ErrInvalidTimezone, "invalid [calendar] section", goerr.V(TimezoneKey, tz))
		}
	}

	sections := []struct {
		section types.Section
		labels  map[string]string
	}{
		{types.SectionEngage, a.Labels.Engage},
		{types.SectionExpress, a.Labels.Express},
	}
	for _, s := range sections {
		keys := model.LabelKeys(s.section)
		for key := range s.labels {
			if !slices.Contains(keys, key) {
				return goerr.Wrap(ErrUnknownLabelKey, "invalid [labels] section",
					goerr.V(SectionKey, s.section), goerr.V(LabelKeyKey, key))
			}
		}
	}

	return nil
}

// Model returns the configured model, or empty for the provider default
func (a *AppConfig) Model() string {
	if a.LLM.Model == nil {
		return ""
	}
	return strings.TrimSpace(*a.LLM.Model)
}

// LabelDefaults returns the built-in questions with file overrides applied
func (a *AppConfig) LabelDefaults() *model.LabelConfig {
	labels := model.DefaultLabelConfig()
	for key, value := range a.Labels.Engage {
		labels.Engage[key] = value
	}
	for key, value := range a.Labels.Express {
		labels.Express[key] = value
	}
	return labels
}

// Location returns the zone next meeting times are entered in
func (a *AppConfig) Location() *time.Location {
	if a.Calendar.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(a.Calendar.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// EmbedTimezone returns the zone of the embedded calendar view
func (a *AppConfig) EmbedTimezone() string {
	if a.Calendar.EmbedTimezone == "" {
		return model.DefaultEmbedTimezone
	}
	return a.Calendar.EmbedTimezone
}

// SummaryOptions returns options for the summary service
func (a *AppConfig) SummaryOptions() []summary.Option {
	return []summary.Option{summary.WithCoach(a.Coach.Name, a.Coach.Signoff)}
}

// LoadAppConfiguration loads the application configuration from a TOML file.
// Keys absent from the file keep their defaults.
func LoadAppConfiguration(path string) (*AppConfig, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(ErrConfigNotFound, "failed to read config file", goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V(ConfigPathKey, path))
	}

	config := DefaultAppConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, "failed to parse TOML config",
			goerr.V(ConfigPathKey, path), goerr.V("error", err.Error()))
	}

	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "config validation failed", goerr.V(ConfigPathKey, path))
	}

	return config, nil
}

// App holds the CLI flag pointing at the configuration file
type App struct {
	path string
}

// Flags returns CLI flags for the configuration file
func (x *App) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to the TOML configuration file",
			Sources:     cli.EnvVars("COACHNOTE_CONFIG"),
			Destination: &x.path,
		},
	}
}

// Path returns the configured file path
func (x *App) Path() string {
	return x.path
}

// Configure loads the file, or returns defaults when no path is set
func (x *App) Configure() (*AppConfig, error) {
	if x.path == "" {
		return DefaultAppConfig(), nil
	}
	return LoadAppConfiguration(x.path)
}
