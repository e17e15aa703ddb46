package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/coachnote/pkg/cli/config"
	"github.com/secmon-lab/coachnote/pkg/domain/model"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o600)).Required()
	return path
}

func TestLoadAppConfiguration(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name: "valid configuration with every section",
			content: `
[coach]
name = "Ruth"
signoff = "With you all the way"

[llm]
model = "gemini-2.5-pro"

[calendar]
timezone = "America/New_York"
embed_timezone = "Asia/Tokyo"

[labels.engage]
wins = "What went well?"

[labels.express]
firstSteps = "What will you do first?"
`,
		},
		{
			name:    "empty file keeps defaults",
			content: "",
		},
		{
			name: "unknown engage key",
			content: `
[labels.engage]
weather = "How is the weather?"
`,
			wantErr: config.ErrUnknownLabelKey,
		},
		{
			name: "express key used under engage",
			content: `
[labels.engage]
firstSteps = "What will you do first?"
`,
			wantErr: config.ErrUnknownLabelKey,
		},
		{
			name: "blank model",
			content: `
[llm]
model = "  "
`,
			wantErr: config.ErrEmptyModel,
		},
		{
			name: "invalid timezone",
			content: `
[calendar]
timezone = "Mars/Olympus_Mons"
`,
			wantErr: config.ErrInvalidTimezone,
		},
		{
			name:    "broken TOML",
			content: `[coach`,
			wantErr: config.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.LoadAppConfiguration(writeConfig(t, tt.content))
			if tt.wantErr != nil {
				gt.Error(t, err).Is(tt.wantErr)
				return
			}
			gt.NoError(t, err).Required()
			gt.Value(t, cfg).NotNil()
		})
	}
}

func TestLoadAppConfiguration_Values(t *testing.T) {
	cfg, err := config.LoadAppConfiguration(writeConfig(t, `
[coach]
name = "Ruth"

[llm]
model = "gemini-2.5-pro"

[calendar]
timezone = "America/New_York"

[labels.engage]
wins = "What went well?"
`))
	gt.NoError(t, err).Required()

	t.Run("coach overrides keep the default signoff", func(t *testing.T) {
		gt.Value(t, cfg.Coach.Name).Equal("Ruth")
		gt.Value(t, cfg.Coach.Signoff).Equal("Cheering you on")
	})

	t.Run("model", func(t *testing.T) {
		gt.Value(t, cfg.Model()).Equal("gemini-2.5-pro")
	})

	t.Run("location", func(t *testing.T) {
		gt.Value(t, cfg.Location().String()).Equal("America/New_York")
		gt.Value(t, cfg.EmbedTimezone()).Equal(model.DefaultEmbedTimezone)
	})

	t.Run("label overrides merge with built-in questions", func(t *testing.T) {
		labels := cfg.LabelDefaults()
		defaults := model.DefaultLabelConfig()
		gt.Value(t, labels.Engage["wins"]).Equal("What went well?")
		gt.Value(t, labels.Engage["learning"]).Equal(defaults.Engage["learning"])
		gt.Value(t, labels.Express).Equal(defaults.Express)
	})
}

func TestLoadAppConfiguration_NotFound(t *testing.T) {
	_, err := config.LoadAppConfiguration(filepath.Join(t.TempDir(), "missing.toml"))
	gt.Error(t, err).Is(config.ErrConfigNotFound)
}

func TestApp_Configure(t *testing.T) {
	t.Run("no path returns defaults", func(t *testing.T) {
		cfg, err := config.NewAppForTest("").Configure()
		gt.NoError(t, err).Required()
		gt.Value(t, cfg.Coach.Name).Equal("Dan")
		gt.Value(t, cfg.Model()).Equal("")
		gt.Value(t, cfg.EmbedTimezone()).Equal(model.DefaultEmbedTimezone)
	})

	t.Run("path is loaded", func(t *testing.T) {
		path := writeConfig(t, "[coach]\nname = \"Ruth\"\n")
		cfg, err := config.NewAppForTest(path).Configure()
		gt.NoError(t, err).Required()
		gt.Value(t, cfg.Coach.Name).Equal("Ruth")
	})
}
