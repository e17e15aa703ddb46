package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/coachnote/pkg/domain/interfaces"
	"github.com/secmon-lab/coachnote/pkg/service/llm"
	"github.com/urfave/cli/v3"
)

// LLM holds configuration for the summary text generator
type LLM struct {
	provider  string
	model     string
	projectID string
	location  string
}

// Flags returns CLI flags for LLM configuration
func (g *LLM) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "llm-provider",
			Usage:       "Text generation provider (gemini, vertex, openai, claude)",
			Value:       string(llm.ProviderGemini),
			Sources:     cli.EnvVars("COACHNOTE_LLM_PROVIDER"),
			Destination: &g.provider,
		},
		&cli.StringFlag{
			Name:        "llm-model",
			Usage:       "Model name, overrides [llm] model of the config file",
			Sources:     cli.EnvVars("COACHNOTE_LLM_MODEL"),
			Destination: &g.model,
		},
		&cli.StringFlag{
			Name:        "vertex-project",
			Usage:       "Google Cloud project ID for the vertex provider",
			Sources:     cli.EnvVars("COACHNOTE_VERTEX_PROJECT"),
			Destination: &g.projectID,
		},
		&cli.StringFlag{
			Name:        "vertex-location",
			Usage:       "Google Cloud location for the vertex provider",
			Value:       "us-central1",
			Sources:     cli.EnvVars("COACHNOTE_VERTEX_LOCATION"),
			Destination: &g.location,
		},
	}
}

// LogAttrs returns log attributes for the LLM configuration
func (g *LLM) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("provider", g.provider),
		slog.String("model", g.model),
		slog.String("project_id", g.projectID),
		slog.String("location", g.location),
	}
}

// Configure builds the generator factory. fallbackModel applies when no
// model flag is given.
func (g *LLM) Configure(fallbackModel string) (interfaces.GeneratorFactory, error) {
	provider, err := llm.ParseProvider(g.provider)
	if err != nil {
		return nil, err
	}

	model := g.model
	if model == "" {
		model = fallbackModel
	}

	factory, err := llm.NewFactory(provider, model, g.projectID, g.location)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to configure llm", goerr.V("provider", provider))
	}
	return factory, nil
}
