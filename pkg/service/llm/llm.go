package llm

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gollem/llm/claude"
	"github.com/m-mizutani/gollem/llm/gemini"
	"github.com/m-mizutani/gollem/llm/openai"
	"github.com/secmon-lab/coachnote/pkg/domain/interfaces"
	"github.com/secmon-lab/coachnote/pkg/domain/types"
	"google.golang.org/genai"
)

// Provider names a text generation backend
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderVertex Provider = "vertex"
	ProviderOpenAI Provider = "openai"
	ProviderClaude Provider = "claude"
)

// DefaultModel is used by the gemini and vertex providers when no model is configured
const DefaultModel = "gemini-2.5-flash"

var (
	ErrMissingCredential = goerr.New("credential is required for text generation")
	ErrUnknownProvider   = goerr.New("unknown text generation provider")
)

// ParseProvider converts a configured name into a Provider
func ParseProvider(s string) (Provider, error) {
	switch p := Provider(strings.ToLower(strings.TrimSpace(s))); p {
	case ProviderGemini, ProviderVertex, ProviderOpenAI, ProviderClaude:
		return p, nil
	default:
		return "", goerr.Wrap(ErrUnknownProvider, "failed to parse provider", goerr.V("provider", s))
	}
}

// GenAI builds generators on the Gemini API with a per-device API key
type GenAI struct {
	model string
}

var _ interfaces.GeneratorFactory = &GenAI{}

func NewGenAI(model string) *GenAI {
	if model == "" {
		model = DefaultModel
	}
	return &GenAI{model: model}
}

func (g *GenAI) RequiresCredential() bool { return true }

func (g *GenAI) New(ctx context.Context, credential types.Credential) (interfaces.TextGenerator, error) {
	if credential.IsEmpty() {
		return nil, goerr.Wrap(ErrMissingCredential, "failed to create genai client")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  credential.String(),
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create genai client", goerr.V("model", g.model))
	}
	return &genaiGenerator{client: client, model: g.model}, nil
}

type genaiGenerator struct {
	client *genai.Client
	model  string
}

func (g *genaiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate content", goerr.V("model", g.model))
	}
	if resp == nil {
		return "", nil
	}
	return resp.Text(), nil
}

// ClientBuilder creates a gollem client authorized by credential
type ClientBuilder func(ctx context.Context, credential types.Credential) (gollem.LLMClient, error)

// Gollem builds generators on any gollem.LLMClient
type Gollem struct {
	build              ClientBuilder
	requiresCredential bool
}

var _ interfaces.GeneratorFactory = &Gollem{}

// NewGollem wraps build. When requiresCredential is set, New refuses an empty credential.
func NewGollem(build ClientBuilder, requiresCredential bool) *Gollem {
	return &Gollem{build: build, requiresCredential: requiresCredential}
}

// NewVertex uses Vertex AI through application default credentials. No API key is needed.
func NewVertex(projectID, location, model string) *Gollem {
	if model == "" {
		model = DefaultModel
	}
	return NewGollem(func(ctx context.Context, _ types.Credential) (gollem.LLMClient, error) {
		client, err := gemini.New(ctx, projectID, location, gemini.WithModel(model))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create vertex client",
				goerr.V("project_id", projectID), goerr.V("location", location))
		}
		return client, nil
	}, false)
}

func NewOpenAI(model string) *Gollem {
	return NewGollem(func(ctx context.Context, credential types.Credential) (gollem.LLMClient, error) {
		var opts []openai.Option
		if model != "" {
			opts = append(opts, openai.WithModel(model))
		}
		client, err := openai.New(ctx, credential.String(), opts...)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create openai client")
		}
		return client, nil
	}, true)
}

func NewClaude(model string) *Gollem {
	return NewGollem(func(ctx context.Context, credential types.Credential) (gollem.LLMClient, error) {
		var opts []claude.Option
		if model != "" {
			opts = append(opts, claude.WithModel(model))
		}
		client, err := claude.New(ctx, credential.String(), opts...)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create claude client")
		}
		return client, nil
	}, true)
}

func (g *Gollem) RequiresCredential() bool { return g.requiresCredential }

func (g *Gollem) New(ctx context.Context, credential types.Credential) (interfaces.TextGenerator, error) {
	if g.requiresCredential && credential.IsEmpty() {
		return nil, goerr.Wrap(ErrMissingCredential, "failed to create gollem client")
	}
	client, err := g.build(ctx, credential)
	if err != nil {
		return nil, err
	}
	return &gollemGenerator{client: client}, nil
}

type gollemGenerator struct {
	client gollem.LLMClient
}

func (g *gollemGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	session, err := g.client.NewSession(ctx)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create llm session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(prompt))
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate content")
	}
	if resp == nil {
		return "", nil
	}
	return strings.Join(resp.Texts, ""), nil
}

// NewFactory selects the factory for provider
func NewFactory(provider Provider, model, projectID, location string) (interfaces.GeneratorFactory, error) {
	switch provider {
	case ProviderGemini:
		return NewGenAI(model), nil
	case ProviderVertex:
		if projectID == "" {
			return nil, goerr.New("project ID is required for vertex provider")
		}
		return NewVertex(projectID, location, model), nil
	case ProviderOpenAI:
		return NewOpenAI(model), nil
	case ProviderClaude:
		return NewClaude(model), nil
	default:
		return nil, goerr.Wrap(ErrUnknownProvider, "failed to create generator factory", goerr.V("provider", provider))
	}
}
