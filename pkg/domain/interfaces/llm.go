package interfaces

import (
	"context"

	"github.com/secmon-lab/coachnote/pkg/domain/types"
)

// TextGenerator sends one plain-text prompt and returns the generated text
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFactory builds a TextGenerator authorized by credential
type GeneratorFactory interface {
	// RequiresCredential reports whether New needs a non-empty credential
	RequiresCredential() bool

	New(ctx context.Context, credential types.Credential) (TextGenerator, error)
}
