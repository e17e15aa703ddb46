package summary

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/coachnote/pkg/domain/interfaces"
	"github.com/secmon-lab/coachnote/pkg/domain/model"
	"github.com/secmon-lab/coachnote/pkg/domain/types"
	"github.com/secmon-lab/coachnote/pkg/service/llm"
	"github.com/secmon-lab/coachnote/pkg/utils/logging"
)

// Displayable fallback texts
const (
	BriefNoNotes   = "No notes recorded."
	BriefEmpty     = "Session completed."
	BriefFailed    = "Session recorded."
	FullPending    = "Generating summary... please wait."
	FullEmpty      = "Unable to generate summary."
	FullNoKey      = "Please enter your Google API Key in the Extend tab to generate a summary."
	QuestionEmpty  = "What is the most important thing for you to focus on right now?"
	QuestionFailed = "What would success look like for you in this situation?"

	DefaultCoachName = "Dan"
	DefaultSignoff   = "Cheering you on"
)

// FullFailed renders the text shown when full summary generation fails
func FullFailed(err error) string {
	return "Error generating summary: " + err.Error() + ". Please check your API key."
}

// Service turns session notes into generated text. Every method returns text that can be shown
// to the user as is; the error only reports what went wrong underneath.
type Service struct {
	factory   interfaces.GeneratorFactory
	coachName string
	signoff   string
}

type Option func(*Service)

// WithCoach sets the persona used in the full email prompt
func WithCoach(name, signoff string) Option {
	return func(x *Service) {
		if name != "" {
			x.coachName = name
		}
		if signoff != "" {
			x.signoff = signoff
		}
	}
}

func New(factory interfaces.GeneratorFactory, opts ...Option) *Service {
	x := &Service{
		factory:   factory,
		coachName: DefaultCoachName,
		signoff:   DefaultSignoff,
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

func (x *Service) generate(ctx context.Context, credential types.Credential, prompt string) (string, error) {
	if x.factory == nil {
		return "", goerr.Wrap(llm.ErrMissingCredential, "no text generator configured")
	}
	if x.factory.RequiresCredential() && credential.IsEmpty() {
		return "", goerr.Wrap(llm.ErrMissingCredential, "credential is not set")
	}

	gen, err := x.factory.New(ctx, credential)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create text generator")
	}
	return gen.Generate(ctx, prompt)
}

// Brief returns a short summary of the session's core insight for the meeting history
func (x *Service) Brief(ctx context.Context, s *model.Session, credential types.Credential) (string, error) {
	if !s.HasSignal() {
		return BriefNoNotes, nil
	}

	text, err := x.generate(ctx, credential, buildBriefPrompt(s))
	if err != nil {
		logging.From(ctx).Warn("failed to generate brief summary", "error", err)
		return BriefFailed, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return BriefEmpty, nil
	}
	return text, nil
}

// Full returns a summary email addressed to the coachee. The response is not post-processed.
func (x *Service) Full(ctx context.Context, s *model.Session, credential types.Credential) (string, error) {
	if x.factory == nil || (x.factory.RequiresCredential() && credential.IsEmpty()) {
		return FullNoKey, goerr.Wrap(llm.ErrMissingCredential, "credential is not set")
	}

	text, err := x.generate(ctx, credential, x.buildFullPrompt(s))
	if err != nil {
		logging.From(ctx).Warn("failed to generate summary", "error", err)
		return FullFailed(err), err
	}
	if text == "" {
		return FullEmpty, nil
	}
	return text, nil
}

// ReflectiveQuestion suggests one open question based on the conversation notes
func (x *Service) ReflectiveQuestion(ctx context.Context, notes string, credential types.Credential) (string, error) {
	text, err := x.generate(ctx, credential, buildQuestionPrompt(notes))
	if err != nil {
		logging.From(ctx).Warn("failed to generate reflective question", "error", err)
		return QuestionFailed, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return QuestionEmpty, nil
	}
	return text, nil
}
