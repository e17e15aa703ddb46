package usecase

import (
	"context"
	"errors"

	"github.com/secmon-lab/coachnote/pkg/domain/model"
	"github.com/secmon-lab/coachnote/pkg/service/summary"
	"github.com/secmon-lab/coachnote/pkg/utils/async"
	"github.com/secmon-lab/coachnote/pkg/utils/logging"
)

// SummaryState is the generated summary together with the latest generation request
type SummaryState struct {
	Summary string  `json:"summary"`
	Request Request `json:"request"`
}

type SummaryUseCase struct {
	nb         *notebook
	prefs      *PreferenceUseCase
	summarizer *summary.Service
	full       *requestTracker
	question   *requestTracker
}

func newSummaryUseCase(nb *notebook, prefs *PreferenceUseCase, summarizer *summary.Service) *SummaryUseCase {
	return &SummaryUseCase{
		nb:         nb,
		prefs:      prefs,
		summarizer: summarizer,
		full:       newRequestTracker(RequestKindFull, nb.now),
		question:   newRequestTracker(RequestKindQuestion, nb.now),
	}
}

// generateFull summarizes the session as of the call. The result is dropped when
// the session is reset before generation finishes. epoch receives the epoch the
// generation belongs to.
func (uc *SummaryUseCase) generateFull(ctx context.Context, epoch *uint64) (string, error) {
	s, gen := uc.nb.beginSummary(ctx, summary.FullPending)
	*epoch = gen

	text, err := uc.fullText(ctx, s)
	if !uc.nb.setSummaryAt(gen, text) {
		logging.From(ctx).Info("session was reset during generation, summary discarded")
	}
	return text, err
}

func (uc *SummaryUseCase) fullText(ctx context.Context, s *model.Session) (string, error) {
	credential, err := uc.prefs.Credential(ctx)
	if err != nil {
		return summary.FullFailed(err), err
	}
	return uc.summarizer.Full(ctx, s, credential)
}

// generate runs Full through the request guard and returns the epoch it belongs to
func (uc *SummaryUseCase) generate(ctx context.Context) (string, uint64, error) {
	var epoch uint64
	text, err := uc.full.run(ctx, func(ctx context.Context) (string, error) {
		return uc.generateFull(ctx, &epoch)
	})
	if errors.Is(err, ErrRequestInFlight) {
		return "", 0, err
	}
	return text, epoch, nil
}

// Generate produces the summary email and blocks until it is ready. Generation
// failures are reported through the returned text and the request state; only
// ErrRequestInFlight is returned as an error.
func (uc *SummaryUseCase) Generate(ctx context.Context) (string, error) {
	text, _, err := uc.generate(ctx)
	return text, err
}

// Start begins generating the summary in the background and returns the in-flight request
func (uc *SummaryUseCase) Start(ctx context.Context) (Request, error) {
	req, err := uc.full.begin()
	if err != nil {
		return Request{}, err
	}

	async.Dispatch(ctx, "generate_summary", func(ctx context.Context) error {
		ctx = logging.With(ctx, logging.From(ctx).With(
			RequestIDKey, req.ID,
			RequestKindKey, string(RequestKindFull),
		))

		var text string
		var genErr error
		var epoch uint64
		defer func() {
			done := uc.full.finish(req.ID, text, genErr)
			logging.From(ctx).Info("generation finished", "state", string(done.State))
		}()
		text, genErr = uc.generateFull(ctx, &epoch)
		return nil
	})
	return req, nil
}

func (uc *SummaryUseCase) Get(ctx context.Context) *SummaryState {
	return &SummaryState{
		Summary: uc.nb.currentSummary(),
		Request: uc.full.status(),
	}
}

// Set replaces the summary with a hand-edited version
func (uc *SummaryUseCase) Set(ctx context.Context, text string) *SummaryState {
	uc.nb.setSummary(text)
	return uc.Get(ctx)
}

func (uc *SummaryUseCase) Download(ctx context.Context) *Download {
	s, _ := uc.nb.snapshot(ctx)
	return &Download{
		FileName:    model.SummaryFileName(s),
		ContentType: ContentTypeText,
		Data:        []byte(uc.nb.currentSummary()),
	}
}

// Question suggests a reflective question from the conversation notes. The returned
// text is always displayable; only ErrRequestInFlight is returned as an error.
func (uc *SummaryUseCase) Question(ctx context.Context) (string, error) {
	text, err := uc.question.run(ctx, func(ctx context.Context) (string, error) {
		s, _ := uc.nb.snapshot(ctx)
		credential, err := uc.prefs.Credential(ctx)
		if err != nil {
			return summary.QuestionFailed, err
		}
		return uc.summarizer.ReflectiveQuestion(ctx, s.Explore.ConversationNotes, credential)
	})
	if errors.Is(err, ErrRequestInFlight) {
		return "", err
	}
	return text, nil
}

func (uc *SummaryUseCase) QuestionStatus() Request {
	return uc.question.status()
}
