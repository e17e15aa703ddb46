package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/coachnote/pkg/domain/model"
	"github.com/secmon-lab/coachnote/pkg/domain/types"
	"github.com/secmon-lab/coachnote/pkg/utils/logging"
)

type SessionUseCase struct {
	nb *notebook
}

func newSessionUseCase(nb *notebook) *SessionUseCase {
	return &SessionUseCase{nb: nb}
}

// Get returns a copy of the current session record
func (uc *SessionUseCase) Get(ctx context.Context) *model.Session {
	s, _ := uc.nb.snapshot(ctx)
	return s
}

// Update replaces one text field. Identity fields use the identity section.
func (uc *SessionUseCase) Update(ctx context.Context, section types.Section, field, value string) (*model.Session, error) {
	return uc.nb.mutateSession(ctx, func(s *model.Session) error {
		return s.SetField(section, field, value)
	})
}

func (uc *SessionUseCase) AddActionStep(ctx context.Context) (*model.Session, error) {
	return uc.nb.mutateSession(ctx, func(s *model.Session) error {
		s.AddActionStep()
		return nil
	})
}

func (uc *SessionUseCase) SetActionStep(ctx context.Context, index int, value string) (*model.Session, error) {
	return uc.nb.mutateSession(ctx, func(s *model.Session) error {
		return s.SetActionStep(index, value)
	})
}

func (uc *SessionUseCase) RemoveActionStep(ctx context.Context, index int) (*model.Session, error) {
	return uc.nb.mutateSession(ctx, func(s *model.Session) error {
		return s.RemoveActionStep(index)
	})
}

// Reset discards the session record and generated summary and returns to the first view.
// Labels and preferences are kept.
func (uc *SessionUseCase) Reset(ctx context.Context, confirmed bool) (*model.Session, error) {
	if !confirmed {
		return nil, goerr.Wrap(ErrConfirmationRequired, "session reset was not confirmed")
	}

	nb := uc.nb
	nb.mu.Lock()
	defer nb.mu.Unlock()
	nb.ensureLoaded(ctx)

	fresh := model.NewSession(nb.now())
	if err := nb.saveSession(ctx, fresh); err != nil {
		return nil, err
	}
	nb.summary = ""
	nb.view = types.ViewProfile
	nb.epoch++

	logging.From(ctx).Info("session reset")
	return fresh.Clone(), nil
}
