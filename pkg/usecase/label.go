package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/coachnote/pkg/domain/model"
	"github.com/secmon-lab/coachnote/pkg/domain/types"
)

type LabelUseCase struct {
	nb *notebook
}

func newLabelUseCase(nb *notebook) *LabelUseCase {
	return &LabelUseCase{nb: nb}
}

// Get returns a copy of the effective label configuration
func (uc *LabelUseCase) Get(ctx context.Context) *model.LabelConfig {
	_, labels := uc.nb.snapshot(ctx)
	return labels
}

func (uc *LabelUseCase) Update(ctx context.Context, section types.Section, key, value string) (*model.LabelConfig, error) {
	nb := uc.nb
	nb.mu.Lock()
	defer nb.mu.Unlock()
	nb.ensureLoaded(ctx)

	next := nb.labels.Clone()
	if err := next.Set(section, key, value); err != nil {
		return nil, err
	}
	if err := nb.saveLabels(ctx, next); err != nil {
		return nil, err
	}
	return next.Clone(), nil
}

// Reset restores the defaults of one section
func (uc *LabelUseCase) Reset(ctx context.Context, section types.Section, confirmed bool) (*model.LabelConfig, error) {
	if !section.HasLabels() {
		return nil, goerr.Wrap(model.ErrUnknownLabel, "section has no labels", goerr.V(model.SectionKey, section))
	}
	if !confirmed {
		return nil, goerr.Wrap(ErrConfirmationRequired, "label reset was not confirmed", goerr.V(model.SectionKey, section))
	}

	nb := uc.nb
	nb.mu.Lock()
	defer nb.mu.Unlock()
	nb.ensureLoaded(ctx)

	next := nb.labels.Clone()
	defaults, _ := nb.labelDefaults.Section(section)
	for key, value := range defaults {
		if err := next.Set(section, key, value); err != nil {
			return nil, err
		}
	}
	if err := nb.saveLabels(ctx, next); err != nil {
		return nil, err
	}
	return next.Clone(), nil
}
