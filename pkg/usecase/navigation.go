package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/coachnote/pkg/domain/types"
)

type NavigationUseCase struct {
	nb      *notebook
	summary *SummaryUseCase
}

func newNavigationUseCase(nb *notebook, summary *SummaryUseCase) *NavigationUseCase {
	return &NavigationUseCase{nb: nb, summary: summary}
}

func (uc *NavigationUseCase) Current(ctx context.Context) types.View {
	return uc.nb.currentView()
}

// Jump switches to any view without side effects
func (uc *NavigationUseCase) Jump(ctx context.Context, view types.View) (types.View, error) {
	if !view.IsValid() {
		return "", goerr.Wrap(ErrInvalidView, "cannot jump to view", goerr.V(ViewKey, view))
	}
	uc.nb.setView(view)
	return view, nil
}

func (uc *NavigationUseCase) Next(ctx context.Context) types.View {
	uc.nb.mu.Lock()
	defer uc.nb.mu.Unlock()
	uc.nb.view = uc.nb.view.Next()
	return uc.nb.view
}

func (uc *NavigationUseCase) Back(ctx context.Context) types.View {
	uc.nb.mu.Lock()
	defer uc.nb.mu.Unlock()
	uc.nb.view = uc.nb.view.Prev()
	return uc.nb.view
}

// Finish generates the summary email, waits for it, and then moves to the summary
// view. A reset during the wait keeps the view the reset chose.
func (uc *NavigationUseCase) Finish(ctx context.Context) (*SummaryState, error) {
	_, epoch, err := uc.summary.generate(ctx)
	if err != nil {
		return nil, err
	}
	uc.nb.setViewAt(epoch, types.ViewSummary)
	return uc.summary.Get(ctx), nil
}
