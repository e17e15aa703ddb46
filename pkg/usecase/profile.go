package usecase

import (
	"context"
	"errors"

	"github.com/secmon-lab/coachnote/pkg/domain/model"
	"github.com/secmon-lab/coachnote/pkg/service/summary"
	"github.com/secmon-lab/coachnote/pkg/utils/logging"
)

type ProfileUseCase struct {
	nb         *notebook
	prefs      *PreferenceUseCase
	summarizer *summary.Service
	brief      *requestTracker
}

func newProfileUseCase(nb *notebook, prefs *PreferenceUseCase, summarizer *summary.Service) *ProfileUseCase {
	return &ProfileUseCase{
		nb:         nb,
		prefs:      prefs,
		summarizer: summarizer,
		brief:      newRequestTracker(RequestKindBrief, nb.now),
	}
}

// Export renders the coachee profile. When the session has notes worth keeping, a
// brief summary of it is appended to the exported history. The live session is
// left as it is.
func (uc *ProfileUseCase) Export(ctx context.Context) (*Download, error) {
	s, _ := uc.nb.snapshot(ctx)

	var entry *model.MeetingHistoryItem
	if s.HasSignal() {
		brief, err := uc.brief.run(ctx, func(ctx context.Context) (string, error) {
			credential, err := uc.prefs.Credential(ctx)
			if err != nil {
				return summary.BriefFailed, err
			}
			return uc.summarizer.Brief(ctx, s, credential)
		})
		if errors.Is(err, ErrRequestInFlight) {
			return nil, err
		}

		entry = &model.MeetingHistoryItem{
			Date:    s.Date,
			Summary: model.HistoryEntrySummary(brief, s.ActiveActionSteps()),
		}
	}

	data, err := model.NewProfileDocument(s, entry).Marshal()
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Info("profile exported", "with_entry", entry != nil)
	return &Download{
		FileName:    model.ProfileFileName(s),
		ContentType: ContentTypeJSON,
		Data:        data,
	}, nil
}

// Import replaces the identity and profile of the session with an uploaded profile.
// Nothing changes when the file is rejected.
func (uc *ProfileUseCase) Import(ctx context.Context, data []byte) (*model.Session, error) {
	doc, err := model.ParseProfileDocument(data)
	if err != nil {
		return nil, err
	}

	s, err := uc.nb.mutateSession(ctx, func(s *model.Session) error {
		doc.ApplyTo(s)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Info("profile imported", "history_items", len(s.Profile.MeetingHistory))
	return s, nil
}
