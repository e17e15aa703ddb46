package usecase

import (
	"context"
	"time"

	"github.com/secmon-lab/coachnote/pkg/domain/model"
)

// CalendarLinks are the calendar URLs for the current session
type CalendarLinks struct {
	EventURL string `json:"eventUrl"`
	EmbedURL string `json:"embedUrl"`
}

type CalendarUseCase struct {
	nb            *notebook
	prefs         *PreferenceUseCase
	location      *time.Location
	embedTimezone string
}

func newCalendarUseCase(nb *notebook, prefs *PreferenceUseCase, location *time.Location, embedTimezone string) *CalendarUseCase {
	return &CalendarUseCase{
		nb:            nb,
		prefs:         prefs,
		location:      location,
		embedTimezone: embedTimezone,
	}
}

func (uc *CalendarUseCase) Links(ctx context.Context) (*CalendarLinks, error) {
	s, _ := uc.nb.snapshot(ctx)
	email, err := uc.prefs.CoachEmail(ctx)
	if err != nil {
		return nil, err
	}

	return &CalendarLinks{
		EventURL: model.CalendarEventURL(s, uc.nb.currentSummary(), uc.location),
		EmbedURL: model.CalendarEmbedURL(email, uc.embedTimezone),
	}, nil
}
