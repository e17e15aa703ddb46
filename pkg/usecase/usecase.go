package usecase

import (
	"time"

	"github.com/secmon-lab/coachnote/pkg/domain/interfaces"
	"github.com/secmon-lab/coachnote/pkg/domain/model"
	"github.com/secmon-lab/coachnote/pkg/service/summary"
)

type UseCases struct {
	repo          interfaces.Repository
	now           func() time.Time
	labelDefaults *model.LabelConfig
	summarizer    *summary.Service
	location      *time.Location
	embedTimezone string

	Session    *SessionUseCase
	Label      *LabelUseCase
	Preference *PreferenceUseCase
	Profile    *ProfileUseCase
	Summary    *SummaryUseCase
	Navigation *NavigationUseCase
	Calendar   *CalendarUseCase
	Notes      *NotesUseCase
}

type Option func(*UseCases)

// WithClock replaces the clock used for default session dates and request timestamps
func WithClock(now func() time.Time) Option {
	return func(uc *UseCases) {
		uc.now = now
	}
}

// WithLabelDefaults replaces the built-in questions. Label reset restores these.
func WithLabelDefaults(labels *model.LabelConfig) Option {
	return func(uc *UseCases) {
		uc.labelDefaults = labels
	}
}

func WithSummarizer(svc *summary.Service) Option {
	return func(uc *UseCases) {
		uc.summarizer = svc
	}
}

// WithLocation sets the time zone the next meeting time is entered in
func WithLocation(loc *time.Location) Option {
	return func(uc *UseCases) {
		uc.location = loc
	}
}

func WithEmbedTimezone(tz string) Option {
	return func(uc *UseCases) {
		uc.embedTimezone = tz
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:          repo,
		now:           time.Now,
		labelDefaults: model.DefaultLabelConfig(),
		location:      time.Local,
		embedTimezone: model.DefaultEmbedTimezone,
	}

	for _, opt := range opts {
		opt(uc)
	}

	if uc.summarizer == nil {
		uc.summarizer = summary.New(nil)
	}

	nb := newNotebook(repo, uc.now, uc.labelDefaults)
	uc.Preference = NewPreferenceUseCase(repo)
	uc.Session = newSessionUseCase(nb)
	uc.Label = newLabelUseCase(nb)
	uc.Profile = newProfileUseCase(nb, uc.Preference, uc.summarizer)
	uc.Summary = newSummaryUseCase(nb, uc.Preference, uc.summarizer)
	uc.Navigation = newNavigationUseCase(nb, uc.Summary)
	uc.Calendar = newCalendarUseCase(nb, uc.Preference, uc.location, uc.embedTimezone)
	uc.Notes = newNotesUseCase(nb)

	return uc
}
