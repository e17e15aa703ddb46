package model

import (
	"slices"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/coachnote/pkg/domain/types"
)

// DateLayout is the calendar date format of Session.Date
const DateLayout = "2006-01-02"

// MeetingHistoryItem is one past session of a coachee
type MeetingHistoryItem struct {
	Date    string `json:"date"`
	Summary string `json:"summary"`
}

// Profile holds long-lived facts about a coachee
type Profile struct {
	IamStatements  string               `json:"iamStatements"`
	Vision         string               `json:"vision"`
	PastMeetings   string               `json:"pastMeetings"`
	MeetingHistory []MeetingHistoryItem `json:"meetingHistory"`
}

type Engage struct {
	GoodnessOfGod   string `json:"goodnessOfGod"`
	Wins            string `json:"wins"`
	Improvements    string `json:"improvements"`
	NextStepForward string `json:"nextStepForward"`
	Learning        string `json:"learning"`
}

type Explore struct {
	FoundationIams    string `json:"foundationIams"`
	ConversationNotes string `json:"conversationNotes"`
}

type Express struct {
	NextStepsThinking string   `json:"nextStepsThinking"`
	FirstSteps        string   `json:"firstSteps"`
	StickToIt         string   `json:"stickToIt"`
	WhenWillYouDoThis string   `json:"whenWillYouDoThis"`
	Obstacles         string   `json:"obstacles"`
	WhoToTell         string   `json:"whoToTell"`
	VisualCue         string   `json:"visualCue"`
	Importance        string   `json:"importance"`
	Sacrifices        string   `json:"sacrifices"`
	ActionSteps       []string `json:"actionSteps"`
	Encouragement     string   `json:"encouragement"`
}

type Extend struct {
	KeyInsight  string `json:"keyInsight"`
	PrayerPoint string `json:"prayerPoint"`
	// NextMeeting is a local date-time in the form 2006-01-02T15:04
	NextMeeting string `json:"nextMeeting"`
}

// Session is the structured record of one coaching conversation
type Session struct {
	CoacheeName string  `json:"coacheeName"`
	Date        string  `json:"date"`
	Profile     Profile `json:"profile"`
	Engage      Engage  `json:"engage"`
	Explore     Explore `json:"explore"`
	Express     Express `json:"express"`
	Extend      Extend  `json:"extend"`
}

// NewSession returns an empty session dated on now
func NewSession(now time.Time) *Session {
	return &Session{
		Date: now.Format(DateLayout),
		Profile: Profile{
			MeetingHistory: []MeetingHistoryItem{},
		},
		Express: Express{
			ActionSteps: []string{"", "", ""},
		},
	}
}

// Clone returns a deep copy of s
func (s *Session) Clone() *Session {
	c := *s
	c.Profile.MeetingHistory = slices.Clone(s.Profile.MeetingHistory)
	c.Express.ActionSteps = slices.Clone(s.Express.ActionSteps)
	if c.Profile.MeetingHistory == nil {
		c.Profile.MeetingHistory = []MeetingHistoryItem{}
	}
	if c.Express.ActionSteps == nil {
		c.Express.ActionSteps = []string{}
	}
	return &c
}

// HasSignal reports whether any field that makes a session worth summarizing is set
func (s *Session) HasSignal() bool {
	return s.Engage.Wins != "" || s.Explore.ConversationNotes != "" || s.Extend.KeyInsight != ""
}

// ActiveActionSteps returns the action steps that contain non-blank text, in order
func (s *Session) ActiveActionSteps() []string {
	steps := make([]string, 0, len(s.Express.ActionSteps))
	for _, step := range s.Express.ActionSteps {
		if strings.TrimSpace(step) != "" {
			steps = append(steps, step)
		}
	}
	return steps
}

// FoundationText formats the profile statements shown on the explore view
func FoundationText(iamStatements, vision string) string {
	var parts []string
	if iamStatements != "" {
		parts = append(parts, "I AM Statements:\n"+iamStatements)
	}
	if vision != "" {
		parts = append(parts, "Vision:\n"+vision)
	}
	return strings.Join(parts, "\n\n")
}

// SyncFoundation recomputes the derived explore.foundationIams field
func (s *Session) SyncFoundation() {
	s.Explore.FoundationIams = FoundationText(s.Profile.IamStatements, s.Profile.Vision)
}

// SetField replaces exactly one text field. Profile edits keep the derived
// foundation field in sync.
func (s *Session) SetField(section types.Section, field, value string) error {
	if section == types.SectionIdentity && field == "date" {
		if _, err := time.Parse(DateLayout, value); err != nil {
			return goerr.Wrap(ErrInvalidDate, "date must be YYYY-MM-DD", goerr.V(FieldKey, value))
		}
	}
	if section == types.SectionExplore && field == "foundationIams" {
		return goerr.Wrap(ErrReadOnlyField, "cannot edit derived field",
			goerr.V(SectionKey, section), goerr.V(FieldKey, field))
	}

	ptr := s.fieldRef(section, field)
	if ptr == nil {
		return goerr.Wrap(ErrUnknownField, "cannot set field",
			goerr.V(SectionKey, section), goerr.V(FieldKey, field))
	}
	*ptr = value

	if section == types.SectionProfile {
		s.SyncFoundation()
	}
	return nil
}

// Field returns the value of one text field
func (s *Session) Field(section types.Section, field string) (string, error) {
	if section == types.SectionExplore && field == "foundationIams" {
		return s.Explore.FoundationIams, nil
	}
	ptr := s.fieldRef(section, field)
	if ptr == nil {
		return "", goerr.Wrap(ErrUnknownField, "cannot get field",
			goerr.V(SectionKey, section), goerr.V(FieldKey, field))
	}
	return *ptr, nil
}

func (s *Session) fieldRef(section types.Section, field string) *string {
	switch section {
	case types.SectionIdentity:
		switch field {
		case "coacheeName":
			return &s.CoacheeName
		case "date":
			return &s.Date
		}
	case types.SectionProfile:
		switch field {
		case "iamStatements":
			return &s.Profile.IamStatements
		case "vision":
			return &s.Profile.Vision
		case "pastMeetings":
			return &s.Profile.PastMeetings
		}
	case types.SectionEngage:
		switch field {
		case "goodnessOfGod":
			return &s.Engage.GoodnessOfGod
		case "wins":
			return &s.Engage.Wins
		case "improvements":
			return &s.Engage.Improvements
		case "nextStepForward":
			return &s.Engage.NextStepForward
		case "learning":
			return &s.Engage.Learning
		}
	case types.SectionExplore:
		if field == "conversationNotes" {
			return &s.Explore.ConversationNotes
		}
	case types.SectionExpress:
		switch field {
		case "nextStepsThinking":
			return &s.Express.NextStepsThinking
		case "firstSteps":
			return &s.Express.FirstSteps
		case "stickToIt":
			return &s.Express.StickToIt
		case "whenWillYouDoThis":
			return &s.Express.WhenWillYouDoThis
		case "obstacles":
			return &s.Express.Obstacles
		case "whoToTell":
			return &s.Express.WhoToTell
		case "visualCue":
			return &s.Express.VisualCue
		case "importance":
			return &s.Express.Importance
		case "sacrifices":
			return &s.Express.Sacrifices
		case "encouragement":
			return &s.Express.Encouragement
		}
	case types.SectionExtend:
		switch field {
		case "keyInsight":
			return &s.Extend.KeyInsight
		case "prayerPoint":
			return &s.Extend.PrayerPoint
		case "nextMeeting":
			return &s.Extend.NextMeeting
		}
	}
	return nil
}

// AddActionStep appends an empty action step
func (s *Session) AddActionStep() {
	s.Express.ActionSteps = append(s.Express.ActionSteps, "")
}

// SetActionStep replaces the action step at index
func (s *Session) SetActionStep(index int, value string) error {
	if index < 0 || index >= len(s.Express.ActionSteps) {
		return goerr.Wrap(ErrActionStepIndex, "cannot set action step",
			goerr.V(IndexKey, index), goerr.V("length", len(s.Express.ActionSteps)))
	}
	s.Express.ActionSteps[index] = value
	return nil
}

// RemoveActionStep deletes the action step at index, shifting later steps up
func (s *Session) RemoveActionStep(index int) error {
	if index < 0 || index >= len(s.Express.ActionSteps) {
		return goerr.Wrap(ErrActionStepIndex, "cannot remove action step",
			goerr.V(IndexKey, index), goerr.V("length", len(s.Express.ActionSteps)))
	}
	s.Express.ActionSteps = slices.Delete(s.Express.ActionSteps, index, index+1)
	return nil
}
