package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/coachnote/pkg/domain/model"
	"github.com/secmon-lab/coachnote/pkg/domain/types"
)

func TestNewSession(t *testing.T) {
	s := model.NewSession(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))

	gt.Value(t, s.Date).Equal("2024-03-01")
	gt.Value(t, s.CoacheeName).Equal("")
	gt.Array(t, s.Express.ActionSteps).Length(3)
	gt.Array(t, s.Profile.MeetingHistory).Length(0)
	gt.B(t, s.HasSignal()).False()
}

func TestSession_SetField(t *testing.T) {
	t.Run("replaces one field and leaves others", func(t *testing.T) {
		s := model.NewSession(time.Now())
		s.Engage.Learning = "patience"

		gt.NoError(t, s.SetField(types.SectionEngage, "wins", "closed the deal")).Required()
		gt.Value(t, s.Engage.Wins).Equal("closed the deal")
		gt.Value(t, s.Engage.Learning).Equal("patience")
	})

	t.Run("identity fields", func(t *testing.T) {
		s := model.NewSession(time.Now())
		gt.NoError(t, s.SetField(types.SectionIdentity, "coacheeName", "Jane Doe")).Required()
		gt.NoError(t, s.SetField(types.SectionIdentity, "date", "2024-03-01")).Required()
		gt.Value(t, s.CoacheeName).Equal("Jane Doe")
		gt.Value(t, s.Date).Equal("2024-03-01")
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		s := model.NewSession(time.Now())
		err := s.SetField(types.SectionIdentity, "date", "01/03/2024")
		gt.Error(t, err).Is(model.ErrInvalidDate)
	})

	t.Run("rejects unknown field", func(t *testing.T) {
		s := model.NewSession(time.Now())
		err := s.SetField(types.SectionEngage, "unknown", "x")
		gt.Error(t, err).Is(model.ErrUnknownField)
	})

	t.Run("rejects derived field", func(t *testing.T) {
		s := model.NewSession(time.Now())
		err := s.SetField(types.SectionExplore, "foundationIams", "manual")
		gt.Error(t, err).Is(model.ErrReadOnlyField)
		gt.Value(t, s.Explore.FoundationIams).Equal("")
	})
}

func TestSession_FoundationSync(t *testing.T) {
	s := model.NewSession(time.Now())

	gt.NoError(t, s.SetField(types.SectionProfile, "iamStatements", "X")).Required()
	gt.Value(t, s.Explore.FoundationIams).Equal("I AM Statements:\nX")

	gt.NoError(t, s.SetField(types.SectionProfile, "vision", "Y")).Required()
	gt.Value(t, s.Explore.FoundationIams).Equal("I AM Statements:\nX\n\nVision:\nY")

	gt.NoError(t, s.SetField(types.SectionProfile, "iamStatements", "")).Required()
	gt.Value(t, s.Explore.FoundationIams).Equal("Vision:\nY")

	gt.NoError(t, s.SetField(types.SectionProfile, "pastMeetings", "legacy")).Required()
	gt.Value(t, s.Explore.FoundationIams).Equal("Vision:\nY")
}

func TestSession_ActionSteps(t *testing.T) {
	s := model.NewSession(time.Now())

	s.AddActionStep()
	gt.Array(t, s.Express.ActionSteps).Length(4)

	gt.NoError(t, s.SetActionStep(0, "Call supplier")).Required()
	gt.NoError(t, s.SetActionStep(2, "Draft plan")).Required()
	gt.Value(t, s.ActiveActionSteps()).Equal([]string{"Call supplier", "Draft plan"})

	gt.NoError(t, s.RemoveActionStep(1)).Required()
	gt.Value(t, s.Express.ActionSteps).Equal([]string{"Call supplier", "Draft plan", ""})

	gt.Error(t, s.SetActionStep(3, "x")).Is(model.ErrActionStepIndex)
	gt.Error(t, s.RemoveActionStep(-1)).Is(model.ErrActionStepIndex)
}

func TestSession_Clone(t *testing.T) {
	s := model.NewSession(time.Now())
	s.Profile.MeetingHistory = append(s.Profile.MeetingHistory, model.MeetingHistoryItem{Date: "2024-01-01", Summary: "first"})

	c := s.Clone()
	c.Express.ActionSteps[0] = "changed"
	c.Profile.MeetingHistory[0].Summary = "changed"

	gt.Value(t, s.Express.ActionSteps[0]).Equal("")
	gt.Value(t, s.Profile.MeetingHistory[0].Summary).Equal("first")
}

func TestSession_HasSignal(t *testing.T) {
	tests := []struct {
		name string
		mod  func(s *model.Session)
		want bool
	}{
		{name: "empty", mod: func(s *model.Session) {}, want: false},
		{name: "wins", mod: func(s *model.Session) { s.Engage.Wins = "w" }, want: true},
		{name: "notes", mod: func(s *model.Session) { s.Explore.ConversationNotes = "n" }, want: true},
		{name: "insight", mod: func(s *model.Session) { s.Extend.KeyInsight = "k" }, want: true},
		{name: "other fields only", mod: func(s *model.Session) { s.Engage.Learning = "l"; s.Express.ActionSteps[0] = "a" }, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := model.NewSession(time.Now())
			tt.mod(s)
			gt.Value(t, s.HasSignal()).Equal(tt.want)
		})
	}
}
