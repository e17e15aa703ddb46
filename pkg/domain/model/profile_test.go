package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/coachnote/pkg/domain/model"
)

func TestNewProfileDocument(t *testing.T) {
	s := model.NewSession(time.Now())
	s.CoacheeName = "Jane Doe"
	s.Profile.Vision = "Serve well"
	s.Profile.MeetingHistory = []model.MeetingHistoryItem{{Date: "2024-01-01", Summary: "first"}}

	t.Run("appends entry to a copy of history", func(t *testing.T) {
		doc := model.NewProfileDocument(s, &model.MeetingHistoryItem{Date: "2024-03-01", Summary: "second"})
		gt.Array(t, doc.Profile.MeetingHistory).Length(2)
		gt.Value(t, doc.Profile.MeetingHistory[1].Summary).Equal("second")
		gt.Array(t, s.Profile.MeetingHistory).Length(1)
	})

	t.Run("marshals the export shape", func(t *testing.T) {
		data, err := model.NewProfileDocument(s, nil).Marshal()
		gt.NoError(t, err).Required()

		var raw map[string]any
		gt.NoError(t, json.Unmarshal(data, &raw)).Required()
		gt.Value(t, raw["coacheeName"]).Equal("Jane Doe")
		profile, ok := raw["profile"].(map[string]any)
		gt.B(t, ok).True()
		gt.Value(t, profile["vision"]).Equal("Serve well")
		_, hasFoundation := profile["foundationIams"]
		gt.B(t, hasFoundation).False()
	})
}

func TestParseProfileDocument(t *testing.T) {
	t.Run("defaults absent fields", func(t *testing.T) {
		doc, err := model.ParseProfileDocument([]byte(`{"coacheeName":"Jane","profile":{"vision":"V"}}`))
		gt.NoError(t, err).Required()
		gt.Value(t, doc.CoacheeName).Equal("Jane")
		gt.Value(t, doc.Profile.Vision).Equal("V")
		gt.Value(t, doc.Profile.IamStatements).Equal("")
		gt.Array(t, doc.Profile.MeetingHistory).Length(0)
	})

	t.Run("non-array history becomes empty", func(t *testing.T) {
		doc, err := model.ParseProfileDocument([]byte(`{"profile":{"meetingHistory":"oops"}}`))
		gt.NoError(t, err).Required()
		gt.Array(t, doc.Profile.MeetingHistory).Length(0)
	})

	t.Run("history list is kept", func(t *testing.T) {
		doc, err := model.ParseProfileDocument([]byte(`{"profile":{"meetingHistory":[{"date":"2024-01-01","summary":"s"}]}}`))
		gt.NoError(t, err).Required()
		gt.Value(t, doc.Profile.MeetingHistory).Equal([]model.MeetingHistoryItem{{Date: "2024-01-01", Summary: "s"}})
	})

	t.Run("non-object history items are dropped", func(t *testing.T) {
		doc, err := model.ParseProfileDocument([]byte(`{"profile":{"meetingHistory":["text",3,null,{"date":"2024-01-01","summary":"s"},[1]]}}`))
		gt.NoError(t, err).Required()
		gt.Value(t, doc.Profile.MeetingHistory).Equal([]model.MeetingHistoryItem{{Date: "2024-01-01", Summary: "s"}})
	})

	t.Run("legacy clientName", func(t *testing.T) {
		doc, err := model.ParseProfileDocument([]byte(`{"clientName":"Old","profile":{}}`))
		gt.NoError(t, err).Required()
		gt.Value(t, doc.CoacheeName).Equal("Old")
	})

	t.Run("missing profile", func(t *testing.T) {
		_, err := model.ParseProfileDocument([]byte(`{"coacheeName":"Jane"}`))
		gt.Error(t, err).Is(model.ErrMissingProfile)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, err := model.ParseProfileDocument([]byte(`{"profile":`))
		gt.Error(t, err).Is(model.ErrInvalidProfileJSON)
	})
}

func TestProfileDocument_ApplyTo(t *testing.T) {
	s := model.NewSession(time.Now())
	s.CoacheeName = "Keep Me"
	s.Engage.Wins = "untouched"

	doc := &model.ProfileDocument{Profile: model.Profile{IamStatements: "I am", MeetingHistory: nil}}
	doc.ApplyTo(s)

	gt.Value(t, s.CoacheeName).Equal("Keep Me")
	gt.Value(t, s.Profile.IamStatements).Equal("I am")
	gt.Value(t, s.Explore.FoundationIams).Equal("I AM Statements:\nI am")
	gt.Value(t, s.Engage.Wins).Equal("untouched")
	gt.Array(t, s.Profile.MeetingHistory).Length(0)
}
