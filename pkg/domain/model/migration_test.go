package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/coachnote/pkg/domain/model"
	"github.com/secmon-lab/coachnote/pkg/domain/types"
)

func TestEncodeDecodeSession_RoundTrip(t *testing.T) {
	s := model.NewSession(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	gt.NoError(t, s.SetField(types.SectionIdentity, "coacheeName", "Jane Doe")).Required()
	gt.NoError(t, s.SetField(types.SectionProfile, "iamStatements", "I am loved")).Required()
	gt.NoError(t, s.SetField(types.SectionProfile, "vision", "Serve well")).Required()
	gt.NoError(t, s.SetField(types.SectionEngage, "wins", "Shipped")).Required()
	gt.NoError(t, s.SetField(types.SectionExpress, "encouragement", "Keep going")).Required()
	gt.NoError(t, s.SetField(types.SectionExtend, "nextMeeting", "2024-03-08T10:30")).Required()
	gt.NoError(t, s.SetActionStep(1, "Draft plan")).Required()
	s.Profile.MeetingHistory = append(s.Profile.MeetingHistory, model.MeetingHistoryItem{Date: "2024-02-01", Summary: "first"})

	data, err := model.EncodeSession(s)
	gt.NoError(t, err).Required()

	decoded, err := model.DecodeSession(data)
	gt.NoError(t, err).Required()
	gt.Value(t, decoded).Equal(s)
}

func TestDecodeSession_Migrations(t *testing.T) {
	t.Run("missing profile is created", func(t *testing.T) {
		s, err := model.DecodeSession([]byte(`{"coacheeName":"A","date":"2023-01-01","engage":{},"explore":{},"express":{"actionSteps":["x"]},"extend":{}}`))
		gt.NoError(t, err).Required()
		gt.Value(t, s.Profile.IamStatements).Equal("")
		gt.B(t, s.Profile.MeetingHistory != nil).True()
		gt.Array(t, s.Profile.MeetingHistory).Length(0)
	})

	t.Run("clientName is renamed", func(t *testing.T) {
		s, err := model.DecodeSession([]byte(`{"clientName":"Legacy Name","date":"2023-01-01","express":{}}`))
		gt.NoError(t, err).Required()
		gt.Value(t, s.CoacheeName).Equal("Legacy Name")
	})

	t.Run("clientName does not override coacheeName", func(t *testing.T) {
		s, err := model.DecodeSession([]byte(`{"clientName":"Old","coacheeName":"New","express":{}}`))
		gt.NoError(t, err).Required()
		gt.Value(t, s.CoacheeName).Equal("New")
	})

	t.Run("missing meeting history is created", func(t *testing.T) {
		s, err := model.DecodeSession([]byte(`{"profile":{"vision":"V"},"express":{}}`))
		gt.NoError(t, err).Required()
		gt.Array(t, s.Profile.MeetingHistory).Length(0)
		gt.Value(t, s.Explore.FoundationIams).Equal("Vision:\nV")
	})

	t.Run("legacy step slots become action steps", func(t *testing.T) {
		s, err := model.DecodeSession([]byte(`{"express":{"step1":"one","step2":"","step3":"three"}}`))
		gt.NoError(t, err).Required()
		gt.Value(t, s.Express.ActionSteps).Equal([]string{"one", "three"})
	})

	t.Run("missing action steps become three empty slots", func(t *testing.T) {
		s, err := model.DecodeSession([]byte(`{"express":{"firstSteps":"go"}}`))
		gt.NoError(t, err).Required()
		gt.Value(t, s.Express.ActionSteps).Equal([]string{"", "", ""})
		gt.Value(t, s.Express.FirstSteps).Equal("go")
		gt.Value(t, s.Express.Encouragement).Equal("")
	})

	t.Run("corrupt JSON is an error", func(t *testing.T) {
		_, err := model.DecodeSession([]byte(`{not json`))
		gt.Value(t, err).NotNil()
	})

	t.Run("non object is an error", func(t *testing.T) {
		_, err := model.DecodeSession([]byte(`null`))
		gt.Value(t, err).NotNil()
	})
}

func TestMigrations_AreIdempotent(t *testing.T) {
	for _, m := range model.Migrations() {
		t.Run(m.Name, func(t *testing.T) {
			once := m.Apply(map[string]any{"clientName": "C", "express": map[string]any{"step1": "s"}})
			twice := m.Apply(m.Apply(map[string]any{"clientName": "C", "express": map[string]any{"step1": "s"}}))
			gt.Value(t, twice).Equal(once)
		})
	}
}

func TestMigrations_AreOrdered(t *testing.T) {
	migrations := model.Migrations()
	for i, m := range migrations {
		gt.Value(t, m.Version).Equal(i + 1)
	}
	gt.Value(t, migrations[len(migrations)-1].Version).Equal(model.SchemaVersion)
}

func TestMigrateSessionDocument_SkipsAppliedVersions(t *testing.T) {
	doc := map[string]any{
		"schemaVersion": float64(model.SchemaVersion),
		"clientName":    "Ignored",
		"express":       map[string]any{},
	}
	out := model.MigrateSessionDocument(doc)
	_, hasName := out["coacheeName"]
	gt.B(t, hasName).False()
	gt.Value(t, out["schemaVersion"]).Equal(model.SchemaVersion)
}
