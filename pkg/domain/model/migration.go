package model

import (
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
)

// SchemaVersion is the version stamped on every session document written by this build
const SchemaVersion = 6

// Migration patches one historical gap in the stored session shape. Apply must be
// pure, additive and idempotent: it never removes fields and never fails.
type Migration struct {
	Version int
	Name    string
	Apply   func(doc map[string]any) map[string]any
}

// Migrations returns the ordered migration chain
func Migrations() []Migration {
	return []Migration{
		{Version: 1, Name: "ensure profile", Apply: migrateEnsureProfile},
		{Version: 2, Name: "rename clientName to coacheeName", Apply: migrateClientName},
		{Version: 3, Name: "ensure meeting history", Apply: migrateEnsureMeetingHistory},
		{Version: 4, Name: "ensure next steps thinking", Apply: migrateEnsureNextStepsThinking},
		{Version: 5, Name: "ensure action steps", Apply: migrateEnsureActionSteps},
		{Version: 6, Name: "ensure encouragement", Apply: migrateEnsureEncouragement},
	}
}

// MigrateSessionDocument applies every migration newer than the document's
// schemaVersion and stamps the current version.
func MigrateSessionDocument(doc map[string]any) map[string]any {
	from := 0
	if v, ok := doc["schemaVersion"].(float64); ok {
		from = int(v)
	}
	for _, m := range Migrations() {
		if m.Version > from {
			doc = m.Apply(doc)
		}
	}
	doc["schemaVersion"] = SchemaVersion
	return doc
}

func childMap(doc map[string]any, key string) map[string]any {
	if m, ok := doc[key].(map[string]any); ok {
		return m
	}
	m := map[string]any{}
	doc[key] = m
	return m
}

func ensureKey(m map[string]any, key string, value any) {
	if _, ok := m[key]; !ok {
		m[key] = value
	}
}

func migrateEnsureProfile(doc map[string]any) map[string]any {
	if _, ok := doc["profile"].(map[string]any); ok {
		return doc
	}
	doc["profile"] = map[string]any{
		"iamStatements":  "",
		"vision":         "",
		"pastMeetings":   "",
		"meetingHistory": []any{},
	}
	return doc
}

func migrateClientName(doc map[string]any) map[string]any {
	clientName, _ := doc["clientName"].(string)
	coacheeName, _ := doc["coacheeName"].(string)
	if clientName != "" && coacheeName == "" {
		doc["coacheeName"] = clientName
	}
	return doc
}

func migrateEnsureMeetingHistory(doc map[string]any) map[string]any {
	profile := childMap(doc, "profile")
	if _, ok := profile["meetingHistory"].([]any); !ok {
		profile["meetingHistory"] = []any{}
	}
	return doc
}

func migrateEnsureNextStepsThinking(doc map[string]any) map[string]any {
	ensureKey(childMap(doc, "express"), "nextStepsThinking", "")
	return doc
}

func migrateEnsureActionSteps(doc map[string]any) map[string]any {
	express := childMap(doc, "express")
	if _, ok := express["actionSteps"].([]any); ok {
		return doc
	}

	steps := []any{}
	for _, key := range []string{"step1", "step2", "step3"} {
		if s, ok := express[key].(string); ok && s != "" {
			steps = append(steps, s)
		}
	}
	if len(steps) == 0 {
		steps = []any{"", "", ""}
	}
	express["actionSteps"] = steps
	return doc
}

func migrateEnsureEncouragement(doc map[string]any) map[string]any {
	ensureKey(childMap(doc, "express"), "encouragement", "")
	return doc
}

type sessionDocument struct {
	SchemaVersion int `json:"schemaVersion"`
	Session
}

// EncodeSession serializes s with the current schema version
func EncodeSession(s *Session) ([]byte, error) {
	data, err := json.Marshal(sessionDocument{SchemaVersion: SchemaVersion, Session: *s})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal session")
	}
	return data, nil
}

// DecodeSession parses a stored session of any past shape. The migration chain
// runs before decoding and the derived foundation field is recomputed.
func DecodeSession(data []byte) (*Session, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, goerr.Wrap(err, "failed to parse stored session")
	}
	if doc == nil {
		return nil, goerr.New("stored session is not an object")
	}

	migrated, err := json.Marshal(MigrateSessionDocument(doc))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to re-encode migrated session")
	}

	var stored sessionDocument
	if err := json.Unmarshal(migrated, &stored); err != nil {
		return nil, goerr.Wrap(err, "failed to decode migrated session")
	}

	s := stored.Session.Clone()
	s.SyncFoundation()
	return s, nil
}
