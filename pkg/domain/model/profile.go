package model

import (
	"encoding/json"
	"slices"

	"github.com/m-mizutani/goerr/v2"
)

// ProfileDocument is the shape of an exported coachee profile file
type ProfileDocument struct {
	CoacheeName string  `json:"coacheeName"`
	Profile     Profile `json:"profile"`
}

// NewProfileDocument copies the identity and profile of s. entry, when non-nil,
// is appended to the copied history; s itself is never modified.
func NewProfileDocument(s *Session, entry *MeetingHistoryItem) *ProfileDocument {
	history := slices.Clone(s.Profile.MeetingHistory)
	if history == nil {
		history = []MeetingHistoryItem{}
	}
	if entry != nil {
		history = append(history, *entry)
	}

	return &ProfileDocument{
		CoacheeName: s.CoacheeName,
		Profile: Profile{
			IamStatements:  s.Profile.IamStatements,
			Vision:         s.Profile.Vision,
			PastMeetings:   s.Profile.PastMeetings,
			MeetingHistory: history,
		},
	}
}

// Marshal renders the document as indented JSON
func (d *ProfileDocument) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal profile document")
	}
	return data, nil
}

// ParseProfileDocument reads an uploaded profile with shallow shape checks only.
// Absent or mistyped profile strings become empty, a non-array history becomes
// empty, and the coachee name falls back to the legacy clientName key.
func ParseProfileDocument(data []byte) (*ProfileDocument, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, goerr.Wrap(ErrInvalidProfileJSON, "error reading file, please upload a valid JSON profile",
			goerr.V("cause", err.Error()))
	}

	profile, ok := raw["profile"].(map[string]any)
	if !ok {
		return nil, goerr.Wrap(ErrMissingProfile, "profile key is absent or not an object")
	}

	doc := &ProfileDocument{
		CoacheeName: stringOf(raw["coacheeName"]),
		Profile: Profile{
			IamStatements:  stringOf(profile["iamStatements"]),
			Vision:         stringOf(profile["vision"]),
			PastMeetings:   stringOf(profile["pastMeetings"]),
			MeetingHistory: []MeetingHistoryItem{},
		},
	}
	if doc.CoacheeName == "" {
		doc.CoacheeName = stringOf(raw["clientName"])
	}

	if items, ok := profile["meetingHistory"].([]any); ok {
		for _, item := range items {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			doc.Profile.MeetingHistory = append(doc.Profile.MeetingHistory, MeetingHistoryItem{
				Date:    stringOf(m["date"]),
				Summary: stringOf(m["summary"]),
			})
		}
	}

	return doc, nil
}

// ApplyTo overwrites the identity and profile of s with the document. An empty
// coachee name keeps the current one.
func (d *ProfileDocument) ApplyTo(s *Session) {
	if d.CoacheeName != "" {
		s.CoacheeName = d.CoacheeName
	}
	s.Profile = Profile{
		IamStatements:  d.Profile.IamStatements,
		Vision:         d.Profile.Vision,
		PastMeetings:   d.Profile.PastMeetings,
		MeetingHistory: slices.Clone(d.Profile.MeetingHistory),
	}
	if s.Profile.MeetingHistory == nil {
		s.Profile.MeetingHistory = []MeetingHistoryItem{}
	}
	s.SyncFoundation()
}

func stringOf(v any) string {
	s, _ := v.(string)
	return s
}
