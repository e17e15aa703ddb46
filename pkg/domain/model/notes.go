package model

import (
	"fmt"
	"strings"

	"github.com/secmon-lab/coachnote/pkg/domain/types"
)

const notesRule = "========================================"

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}

// FullNotes renders every field of s as a plain-text document. Question labels come from
// labels, and empty values print as N/A.
func FullNotes(s *Session, labels *LabelConfig) string {
	blocks := []string{
		"COACHING SESSION NOTES",
		"Coachee: " + s.CoacheeName,
		"Date: " + s.Date,
		notesRule,

		"\n[PROFILE]",
		"I AM Statements:\n" + orNA(s.Profile.IamStatements),
		"Vision:\n" + orNA(s.Profile.Vision),

		"\n[ENGAGE]",
	}

	labeled := func(section types.Section, key, value string) string {
		return labels.Get(section, key) + "\n" + orNA(value)
	}

	blocks = append(blocks,
		labeled(types.SectionEngage, "goodnessOfGod", s.Engage.GoodnessOfGod),
		labeled(types.SectionEngage, "wins", s.Engage.Wins),
		labeled(types.SectionEngage, "learning", s.Engage.Learning),
		labeled(types.SectionEngage, "improvements", s.Engage.Improvements),
		labeled(types.SectionEngage, "nextStepForward", s.Engage.NextStepForward),

		"\n[EXPLORE]",
		"Conversation Notes:\n"+orNA(s.Explore.ConversationNotes),

		"\n[EXPRESS]",
		labeled(types.SectionExpress, "nextStepsThinking", s.Express.NextStepsThinking),
		labeled(types.SectionExpress, "firstSteps", s.Express.FirstSteps),
		labeled(types.SectionExpress, "importance", s.Express.Importance),
		labeled(types.SectionExpress, "whenWillYouDoThis", s.Express.WhenWillYouDoThis),
		labeled(types.SectionExpress, "obstacles", s.Express.Obstacles),
		labeled(types.SectionExpress, "whoToTell", s.Express.WhoToTell),
		labeled(types.SectionExpress, "sacrifices", s.Express.Sacrifices),
		labeled(types.SectionExpress, "stickToIt", s.Express.StickToIt),
		labeled(types.SectionExpress, "visualCue", s.Express.VisualCue),
		labeled(types.SectionExpress, "encouragement", s.Express.Encouragement),

		"\nAction Plan:",
	)

	// Blank steps are skipped and the rest renumbered from 1
	if steps := s.ActiveActionSteps(); len(steps) > 0 {
		for i, step := range steps {
			blocks = append(blocks, fmt.Sprintf("%d. %s", i+1, step))
		}
	} else {
		blocks = append(blocks, "N/A")
	}

	blocks = append(blocks,
		"\n[EXTEND]",
		"Key Insight:\n"+orNA(s.Extend.KeyInsight),
		"Prayer Point:\n"+orNA(s.Extend.PrayerPoint),
		"Next Meeting:\n"+orNA(s.Extend.NextMeeting),
	)

	return strings.Join(blocks, "\n\n")
}

// HistoryEntrySummary appends the non-blank action steps to a brief summary
func HistoryEntrySummary(brief string, steps []string) string {
	if len(steps) == 0 {
		return brief
	}
	return brief + "\n\nActions:\n• " + strings.Join(steps, "\n• ")
}

func nameOr(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}

// NotesFileName is the download name of the full notes
func NotesFileName(s *Session) string {
	return nameOr(s.CoacheeName, "Session") + "_FullNotes_" + s.Date + ".txt"
}

// SummaryFileName is the download name of the generated summary
func SummaryFileName(s *Session) string {
	return nameOr(s.CoacheeName, "Coachee") + "_Session_Summary_" + s.Date + ".txt"
}

// ProfileFileName is the download name of an exported profile
func ProfileFileName(s *Session) string {
	return nameOr(s.CoacheeName, "Coachee") + "_Profile_" + s.Date + ".json"
}
