package summary

import (
	"fmt"
	"strings"

	"github.com/secmon-lab/coachnote/pkg/domain/model"
)

func buildBriefPrompt(s *model.Session) string {
	return fmt.Sprintf(`Analyze the following coaching session notes and provide a summary in LESS THAN 30 WORDS.
Focus on the key breakthrough or main theme.
Do NOT list the action steps in this summary, just the core insight or win.

Wins: %s
Notes: %s
Key Insight: %s
`, s.Engage.Wins, s.Explore.ConversationNotes, s.Extend.KeyInsight)
}

// numberedSteps renders the non-blank action steps as "1. step" lines
func numberedSteps(s *model.Session) string {
	steps := s.ActiveActionSteps()
	lines := make([]string, len(steps))
	for i, step := range steps {
		lines[i] = fmt.Sprintf("%d. %s", i+1, step)
	}
	return strings.Join(lines, "\n")
}

func firstName(name string) string {
	if parts := strings.Fields(name); len(parts) > 0 {
		return parts[0]
	}
	return "there"
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func (x *Service) buildFullPrompt(s *model.Session) string {
	actions := orDefault(numberedSteps(s), "No specific steps recorded.")

	var b strings.Builder
	fmt.Fprintf(&b, "You are %s, an expert executive coach.\n", x.coachName)
	fmt.Fprintf(&b, "Write a session summary email to my coachee, %s.\n\n", orDefault(s.CoacheeName, "Friend"))
	b.WriteString("TONE: Casual, warm, and encouraging.\n\n")

	b.WriteString("DATA FROM SESSION:\n")
	fmt.Fprintf(&b, "- Coachee Vision: %s\n", s.Profile.Vision)
	fmt.Fprintf(&b, "- Coachee I AMs: %s\n\n", s.Profile.IamStatements)
	fmt.Fprintf(&b, "- Wins/Goodness: %s / %s\n", s.Engage.GoodnessOfGod, s.Engage.Wins)
	fmt.Fprintf(&b, "- Learning: %s\n", s.Engage.Learning)
	fmt.Fprintf(&b, "- Improvements/Struggles/Obstacles: %s / %s\n\n", s.Engage.Improvements, s.Express.Obstacles)
	fmt.Fprintf(&b, "- CONVERSATION NOTES:\n  \"%s\"\n\n", s.Explore.ConversationNotes)
	fmt.Fprintf(&b, "- ACTION PLAN (Keep exactly as written):\n%s\n\n", actions)
	fmt.Fprintf(&b, "- KEY INSIGHT (Keep exactly as written): %s\n", s.Extend.KeyInsight)
	fmt.Fprintf(&b, "- PRAYER POINT: %s\n", s.Extend.PrayerPoint)
	fmt.Fprintf(&b, "- NEXT MEETING: %s\n\n", s.Extend.NextMeeting)
	fmt.Fprintf(&b, "- ENCOURAGEMENT FROM %s: %s\n\n", strings.ToUpper(x.coachName), s.Express.Encouragement)

	b.WriteString("EMAIL STRUCTURE:\n")
	fmt.Fprintf(&b, "1. Salutation: \"Hello %s,\"\n", firstName(s.CoacheeName))
	b.WriteString("2. Casual Opening: \"It was good to chat with you! Here are some notes from our session.\"\n")
	b.WriteString("3. Encouragement: Write a short paragraph encouraging them on their breakthrough regarding their struggles. Explicitly mention some of the struggles or obstacles they overcame or are facing (from the data above).\n")
	b.WriteString("4. Summary: \"We explored...\" (Summarize the important points of the conversation).\n")
	b.WriteString("5. \"Action Plan:\" (List the action steps EXACTLY as they appear in the data above. Do not summarize them).\n")
	b.WriteString("6. \"Takeaway:\" (The Key Insight EXACTLY as written above).\n")
	b.WriteString("7. \"Prayer Point:\" (Rephrase the prayer point to start with something like \"I'll be praying about...\").\n")
	fmt.Fprintf(&b, "8. \"Next Meeting:\" \"Next meeting is in the calendar for %s.\"\n", orDefault(s.Extend.NextMeeting, "[Date]"))
	fmt.Fprintf(&b, "9. Closing: \"%s,\n%s\"\n", x.signoff, x.coachName)

	return b.String()
}

func buildQuestionPrompt(notes string) string {
	return fmt.Sprintf(`I am a coach. Based on these notes from a coachee conversation, suggest ONE powerful, open-ended reflective question I should ask them to deepen their thinking.

Conversation Notes:
"%s"

The question should be short, profound, and challenge them to think about the root cause or their future vision.
`, notes)
}
