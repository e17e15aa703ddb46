package summary

import "github.com/secmon-lab/coachnote/pkg/domain/model"

var (
	BuildBriefPrompt    = buildBriefPrompt
	BuildQuestionPrompt = buildQuestionPrompt
	FirstName           = firstName
)

func (x *Service) BuildFullPromptForTest(s *model.Session) string {
	return x.buildFullPrompt(s)
}
