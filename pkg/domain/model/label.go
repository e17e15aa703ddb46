package model

import (
	"encoding/json"
	"maps"
	"slices"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/coachnote/pkg/domain/types"
)

// Labels maps a question key to the prompt text shown to the coach
type Labels map[string]string

// LabelConfig holds the customizable questions of the engage and express phases
type LabelConfig struct {
	Engage  Labels `json:"engage"`
	Express Labels `json:"express"`
}

// EngageLabelKeys returns the fixed engage keys in display order
func EngageLabelKeys() []string {
	return []string{"goodnessOfGod", "wins", "learning", "improvements", "nextStepForward"}
}

// ExpressLabelKeys returns the fixed express keys in display order
func ExpressLabelKeys() []string {
	return []string{
		"nextStepsThinking",
		"firstSteps",
		"importance",
		"whenWillYouDoThis",
		"obstacles",
		"whoToTell",
		"sacrifices",
		"stickToIt",
		"visualCue",
		"encouragement",
	}
}

// LabelKeys returns the fixed keys of section, or nil when it has no labels
func LabelKeys(section types.Section) []string {
	switch section {
	case types.SectionEngage:
		return EngageLabelKeys()
	case types.SectionExpress:
		return ExpressLabelKeys()
	default:
		return nil
	}
}

// DefaultLabelConfig returns the built-in questions
func DefaultLabelConfig() *LabelConfig {
	return &LabelConfig{
		Engage: Labels{
			"goodnessOfGod":   "Where have you seen the goodness of God lately?",
			"wins":            "What wins have you noticed?",
			"learning":        "What are you learning?",
			"improvements":    "What could you improve?",
			"nextStepForward": "What's the next step forward?",
		},
		Express: Labels{
			"nextStepsThinking": "What do you think are your next steps?",
			"firstSteps":        "Tell me your very first step?",
			"importance":        "Why is this important?",
			"whenWillYouDoThis": "When will you do this?",
			"obstacles":         "What stops you? (Obstacles & Plan)",
			"whoToTell":         "Accountability: Who can you tell?",
			"sacrifices":        "Consequences / Sacrifices (Saying No)",
			"stickToIt":         "What is your worst day plan?",
			"visualCue":         "Helpful reminders (visual? automated?)",
			"encouragement":     "Encouragement & Coach Input",
		},
	}
}

// Clone returns a deep copy of c
func (c *LabelConfig) Clone() *LabelConfig {
	return &LabelConfig{
		Engage:  maps.Clone(c.Engage),
		Express: maps.Clone(c.Express),
	}
}

// Section returns the labels of section
func (c *LabelConfig) Section(section types.Section) (Labels, error) {
	switch section {
	case types.SectionEngage:
		return c.Engage, nil
	case types.SectionExpress:
		return c.Express, nil
	default:
		return nil, goerr.Wrap(ErrUnknownLabel, "section has no labels", goerr.V(SectionKey, section))
	}
}

// Get returns one label, or the key itself when it is missing
func (c *LabelConfig) Get(section types.Section, key string) string {
	labels, err := c.Section(section)
	if err != nil {
		return key
	}
	if v, ok := labels[key]; ok {
		return v
	}
	return key
}

// Set replaces one label. Keys outside the fixed set are rejected.
func (c *LabelConfig) Set(section types.Section, key, value string) error {
	labels, err := c.Section(section)
	if err != nil {
		return err
	}
	if !slices.Contains(LabelKeys(section), key) {
		return goerr.Wrap(ErrUnknownLabel, "cannot set label",
			goerr.V(SectionKey, section), goerr.V(FieldKey, key))
	}
	labels[key] = value
	return nil
}

// MergeLabels overlays stored values on defaults key by key. Missing keys keep the
// default and keys outside the fixed set are dropped, so schema drift heals itself.
func MergeLabels(defaults *LabelConfig, stored *LabelConfig) *LabelConfig {
	merged := defaults.Clone()
	if stored == nil {
		return merged
	}
	for _, section := range []types.Section{types.SectionEngage, types.SectionExpress} {
		dst, _ := merged.Section(section)
		src, _ := stored.Section(section)
		for _, key := range LabelKeys(section) {
			if v, ok := src[key]; ok {
				dst[key] = v
			}
		}
	}
	return merged
}

// DecodeLabels parses stored labels and merges them over defaults
func DecodeLabels(defaults *LabelConfig, data []byte) (*LabelConfig, error) {
	var stored LabelConfig
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, goerr.Wrap(err, "failed to parse stored labels")
	}
	return MergeLabels(defaults, &stored), nil
}

// EncodeLabels serializes c
func EncodeLabels(c *LabelConfig) ([]byte, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal labels")
	}
	return data, nil
}
