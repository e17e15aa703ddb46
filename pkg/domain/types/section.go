package types

import "fmt"

// Section names a group of fields in a session record
type Section string

const (
	SectionIdentity Section = "identity"
	SectionProfile  Section = "profile"
	SectionEngage   Section = "engage"
	SectionExplore  Section = "explore"
	SectionExpress  Section = "express"
	SectionExtend   Section = "extend"
)

// IsValid checks if the section is valid
func (s Section) IsValid() bool {
	switch s {
	case SectionIdentity,
		SectionProfile,
		SectionEngage,
		SectionExplore,
		SectionExpress,
		SectionExtend:
		return true
	default:
		return false
	}
}

// HasLabels reports whether the section's questions are user customizable
func (s Section) HasLabels() bool {
	return s == SectionEngage || s == SectionExpress
}

// String returns the string representation of the section
func (s Section) String() string {
	return string(s)
}

// ParseSection parses a string into a Section
func ParseSection(s string) (Section, error) {
	section := Section(s)
	if !section.IsValid() {
		return "", fmt.Errorf("invalid section: %s", s)
	}
	return section, nil
}
