package domain

import (
	"fmt"
	"strings"
)

// SurveyType identifies the kind of data-collection project.
type SurveyType string

// Survey types supported by the platform.
const (
	SurveyTypeOnlineBasic    SurveyType = "OnlineBasic"
	SurveyTypeOnlineAdvanced SurveyType = "OnlineAdvanced"
	SurveyTypeEuro           SurveyType = "Euro"
)

// ParseSurveyType converts a string to a SurveyType, case-insensitively.
func ParseSurveyType(s string) (SurveyType, error) {
	for _, t := range []SurveyType{SurveyTypeOnlineBasic, SurveyTypeOnlineAdvanced, SurveyTypeEuro} {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: unknown survey type %q", ErrInvalidInput, s)
}

// Survey describes a data-collection project managed through the
// platform's survey service.
type Survey struct {
	// ID is the platform-assigned survey identifier (a GUID).
	// Empty until the survey has been created server-side.
	ID string `json:"SurveyId,omitempty"`

	Type SurveyType `json:"SurveyType"`

	// Name is the survey's display name. Required on create.
	Name string `json:"SurveyName"`

	// ClientName is the name of the client the survey is run for.
	ClientName string `json:"ClientName,omitempty"`

	Description string `json:"Description,omitempty"`

	// InterviewerInstruction is shown to interviewers working the survey.
	InterviewerInstruction string `json:"InterviewerInstruction,omitempty"`
}

// Validate checks the fields required to create the survey.
func (s *Survey) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: survey name is required", ErrInvalidInput)
	}
	if s.Type == "" {
		return fmt.Errorf("%w: survey type is required", ErrInvalidInput)
	}
	if _, err := ParseSurveyType(string(s.Type)); err != nil {
		return err
	}
	return nil
}
