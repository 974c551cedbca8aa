package domain

// SamplingPoint is a location or cluster assigned to a survey's
// fieldwork. Sampling points are read-only from this client's
// perspective; they are provisioned through the platform.
type SamplingPoint struct {
	ID          string `json:"SamplingPointId"`
	Name        string `json:"Name"`
	Description string `json:"Description,omitempty"`

	// Instruction is free-form guidance for interviewers working
	// this sampling point.
	Instruction string `json:"Instruction,omitempty"`

	// FieldworkOfficeID references the office responsible for the point.
	FieldworkOfficeID string `json:"FieldworkOfficeId,omitempty"`
}

// SurveyScript is the ODIN questionnaire source attached to a survey.
type SurveyScript struct {
	FileName string `json:"FileName"`
	Script   string `json:"Script"`
}
