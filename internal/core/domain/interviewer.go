package domain

import (
	"fmt"
	"strings"
)

// Interviewer is a person record managed through the platform's
// interviewer service. The platform owns the record; this type mirrors
// the fields the client can set and read.
type Interviewer struct {
	// ID is the platform-assigned identifier. Empty until the record
	// has been created server-side.
	ID string `json:"InterviewerId,omitempty"`

	// ClientInterviewerID is an optional caller-chosen identifier used
	// to correlate the record with an external system.
	ClientInterviewerID string `json:"ClientInterviewerId,omitempty"`

	// UserName is the interviewer's sign-in name. Required on create.
	UserName string `json:"UserName"`

	FirstName string `json:"FirstName,omitempty"`
	LastName  string `json:"LastName,omitempty"`

	// EmailAddress is required on create.
	EmailAddress string `json:"EmailAddress"`

	TelephoneNumber string `json:"TelephoneNumber,omitempty"`
}

// Validate checks the fields required to create the record.
func (i *Interviewer) Validate() error {
	if strings.TrimSpace(i.UserName) == "" {
		return fmt.Errorf("%w: interviewer user name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(i.EmailAddress) == "" {
		return fmt.Errorf("%w: interviewer email address is required", ErrInvalidInput)
	}
	return nil
}

// DisplayName returns the interviewer's full name, falling back to the
// user name when no name parts are set.
func (i *Interviewer) DisplayName() string {
	name := strings.TrimSpace(i.FirstName + " " + i.LastName)
	if name == "" {
		return i.UserName
	}
	return name
}
