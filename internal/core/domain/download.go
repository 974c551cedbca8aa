package domain

import (
	"fmt"
	"strings"
	"time"
)

// DataDownloadRequest asks the platform to prepare a data export for a
// survey. The platform answers with a BackgroundTask that produces the
// archive named FileName once it completes.
type DataDownloadRequest struct {
	// SurveyID identifies the survey whose data is exported.
	SurveyID string `json:"SurveyId"`

	// FileName is the name of the archive the platform will produce.
	FileName string `json:"DownloadFileName"`

	// StartDate and EndDate bound the collection period of the exported
	// interviews. Both are serialised as RFC 3339 UTC timestamps.
	StartDate time.Time `json:"StartDate"`
	EndDate   time.Time `json:"EndDate"`

	// Capture flags select which classes of data the export includes.
	SuccessfulLiveInterviewData   bool `json:"DownloadSuccessfulLiveInterviewData"`
	UnsuccessfulLiveInterviewData bool `json:"DownloadNotSuccessfulLiveInterviewData"`
	SuspendedLiveInterviewData    bool `json:"DownloadSuspendedLiveInterviewData"`
	OpenAnswerData                bool `json:"DownloadOpenAnswerData"`
	ClosedAnswerData              bool `json:"DownloadClosedAnswerData"`
	ParaData                      bool `json:"DownloadParaData"`
	CapturedMedia                 bool `json:"DownloadCapturedMedia"`
	VarFile                       bool `json:"DownloadVarFile"`
	TestInterviewData             bool `json:"DownloadTestInterviewData"`
}

// Validate checks the request before it is posted.
func (r *DataDownloadRequest) Validate() error {
	if strings.TrimSpace(r.SurveyID) == "" {
		return fmt.Errorf("%w: survey id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(r.FileName) == "" {
		return fmt.Errorf("%w: download file name is required", ErrInvalidInput)
	}
	if !r.StartDate.IsZero() && !r.EndDate.IsZero() && r.StartDate.After(r.EndDate) {
		return fmt.Errorf("%w: start date is after end date", ErrInvalidInput)
	}
	return nil
}

// NormaliseDates converts the date bounds to UTC so the wire format is
// stable regardless of the caller's local zone.
func (r *DataDownloadRequest) NormaliseDates() {
	if !r.StartDate.IsZero() {
		r.StartDate = r.StartDate.UTC()
	}
	if !r.EndDate.IsZero() {
		r.EndDate = r.EndDate.UTC()
	}
}

// DownloadRecord is the local history row kept for every data download
// requested through this client. It is stored on disk, not on the
// platform.
type DownloadRecord struct {
	// ID is a client-generated identifier for the history row.
	ID string

	// TaskID links to the platform BackgroundTask that runs the export.
	TaskID string

	SurveyID string
	FileName string

	// Status mirrors the last observed task status.
	Status TaskStatus

	RequestedAt time.Time
	CompletedAt *time.Time
}
