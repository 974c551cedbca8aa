// Package domain defines the core entities for the nfield CLI.
//
// This package is the innermost layer of the hexagonal architecture.
// It models the records the survey platform owns and the client reads
// and writes:
//
//   - Interviewer: A person record on the interviewer service
//   - Survey: A data-collection project
//   - SamplingPoint: A fieldwork location assigned to a survey
//   - SurveyScript: The ODIN questionnaire source of a survey
//   - DataDownloadRequest: A request for a prepared data export
//   - BackgroundTask: An asynchronous platform job, polled to completion
//   - DownloadRecord: Local history of requested exports
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
