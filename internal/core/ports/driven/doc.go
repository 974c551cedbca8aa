// Package driven defines the interfaces that core services call OUT to
// infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces; the Nfield API connector and
// the storage adapters implement them.
//
// # Required Interfaces
//
//   - InterviewersService, SurveysService, SamplingPointsService,
//     SurveyScriptService, SurveyDataService, BackgroundTasksService:
//     the platform's typed service surface
//   - TokenProvider: authentication tokens for API calls
//   - ConfigStore: application configuration
//   - DownloadStore: local download history persistence
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
