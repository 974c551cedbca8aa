package driven

import (
	"context"

	"github.com/fieldwork-labs/nfield-cli/internal/core/domain"
)

// SurveyDataService requests prepared data exports.
type SurveyDataService interface {
	// RequestDownload posts a download request and returns the
	// background task the platform created to produce the export.
	RequestDownload(ctx context.Context, req *domain.DataDownloadRequest) (*domain.BackgroundTask, error)
}

// BackgroundTasksService reads the platform's asynchronous job records.
type BackgroundTasksService interface {
	// Get fetches a single task by ID.
	Get(ctx context.Context, id string) (*domain.BackgroundTask, error)

	// List returns all background tasks visible to the connection.
	List(ctx context.Context) ([]domain.BackgroundTask, error)
}
