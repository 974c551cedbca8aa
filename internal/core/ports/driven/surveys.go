package driven

import (
	"context"

	"github.com/fieldwork-labs/nfield-cli/internal/core/domain"
)

// SurveysService manages survey records on the platform.
type SurveysService interface {
	// Add creates a new survey and returns the created record with the
	// platform-assigned ID filled in.
	Add(ctx context.Context, survey *domain.Survey) (*domain.Survey, error)

	// Update replaces the mutable fields of an existing survey.
	Update(ctx context.Context, survey *domain.Survey) (*domain.Survey, error)

	// Remove deletes the survey. Returns domain.ErrNotFound if the
	// survey does not exist.
	Remove(ctx context.Context, id string) error

	// Get fetches a single survey by ID.
	Get(ctx context.Context, id string) (*domain.Survey, error)

	// List returns all surveys in the connection's domain.
	List(ctx context.Context) ([]domain.Survey, error)
}

// SamplingPointsService reads the sampling points assigned to a survey.
type SamplingPointsService interface {
	List(ctx context.Context, surveyID string) ([]domain.SamplingPoint, error)
}

// SurveyScriptService reads the questionnaire script of a survey.
type SurveyScriptService interface {
	Get(ctx context.Context, surveyID string) (*domain.SurveyScript, error)
}
