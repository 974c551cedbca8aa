package nfield

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fieldwork-labs/nfield-cli/internal/core/domain"
	"github.com/fieldwork-labs/nfield-cli/internal/core/ports/driven"
)

const surveysPath = "v1/Surveys"

var _ driven.SurveysService = (*surveysService)(nil)

// surveysService is the typed handle for the survey endpoints.
type surveysService struct {
	client *Client
}

func (s *surveysService) Add(ctx context.Context, survey *domain.Survey) (*domain.Survey, error) {
	if err := survey.Validate(); err != nil {
		return nil, err
	}

	var created domain.Survey
	if err := s.client.do(ctx, http.MethodPost, surveysPath, survey, &created); err != nil {
		return nil, fmt.Errorf("add survey: %w", err)
	}
	return &created, nil
}

func (s *surveysService) Update(ctx context.Context, survey *domain.Survey) (*domain.Survey, error) {
	if survey.ID == "" {
		return nil, fmt.Errorf("%w: survey id is required", domain.ErrInvalidInput)
	}
	if err := survey.Validate(); err != nil {
		return nil, err
	}

	var updated domain.Survey
	if err := s.client.do(ctx, http.MethodPatch, surveysPath+"/"+survey.ID, survey, &updated); err != nil {
		return nil, fmt.Errorf("update survey: %w", err)
	}
	return &updated, nil
}

func (s *surveysService) Remove(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: survey id is required", domain.ErrInvalidInput)
	}

	if err := s.client.do(ctx, http.MethodDelete, surveysPath+"/"+id, nil, nil); err != nil {
		return fmt.Errorf("remove survey: %w", err)
	}
	return nil
}

func (s *surveysService) Get(ctx context.Context, id string) (*domain.Survey, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: survey id is required", domain.ErrInvalidInput)
	}

	var survey domain.Survey
	if err := s.client.do(ctx, http.MethodGet, surveysPath+"/"+id, nil, &survey); err != nil {
		return nil, fmt.Errorf("get survey: %w", err)
	}
	return &survey, nil
}

func (s *surveysService) List(ctx context.Context) ([]domain.Survey, error) {
	surveys := []domain.Survey{}
	if err := s.client.do(ctx, http.MethodGet, surveysPath, nil, &surveys); err != nil {
		return nil, fmt.Errorf("list surveys: %w", err)
	}
	return surveys, nil
}

var _ driven.SamplingPointsService = (*samplingPointsService)(nil)

// samplingPointsService reads the sampling points of a survey.
type samplingPointsService struct {
	client *Client
}

func (s *samplingPointsService) List(ctx context.Context, surveyID string) ([]domain.SamplingPoint, error) {
	if surveyID == "" {
		return nil, fmt.Errorf("%w: survey id is required", domain.ErrInvalidInput)
	}

	points := []domain.SamplingPoint{}
	path := surveysPath + "/" + surveyID + "/SamplingPoints"
	if err := s.client.do(ctx, http.MethodGet, path, nil, &points); err != nil {
		return nil, fmt.Errorf("list sampling points: %w", err)
	}
	return points, nil
}

var _ driven.SurveyScriptService = (*surveyScriptService)(nil)

// surveyScriptService reads the questionnaire script of a survey.
type surveyScriptService struct {
	client *Client
}

func (s *surveyScriptService) Get(ctx context.Context, surveyID string) (*domain.SurveyScript, error) {
	if surveyID == "" {
		return nil, fmt.Errorf("%w: survey id is required", domain.ErrInvalidInput)
	}

	var script domain.SurveyScript
	if err := s.client.do(ctx, http.MethodGet, surveysPath+"/"+surveyID+"/Script", nil, &script); err != nil {
		return nil, fmt.Errorf("get survey script: %w", err)
	}
	return &script, nil
}
