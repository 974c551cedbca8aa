package nfield

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fieldwork-labs/nfield-cli/internal/core/domain"
	"github.com/fieldwork-labs/nfield-cli/internal/core/ports/driven"
)

const backgroundTasksPath = "v1/BackgroundTasks"

var _ driven.SurveyDataService = (*surveyDataService)(nil)

// surveyDataService posts data export requests.
type surveyDataService struct {
	client *Client
}

func (s *surveyDataService) RequestDownload(ctx context.Context, req *domain.DataDownloadRequest) (*domain.BackgroundTask, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.NormaliseDates()

	var task domain.BackgroundTask
	path := surveysPath + "/" + req.SurveyID + "/Data"
	if err := s.client.do(ctx, http.MethodPost, path, req, &task); err != nil {
		return nil, fmt.Errorf("request data download: %w", err)
	}
	return &task, nil
}

var _ driven.BackgroundTasksService = (*backgroundTasksService)(nil)

// backgroundTasksService reads asynchronous job records.
type backgroundTasksService struct {
	client *Client
}

func (s *backgroundTasksService) Get(ctx context.Context, id string) (*domain.BackgroundTask, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: task id is required", domain.ErrInvalidInput)
	}

	var task domain.BackgroundTask
	if err := s.client.do(ctx, http.MethodGet, backgroundTasksPath+"/"+id, nil, &task); err != nil {
		return nil, fmt.Errorf("get background task: %w", err)
	}
	return &task, nil
}

func (s *backgroundTasksService) List(ctx context.Context) ([]domain.BackgroundTask, error) {
	tasks := []domain.BackgroundTask{}
	if err := s.client.do(ctx, http.MethodGet, backgroundTasksPath, nil, &tasks); err != nil {
		return nil, fmt.Errorf("list background tasks: %w", err)
	}
	return tasks, nil
}
