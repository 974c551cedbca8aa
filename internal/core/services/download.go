package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fieldwork-labs/nfield-cli/internal/core/domain"
	"github.com/fieldwork-labs/nfield-cli/internal/core/ports/driven"
	"github.com/fieldwork-labs/nfield-cli/internal/logger"
)

// DownloadService requests data exports and keeps the local history in
// step with the platform's background task.
type DownloadService struct {
	surveyData driven.SurveyDataService
	store      driven.DownloadStore
	waiter     *TaskWaiter

	now func() time.Time // test seam
}

// NewDownloadService wires the download orchestration. store may be nil,
// in which case no history is kept.
func NewDownloadService(
	surveyData driven.SurveyDataService,
	store driven.DownloadStore,
	waiter *TaskWaiter,
) *DownloadService {
	return &DownloadService{
		surveyData: surveyData,
		store:      store,
		waiter:     waiter,
		now:        time.Now,
	}
}

// Request posts the download request and records it in the history.
// It returns the history record, whose TaskID identifies the export job.
func (s *DownloadService) Request(ctx context.Context, req *domain.DataDownloadRequest) (*domain.DownloadRecord, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	task, err := s.surveyData.RequestDownload(ctx, req)
	if err != nil {
		return nil, err
	}

	record := &domain.DownloadRecord{
		ID:          uuid.NewString(),
		TaskID:      task.ID,
		SurveyID:    req.SurveyID,
		FileName:    req.FileName,
		Status:      task.Status,
		RequestedAt: s.now().UTC(),
	}

	if s.store != nil {
		if err := s.store.Save(ctx, record); err != nil {
			// The export is already running server-side; a history miss
			// should not fail the operation.
			logger.Warn("saving download record: %v", err)
		}
	}

	return record, nil
}

// Await blocks until the record's task reaches a terminal status and
// updates the stored history row with the outcome.
func (s *DownloadService) Await(ctx context.Context, record *domain.DownloadRecord) (*domain.BackgroundTask, error) {
	if record == nil || record.TaskID == "" {
		return nil, fmt.Errorf("%w: download record has no task", domain.ErrInvalidInput)
	}

	task, waitErr := s.waiter.Await(ctx, record.TaskID)

	if task != nil {
		record.Status = task.Status
		if task.Status.Terminal() {
			completed := s.now().UTC()
			record.CompletedAt = &completed
		}
		if s.store != nil {
			if err := s.store.Save(ctx, record); err != nil {
				logger.Warn("updating download record: %v", err)
			}
		}
	}

	return task, waitErr
}

// History returns the stored download records, newest first.
func (s *DownloadService) History(ctx context.Context) ([]domain.DownloadRecord, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.List(ctx)
}

// PruneHistory removes records older than the retention window.
func (s *DownloadService) PruneHistory(ctx context.Context, retention time.Duration) (int, error) {
	if s.store == nil {
		return 0, nil
	}
	return s.store.Prune(ctx, s.now().Add(-retention))
}
