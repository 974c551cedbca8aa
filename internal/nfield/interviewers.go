package nfield

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fieldwork-labs/nfield-cli/internal/core/domain"
	"github.com/fieldwork-labs/nfield-cli/internal/core/ports/driven"
)

const interviewersPath = "v1/Interviewers"

var _ driven.InterviewersService = (*interviewersService)(nil)

// interviewersService is the typed handle for the interviewer endpoints.
type interviewersService struct {
	client *Client
}

func (s *interviewersService) Add(ctx context.Context, interviewer *domain.Interviewer) (*domain.Interviewer, error) {
	if err := interviewer.Validate(); err != nil {
		return nil, err
	}

	var created domain.Interviewer
	if err := s.client.do(ctx, http.MethodPost, interviewersPath, interviewer, &created); err != nil {
		return nil, fmt.Errorf("add interviewer: %w", err)
	}
	return &created, nil
}

func (s *interviewersService) Update(ctx context.Context, interviewer *domain.Interviewer) (*domain.Interviewer, error) {
	if interviewer.ID == "" {
		return nil, fmt.Errorf("%w: interviewer id is required", domain.ErrInvalidInput)
	}
	if err := interviewer.Validate(); err != nil {
		return nil, err
	}

	var updated domain.Interviewer
	path := interviewersPath + "/" + interviewer.ID
	if err := s.client.do(ctx, http.MethodPut, path, interviewer, &updated); err != nil {
		return nil, fmt.Errorf("update interviewer: %w", err)
	}
	return &updated, nil
}

func (s *interviewersService) Remove(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: interviewer id is required", domain.ErrInvalidInput)
	}

	if err := s.client.do(ctx, http.MethodDelete, interviewersPath+"/"+id, nil, nil); err != nil {
		return fmt.Errorf("remove interviewer: %w", err)
	}
	return nil
}

func (s *interviewersService) Get(ctx context.Context, id string) (*domain.Interviewer, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: interviewer id is required", domain.ErrInvalidInput)
	}

	var interviewer domain.Interviewer
	if err := s.client.do(ctx, http.MethodGet, interviewersPath+"/"+id, nil, &interviewer); err != nil {
		return nil, fmt.Errorf("get interviewer: %w", err)
	}
	return &interviewer, nil
}

func (s *interviewersService) List(ctx context.Context) ([]domain.Interviewer, error) {
	interviewers := []domain.Interviewer{}
	if err := s.client.do(ctx, http.MethodGet, interviewersPath, nil, &interviewers); err != nil {
		return nil, fmt.Errorf("list interviewers: %w", err)
	}
	return interviewers, nil
}

func (s *interviewersService) ChangePassword(ctx context.Context, id, password string) error {
	if id == "" {
		return fmt.Errorf("%w: interviewer id is required", domain.ErrInvalidInput)
	}
	if password == "" {
		return fmt.Errorf("%w: password is required", domain.ErrInvalidInput)
	}

	body := map[string]string{"Password": password}
	path := interviewersPath + "/" + id + "/Password"
	if err := s.client.do(ctx, http.MethodPut, path, body, nil); err != nil {
		return fmt.Errorf("change interviewer password: %w", err)
	}
	return nil
}
