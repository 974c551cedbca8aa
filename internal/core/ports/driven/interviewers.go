package driven

import (
	"context"

	"github.com/fieldwork-labs/nfield-cli/internal/core/domain"
)

// InterviewersService manages interviewer records on the platform.
type InterviewersService interface {
	// Add creates a new interviewer and returns the created record with
	// the platform-assigned ID filled in.
	Add(ctx context.Context, interviewer *domain.Interviewer) (*domain.Interviewer, error)

	// Update replaces the mutable fields of an existing interviewer.
	Update(ctx context.Context, interviewer *domain.Interviewer) (*domain.Interviewer, error)

	// Remove deletes the interviewer. Returns domain.ErrNotFound if the
	// record does not exist.
	Remove(ctx context.Context, id string) error

	// Get fetches a single interviewer by ID.
	Get(ctx context.Context, id string) (*domain.Interviewer, error)

	// List returns all interviewers in the connection's domain.
	List(ctx context.Context) ([]domain.Interviewer, error)

	// ChangePassword sets a new sign-in password for the interviewer.
	ChangePassword(ctx context.Context, id, password string) error
}
