package driven

import (
	"context"
	"time"

	"github.com/fieldwork-labs/nfield-cli/internal/core/domain"
)

// DownloadStore persists the local history of requested data exports.
type DownloadStore interface {
	// Save creates or updates a record, keyed on its ID.
	Save(ctx context.Context, record *domain.DownloadRecord) error

	// Get retrieves a record by ID. Returns nil and no error if the
	// record does not exist.
	Get(ctx context.Context, id string) (*domain.DownloadRecord, error)

	// List returns all records, newest first.
	List(ctx context.Context) ([]domain.DownloadRecord, error)

	// Prune removes records requested before the cutoff. Returns the
	// number of records removed.
	Prune(ctx context.Context, cutoff time.Time) (int, error)
}
