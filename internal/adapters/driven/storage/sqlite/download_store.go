package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fieldwork-labs/nfield-cli/internal/core/domain"
	"github.com/fieldwork-labs/nfield-cli/internal/core/ports/driven"
)

// timeLayout pads fractional seconds to fixed width so the stored
// strings sort chronologically under SQLite's text comparison.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// downloadStore implements driven.DownloadStore.
type downloadStore struct {
	store *Store
}

var _ driven.DownloadStore = (*downloadStore)(nil)

// Save creates or updates a download record.
func (s *downloadStore) Save(ctx context.Context, record *domain.DownloadRecord) error {
	if record == nil || record.ID == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO downloads (id, task_id, survey_id, file_name, status, requested_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			task_id = excluded.task_id,
			survey_id = excluded.survey_id,
			file_name = excluded.file_name,
			status = excluded.status,
			requested_at = excluded.requested_at,
			completed_at = excluded.completed_at
	`, record.ID, record.TaskID, record.SurveyID, record.FileName, string(record.Status),
		record.RequestedAt.UTC().Format(timeLayout),
		formatNullableTime(record.CompletedAt))

	if err != nil {
		return fmt.Errorf("saving download record: %w", err)
	}
	return nil
}

// Get retrieves a record by ID. Returns nil and no error if absent.
func (s *downloadStore) Get(ctx context.Context, id string) (*domain.DownloadRecord, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, task_id, survey_id, file_name, status, requested_at, completed_at
		FROM downloads WHERE id = ?
	`, id)

	record, err := scanDownloadRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// List returns all records, newest first.
func (s *downloadStore) List(ctx context.Context) ([]domain.DownloadRecord, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, task_id, survey_id, file_name, status, requested_at, completed_at
		FROM downloads ORDER BY requested_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying download records: %w", err)
	}
	defer rows.Close()

	var records []domain.DownloadRecord
	for rows.Next() {
		record, err := scanDownloadRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating download records: %w", err)
	}

	return records, nil
}

// Prune removes records requested before the cutoff.
func (s *downloadStore) Prune(ctx context.Context, cutoff time.Time) (int, error) {
	res, err := s.store.db.ExecContext(ctx,
		"DELETE FROM downloads WHERE requested_at < ?",
		cutoff.UTC().Format(timeLayout))
	if err != nil {
		return 0, fmt.Errorf("pruning download records: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting pruned records: %w", err)
	}
	return int(n), nil
}

// scanner abstracts *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanDownloadRecord(row scanner) (*domain.DownloadRecord, error) {
	var (
		record      domain.DownloadRecord
		status      string
		requestedAt string
		completedAt sql.NullString
	)

	err := row.Scan(&record.ID, &record.TaskID, &record.SurveyID,
		&record.FileName, &status, &requestedAt, &completedAt)
	if err != nil {
		return nil, err
	}

	record.Status = domain.TaskStatus(status)

	record.RequestedAt, err = time.Parse(timeLayout, requestedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing requested_at: %w", err)
	}

	if completedAt.Valid && completedAt.String != "" {
		t, err := time.Parse(timeLayout, completedAt.String)
		if err != nil {
			return nil, fmt.Errorf("parsing completed_at: %w", err)
		}
		record.CompletedAt = &t
	}

	return &record, nil
}

func formatNullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(timeLayout)
}
