package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDataDownloadRequest_Validate(t *testing.T) {
	base := DataDownloadRequest{
		SurveyID:  "6b0cfe4a-09a2-42f3-b1f6-a3bd8e9f3f6e",
		FileName:  "export.zip",
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("valid request passes", func(t *testing.T) {
		r := base
		assert.NoError(t, r.Validate())
	})

	t.Run("missing survey id fails", func(t *testing.T) {
		r := base
		r.SurveyID = ""
		assert.ErrorIs(t, r.Validate(), ErrInvalidInput)
	})

	t.Run("missing file name fails", func(t *testing.T) {
		r := base
		r.FileName = " "
		assert.ErrorIs(t, r.Validate(), ErrInvalidInput)
	})

	t.Run("inverted date range fails", func(t *testing.T) {
		r := base
		r.StartDate, r.EndDate = r.EndDate, r.StartDate
		assert.ErrorIs(t, r.Validate(), ErrInvalidInput)
	})

	t.Run("zero dates are allowed", func(t *testing.T) {
		r := base
		r.StartDate = time.Time{}
		r.EndDate = time.Time{}
		assert.NoError(t, r.Validate())
	})
}

func TestDataDownloadRequest_NormaliseDates(t *testing.T) {
	t.Run("converts bounds to UTC", func(t *testing.T) {
		zone := time.FixedZone("CET", 3600)
		r := DataDownloadRequest{
			StartDate: time.Date(2024, 1, 1, 1, 0, 0, 0, zone),
			EndDate:   time.Date(2024, 2, 1, 1, 0, 0, 0, zone),
		}

		r.NormaliseDates()

		assert.Equal(t, time.UTC, r.StartDate.Location())
		assert.Equal(t, time.UTC, r.EndDate.Location())
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), r.StartDate)
	})

	t.Run("leaves zero dates alone", func(t *testing.T) {
		var r DataDownloadRequest
		r.NormaliseDates()
		assert.True(t, r.StartDate.IsZero())
		assert.True(t, r.EndDate.IsZero())
	})
}

func TestTaskStatus(t *testing.T) {
	t.Run("terminal statuses", func(t *testing.T) {
		assert.True(t, TaskStatusCompleted.Terminal())
		assert.True(t, TaskStatusFaulted.Terminal())
		assert.False(t, TaskStatusPending.Terminal())
		assert.False(t, TaskStatusRunning.Terminal())
	})

	t.Run("only completed counts as success", func(t *testing.T) {
		assert.True(t, TaskStatusCompleted.Succeeded())
		assert.False(t, TaskStatusFaulted.Succeeded())
		assert.False(t, TaskStatusRunning.Succeeded())
	})
}
