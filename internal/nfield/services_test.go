package nfield

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldwork-labs/nfield-cli/internal/core/domain"
)

func TestInterviewersService(t *testing.T) {
	ctx := context.Background()

	t.Run("add posts the record and returns the created one", func(t *testing.T) {
		f, server := newFakePlatform(t)
		f.handle("POST /v1/Interviewers", func(w http.ResponseWriter, r *http.Request) {
			var in domain.Interviewer
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			assert.Equal(t, "jdoe", in.UserName)

			in.ID = "int-1"
			writeJSON(t, w, in)
		})
		client := newTestClient(t, server.URL)

		created, err := client.Interviewers().Add(ctx, &domain.Interviewer{
			UserName:     "jdoe",
			FirstName:    "Jane",
			LastName:     "Doe",
			EmailAddress: "jdoe@example.com",
		})

		require.NoError(t, err)
		assert.Equal(t, "int-1", created.ID)
		assert.Equal(t, "Jane Doe", created.DisplayName())
	})

	t.Run("add rejects invalid records locally", func(t *testing.T) {
		_, server := newFakePlatform(t)
		client := newTestClient(t, server.URL)

		_, err := client.Interviewers().Add(ctx, &domain.Interviewer{UserName: "jdoe"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("update puts to the record path", func(t *testing.T) {
		f, server := newFakePlatform(t)
		f.handle("PUT /v1/Interviewers/{id}", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "int-1", r.PathValue("id"))
			var in domain.Interviewer
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			writeJSON(t, w, in)
		})
		client := newTestClient(t, server.URL)

		updated, err := client.Interviewers().Update(ctx, &domain.Interviewer{
			ID: "int-1", UserName: "jdoe", EmailAddress: "new@example.com",
		})

		require.NoError(t, err)
		assert.Equal(t, "new@example.com", updated.EmailAddress)
	})

	t.Run("update without id fails locally", func(t *testing.T) {
		_, server := newFakePlatform(t)
		client := newTestClient(t, server.URL)

		_, err := client.Interviewers().Update(ctx, &domain.Interviewer{
			UserName: "jdoe", EmailAddress: "jdoe@example.com",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("remove deletes and maps 404", func(t *testing.T) {
		f, server := newFakePlatform(t)
		f.handle("DELETE /v1/Interviewers/{id}", func(w http.ResponseWriter, r *http.Request) {
			if r.PathValue("id") != "int-1" {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})
		client := newTestClient(t, server.URL)

		require.NoError(t, client.Interviewers().Remove(ctx, "int-1"))
		assert.ErrorIs(t, client.Interviewers().Remove(ctx, "gone"), domain.ErrNotFound)
	})

	t.Run("list decodes an empty array", func(t *testing.T) {
		f, server := newFakePlatform(t)
		f.handle("GET /v1/Interviewers", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, []domain.Interviewer{})
		})
		client := newTestClient(t, server.URL)

		interviewers, err := client.Interviewers().List(ctx)

		require.NoError(t, err)
		assert.NotNil(t, interviewers)
		assert.Empty(t, interviewers)
	})

	t.Run("change password puts the new secret", func(t *testing.T) {
		f, server := newFakePlatform(t)
		var got map[string]string
		f.handle("PUT /v1/Interviewers/{id}/Password", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "int-1", r.PathValue("id"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusOK)
		})
		client := newTestClient(t, server.URL)

		require.NoError(t, client.Interviewers().ChangePassword(ctx, "int-1", "s3cret"))
		assert.Equal(t, "s3cret", got["Password"])
	})

	t.Run("change password requires id and password", func(t *testing.T) {
		_, server := newFakePlatform(t)
		client := newTestClient(t, server.URL)

		assert.ErrorIs(t, client.Interviewers().ChangePassword(ctx, "", "x"), domain.ErrInvalidInput)
		assert.ErrorIs(t, client.Interviewers().ChangePassword(ctx, "int-1", ""), domain.ErrInvalidInput)
	})
}

func TestSurveysService(t *testing.T) {
	ctx := context.Background()

	t.Run("add round-trips the wire field names", func(t *testing.T) {
		f, server := newFakePlatform(t)
		f.handle("POST /v1/Surveys", func(w http.ResponseWriter, r *http.Request) {
			var raw map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
			assert.Equal(t, "Consumer panel", raw["SurveyName"])
			assert.Equal(t, "OnlineBasic", raw["SurveyType"])
			assert.Equal(t, "Acme Research", raw["ClientName"])

			writeJSON(t, w, domain.Survey{
				ID:         "7f9b2a14-3d1c-4e83-9a6f-55cc10b9d102",
				Type:       domain.SurveyTypeOnlineBasic,
				Name:       "Consumer panel",
				ClientName: "Acme Research",
			})
		})
		client := newTestClient(t, server.URL)

		created, err := client.Surveys().Add(ctx, &domain.Survey{
			Type:       domain.SurveyTypeOnlineBasic,
			Name:       "Consumer panel",
			ClientName: "Acme Research",
		})

		require.NoError(t, err)
		assert.Equal(t, "7f9b2a14-3d1c-4e83-9a6f-55cc10b9d102", created.ID)
	})

	t.Run("update patches the survey path", func(t *testing.T) {
		f, server := newFakePlatform(t)
		f.handle("PATCH /v1/Surveys/{id}", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "s-1", r.PathValue("id"))
			var in domain.Survey
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			writeJSON(t, w, in)
		})
		client := newTestClient(t, server.URL)

		updated, err := client.Surveys().Update(ctx, &domain.Survey{
			ID: "s-1", Type: domain.SurveyTypeOnlineAdvanced, Name: "Renamed",
		})

		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Name)
	})

	t.Run("remove maps 404 to not found", func(t *testing.T) {
		f, server := newFakePlatform(t)
		f.handle("DELETE /v1/Surveys/{id}", func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "no such survey", http.StatusNotFound)
		})
		client := newTestClient(t, server.URL)

		assert.ErrorIs(t, client.Surveys().Remove(ctx, "gone"), domain.ErrNotFound)
	})

	t.Run("list returns surveys", func(t *testing.T) {
		f, server := newFakePlatform(t)
		f.handle("GET /v1/Surveys", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, []domain.Survey{
				{ID: "s-1", Name: "Wave 1", Type: domain.SurveyTypeOnlineBasic},
				{ID: "s-2", Name: "Wave 2", Type: domain.SurveyTypeEuro},
			})
		})
		client := newTestClient(t, server.URL)

		surveys, err := client.Surveys().List(ctx)

		require.NoError(t, err)
		require.Len(t, surveys, 2)
		assert.Equal(t, "Wave 2", surveys[1].Name)
	})
}

func TestSamplingPointsService(t *testing.T) {
	t.Run("lists the survey's sampling points", func(t *testing.T) {
		f, server := newFakePlatform(t)
		f.handle("GET /v1/Surveys/{id}/SamplingPoints", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "s-1", r.PathValue("id"))
			writeJSON(t, w, []domain.SamplingPoint{
				{ID: "sp-1", Name: "Amsterdam North", FieldworkOfficeID: "office-1"},
			})
		})
		client := newTestClient(t, server.URL)

		points, err := client.SamplingPoints().List(context.Background(), "s-1")

		require.NoError(t, err)
		require.Len(t, points, 1)
		assert.Equal(t, "Amsterdam North", points[0].Name)
	})

	t.Run("requires a survey id", func(t *testing.T) {
		_, server := newFakePlatform(t)
		client := newTestClient(t, server.URL)

		_, err := client.SamplingPoints().List(context.Background(), "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestSurveyScriptService(t *testing.T) {
	t.Run("fetches the questionnaire script", func(t *testing.T) {
		f, server := newFakePlatform(t)
		f.handle("GET /v1/Surveys/{id}/Script", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, domain.SurveyScript{
				FileName: "questionnaire.odin",
				Script:   "*QUESTION 1\nHow satisfied are you?",
			})
		})
		client := newTestClient(t, server.URL)

		script, err := client.SurveyScript().Get(context.Background(), "s-1")

		require.NoError(t, err)
		assert.Equal(t, "questionnaire.odin", script.FileName)
		assert.Contains(t, script.Script, "*QUESTION 1")
	})
}

func TestSurveyDataService(t *testing.T) {
	ctx := context.Background()

	t.Run("posts the download request and returns the task", func(t *testing.T) {
		f, server := newFakePlatform(t)
		var raw map[string]any
		f.handle("POST /v1/Surveys/{id}/Data", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "s-1", r.PathValue("id"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
			writeJSON(t, w, domain.BackgroundTask{
				ID: "task-1", Type: "DataDownload", Status: domain.TaskStatusPending,
			})
		})
		client := newTestClient(t, server.URL)

		zone := time.FixedZone("CET", 3600)
		task, err := client.SurveyData().RequestDownload(ctx, &domain.DataDownloadRequest{
			SurveyID:                    "s-1",
			FileName:                    "export.zip",
			StartDate:                   time.Date(2024, 1, 1, 1, 0, 0, 0, zone),
			EndDate:                     time.Date(2024, 2, 1, 1, 0, 0, 0, zone),
			SuccessfulLiveInterviewData: true,
			ClosedAnswerData:            true,
		})

		require.NoError(t, err)
		assert.Equal(t, "task-1", task.ID)
		assert.Equal(t, domain.TaskStatusPending, task.Status)

		// Wire shape: platform field names, RFC 3339 UTC dates, flags present.
		assert.Equal(t, "export.zip", raw["DownloadFileName"])
		assert.Equal(t, "2024-01-01T00:00:00Z", raw["StartDate"])
		assert.Equal(t, "2024-02-01T00:00:00Z", raw["EndDate"])
		assert.Equal(t, true, raw["DownloadSuccessfulLiveInterviewData"])
		assert.Equal(t, false, raw["DownloadParaData"])
	})

	t.Run("rejects invalid requests locally", func(t *testing.T) {
		_, server := newFakePlatform(t)
		client := newTestClient(t, server.URL)

		_, err := client.SurveyData().RequestDownload(ctx, &domain.DataDownloadRequest{
			SurveyID: "s-1",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestBackgroundTasksService(t *testing.T) {
	ctx := context.Background()

	t.Run("get fetches a single task", func(t *testing.T) {
		f, server := newFakePlatform(t)
		f.handle("GET /v1/BackgroundTasks/{id}", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, domain.BackgroundTask{
				ID: r.PathValue("id"), Status: domain.TaskStatusRunning,
			})
		})
		client := newTestClient(t, server.URL)

		task, err := client.BackgroundTasks().Get(ctx, "task-1")

		require.NoError(t, err)
		assert.Equal(t, "task-1", task.ID)
		assert.False(t, task.Status.Terminal())
	})

	t.Run("list returns all tasks", func(t *testing.T) {
		f, server := newFakePlatform(t)
		f.handle("GET /v1/BackgroundTasks", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, []domain.BackgroundTask{
				{ID: "task-1", Status: domain.TaskStatusCompleted},
				{ID: "task-2", Status: domain.TaskStatusRunning},
			})
		})
		client := newTestClient(t, server.URL)

		tasks, err := client.BackgroundTasks().List(ctx)

		require.NoError(t, err)
		require.Len(t, tasks, 2)
		assert.True(t, tasks[0].Status.Succeeded())
	})

	t.Run("get requires a task id", func(t *testing.T) {
		_, server := newFakePlatform(t)
		client := newTestClient(t, server.URL)

		_, err := client.BackgroundTasks().Get(ctx, "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
