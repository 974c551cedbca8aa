package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldwork-labs/nfield-cli/internal/core/domain"
	"github.com/fieldwork-labs/nfield-cli/internal/core/services"
)

// --- Mock platform services for CLI testing ---

type mockInterviewers struct {
	interviewers []domain.Interviewer
	removed      []string
}

func (m *mockInterviewers) Add(_ context.Context, i *domain.Interviewer) (*domain.Interviewer, error) {
	created := *i
	created.ID = "int-new"
	return &created, nil
}

func (m *mockInterviewers) Update(_ context.Context, i *domain.Interviewer) (*domain.Interviewer, error) {
	return i, nil
}

func (m *mockInterviewers) Remove(_ context.Context, id string) error {
	m.removed = append(m.removed, id)
	return nil
}

func (m *mockInterviewers) Get(_ context.Context, id string) (*domain.Interviewer, error) {
	for i := range m.interviewers {
		if m.interviewers[i].ID == id {
			return &m.interviewers[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockInterviewers) List(_ context.Context) ([]domain.Interviewer, error) {
	return m.interviewers, nil
}

func (m *mockInterviewers) ChangePassword(_ context.Context, _, _ string) error {
	return nil
}

type mockSurveys struct {
	surveys []domain.Survey
}

func (m *mockSurveys) Add(_ context.Context, s *domain.Survey) (*domain.Survey, error) {
	created := *s
	created.ID = "survey-new"
	return &created, nil
}

func (m *mockSurveys) Update(_ context.Context, s *domain.Survey) (*domain.Survey, error) {
	return s, nil
}

func (m *mockSurveys) Remove(_ context.Context, _ string) error { return nil }

func (m *mockSurveys) Get(_ context.Context, id string) (*domain.Survey, error) {
	for i := range m.surveys {
		if m.surveys[i].ID == id {
			return &m.surveys[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockSurveys) List(_ context.Context) ([]domain.Survey, error) {
	return m.surveys, nil
}

type mockSamplingPoints struct{ points []domain.SamplingPoint }

func (m *mockSamplingPoints) List(_ context.Context, _ string) ([]domain.SamplingPoint, error) {
	return m.points, nil
}

type mockScript struct{ script domain.SurveyScript }

func (m *mockScript) Get(_ context.Context, _ string) (*domain.SurveyScript, error) {
	return &m.script, nil
}

type mockTasks struct{ tasks []domain.BackgroundTask }

func (m *mockTasks) Get(_ context.Context, id string) (*domain.BackgroundTask, error) {
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			return &m.tasks[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockTasks) List(_ context.Context) ([]domain.BackgroundTask, error) {
	return m.tasks, nil
}

type mockSurveyData struct{ task *domain.BackgroundTask }

func (m *mockSurveyData) RequestDownload(_ context.Context, _ *domain.DataDownloadRequest) (*domain.BackgroundTask, error) {
	return m.task, nil
}

// setupCLITest installs mock services and returns a cleanup func.
func setupCLITest(svc *Services) func() {
	old := platform
	platform = svc
	return func() { platform = old }
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestConnect_UsesServerFlag(t *testing.T) {
	cleanup := setupCLITest(nil)
	defer cleanup()

	oldConnect := connect
	defer func() {
		connect = oldConnect
		serverFlag = ""
	}()

	var gotServer string
	SetConnect(func(serverURL string) (*Services, error) {
		gotServer = serverURL
		return &Services{Surveys: &mockSurveys{}}, nil
	})

	out, err := execute(t, "--server", "https://other.example.com", "survey", "list")

	assert.NoError(t, err)
	assert.Equal(t, "https://other.example.com", gotServer)
	assert.Contains(t, out, "No surveys found.")
}

func TestVersionCmd(t *testing.T) {
	originalVersion := version
	version = "test-version-1.0.0"
	defer func() { version = originalVersion }()

	out, err := execute(t, "version")

	assert.NoError(t, err)
	assert.Contains(t, out, "nfield version test-version-1.0.0")
}

func TestCommands_RequireSignIn(t *testing.T) {
	cleanup := setupCLITest(nil)
	defer cleanup()

	_, err := execute(t, "survey", "list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "nfield signin")
}

func TestSurveyList(t *testing.T) {
	cleanup := setupCLITest(&Services{Surveys: &mockSurveys{surveys: []domain.Survey{
		{ID: "s-1", Type: domain.SurveyTypeOnlineBasic, Name: "Wave 1", ClientName: "Acme"},
	}}})
	defer cleanup()

	out, err := execute(t, "survey", "list")

	assert.NoError(t, err)
	assert.Contains(t, out, "Wave 1")
	assert.Contains(t, out, "Acme")
}

func TestSurveyList_Empty(t *testing.T) {
	cleanup := setupCLITest(&Services{Surveys: &mockSurveys{}})
	defer cleanup()

	out, err := execute(t, "survey", "list")

	assert.NoError(t, err)
	assert.Contains(t, out, "No surveys found.")
}

func TestSurveyAdd(t *testing.T) {
	cleanup := setupCLITest(&Services{Surveys: &mockSurveys{}})
	defer cleanup()

	out, err := execute(t, "survey", "add",
		"--name", "Consumer panel", "--type", "OnlineBasic", "--client", "Acme")

	assert.NoError(t, err)
	assert.Contains(t, out, `Created survey "Consumer panel" (survey-new)`)
}

func TestSurveyAdd_RejectsBadType(t *testing.T) {
	cleanup := setupCLITest(&Services{Surveys: &mockSurveys{}})
	defer cleanup()

	_, err := execute(t, "survey", "add", "--name", "X", "--type", "Telephone")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInterviewerList(t *testing.T) {
	cleanup := setupCLITest(&Services{Interviewers: &mockInterviewers{
		interviewers: []domain.Interviewer{
			{ID: "int-1", UserName: "jdoe", FirstName: "Jane", LastName: "Doe", EmailAddress: "jdoe@example.com"},
		},
	}})
	defer cleanup()

	out, err := execute(t, "interviewer", "list")

	assert.NoError(t, err)
	assert.Contains(t, out, "jdoe")
	assert.Contains(t, out, "Jane Doe")
}

func TestInterviewerRemove(t *testing.T) {
	mock := &mockInterviewers{}
	cleanup := setupCLITest(&Services{Interviewers: mock})
	defer cleanup()

	out, err := execute(t, "interviewer", "remove", "int-9")

	assert.NoError(t, err)
	assert.Contains(t, out, "Removed interviewer int-9")
	assert.Equal(t, []string{"int-9"}, mock.removed)
}

func TestSamplingPointList(t *testing.T) {
	cleanup := setupCLITest(&Services{SamplingPoints: &mockSamplingPoints{
		points: []domain.SamplingPoint{{ID: "sp-1", Name: "Amsterdam North"}},
	}})
	defer cleanup()

	out, err := execute(t, "samplingpoint", "list", "--survey", "s-1")

	assert.NoError(t, err)
	assert.Contains(t, out, "Amsterdam North")
}

func TestScriptGet(t *testing.T) {
	cleanup := setupCLITest(&Services{SurveyScript: &mockScript{
		script: domain.SurveyScript{FileName: "q.odin", Script: "*QUESTION 1"},
	}})
	defer cleanup()

	out, err := execute(t, "script", "get", "--survey", "s-1")

	assert.NoError(t, err)
	assert.Contains(t, out, "*QUESTION 1")
}

func TestTasksList(t *testing.T) {
	cleanup := setupCLITest(&Services{Tasks: &mockTasks{tasks: []domain.BackgroundTask{
		{ID: "task-1", Type: "DataDownload", Status: domain.TaskStatusRunning, CreatedAt: time.Now()},
	}}})
	defer cleanup()

	out, err := execute(t, "tasks", "list")

	assert.NoError(t, err)
	assert.Contains(t, out, "task-1")
	assert.Contains(t, out, "Running")
}

func TestDownloadRequest(t *testing.T) {
	surveyData := &mockSurveyData{
		task: &domain.BackgroundTask{ID: "task-7", Status: domain.TaskStatusPending},
	}
	downloads := services.NewDownloadService(surveyData, nil, nil)
	cleanup := setupCLITest(&Services{Downloads: downloads})
	defer cleanup()

	out, err := execute(t, "download", "request",
		"--survey", "s-1", "--file", "export.zip", "--closed-answers")

	assert.NoError(t, err)
	assert.Contains(t, out, "background task task-7")
	assert.Contains(t, out, "nfield tasks watch task-7")
}

func TestDownloadRequest_BadDate(t *testing.T) {
	downloads := services.NewDownloadService(&mockSurveyData{}, nil, nil)
	cleanup := setupCLITest(&Services{Downloads: downloads})
	defer cleanup()

	_, err := execute(t, "download", "request",
		"--survey", "s-1", "--file", "export.zip", "--from", "01-01-2024")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse --from")
}
