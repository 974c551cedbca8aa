package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fieldwork-labs/nfield-cli/internal/core/domain"
	"github.com/fieldwork-labs/nfield-cli/internal/core/ports/driven"
)

const watchPollTimeout = 15 * time.Second

var (
	watchTitleStyle   = lipgloss.NewStyle().Bold(true)
	watchRunningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // yellow
	watchDoneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // green
	watchFaultStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // red
	watchHelpStyle    = lipgloss.NewStyle().Faint(true)
)

// Messages for the watch loop.
type (
	watchTaskMsg struct{ task *domain.BackgroundTask }
	watchErrMsg  struct{ err error }
	watchTickMsg struct{}
)

// watchModel is the bubbletea model behind `nfield tasks watch`.
// It polls one background task and renders its status until the task
// reaches a terminal state or the user quits.
type watchModel struct {
	tasks        driven.BackgroundTasksService
	taskID       string
	pollInterval time.Duration

	spinner spinner.Model
	task    *domain.BackgroundTask
	err     error
}

func newWatchModel(tasks driven.BackgroundTasksService, taskID string, pollInterval time.Duration) watchModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = watchRunningStyle

	return watchModel{
		tasks:        tasks,
		taskID:       taskID,
		pollInterval: pollInterval,
		spinner:      sp,
	}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.poll())
}

// poll fetches the task once.
func (m watchModel) poll() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), watchPollTimeout)
		defer cancel()

		task, err := m.tasks.Get(ctx, m.taskID)
		if err != nil {
			return watchErrMsg{err: err}
		}
		return watchTaskMsg{task: task}
	}
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil

	case watchTaskMsg:
		m.task = msg.task
		if m.task.Status.Terminal() {
			return m, tea.Quit
		}
		return m, tea.Tick(m.pollInterval, func(time.Time) tea.Msg {
			return watchTickMsg{}
		})

	case watchTickMsg:
		return m, m.poll()

	case watchErrMsg:
		m.err = msg.err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m watchModel) View() string {
	if m.err != nil {
		return watchFaultStyle.Render("error: "+m.err.Error()) + "\n"
	}

	title := watchTitleStyle.Render("Task " + m.taskID)

	if m.task == nil {
		return title + "\n" + m.spinner.View() + " fetching status...\n"
	}

	var status string
	switch {
	case m.task.Status.Succeeded():
		status = watchDoneStyle.Render(string(m.task.Status))
	case m.task.Status == domain.TaskStatusFaulted:
		status = watchFaultStyle.Render(string(m.task.Status))
	default:
		status = m.spinner.View() + " " + watchRunningStyle.Render(string(m.task.Status))
	}

	view := title + "\n" + status + "\n"
	if !m.task.Status.Terminal() {
		view += watchHelpStyle.Render("q to stop watching") + "\n"
	}
	return view
}
