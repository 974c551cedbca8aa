package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Inspect background tasks",
	Long: `List the platform's background tasks or watch one until it finishes.

Examples:
  nfield tasks list
  nfield tasks watch <task-id>`,
}

var tasksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List background tasks",
	RunE:  runTasksList,
}

var tasksWatchCmd = &cobra.Command{
	Use:   "watch [task-id]",
	Short: "Watch a background task until it reaches a final state",
	Args:  cobra.ExactArgs(1),
	RunE:  runTasksWatch,
}

func init() {
	tasksCmd.AddCommand(tasksListCmd)
	tasksCmd.AddCommand(tasksWatchCmd)
	rootCmd.AddCommand(tasksCmd)
}

func runTasksList(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	tasks, err := svc.Tasks.List(context.Background())
	if err != nil {
		return fmt.Errorf("list tasks: %w", err)
	}

	if len(tasks) == 0 {
		cmd.Println("No background tasks found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tSTATUS\tCREATED")
	for i := range tasks {
		t := &tasks[i]
		created := ""
		if !t.CreatedAt.IsZero() {
			created = t.CreatedAt.Local().Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Type, t.Status, created)
	}
	return w.Flush()
}

func runTasksWatch(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	model := newWatchModel(svc.Tasks, args[0], pollInterval())

	p := tea.NewProgram(model)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("watch task: %w", err)
	}

	m, ok := final.(watchModel)
	if !ok {
		return nil
	}
	if m.err != nil {
		return m.err
	}
	if m.task != nil && m.task.Status.Terminal() {
		cmd.Printf("Task %s finished: %s\n", m.task.ID, m.task.Status)
		if m.task.ResultURL != "" {
			cmd.Printf("Result: %s\n", m.task.ResultURL)
		}
	}
	return nil
}
