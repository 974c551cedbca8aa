package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fieldwork-labs/nfield-cli/internal/core/domain"
)

var surveyCmd = &cobra.Command{
	Use:   "survey",
	Short: "Manage surveys",
	Long: `Add, list, update and remove surveys.

Examples:
  nfield survey add --name "Consumer panel" --type OnlineBasic --client "Acme Research"
  nfield survey list
  nfield survey update <id> --description "Wave 2"
  nfield survey remove <id>`,
}

var surveyAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new survey",
	RunE:  runSurveyAdd,
}

var surveyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List surveys",
	RunE:  runSurveyList,
}

var surveyUpdateCmd = &cobra.Command{
	Use:   "update [survey-id]",
	Short: "Update a survey",
	Args:  cobra.ExactArgs(1),
	RunE:  runSurveyUpdate,
}

var surveyRemoveCmd = &cobra.Command{
	Use:   "remove [survey-id]",
	Short: "Remove a survey",
	Args:  cobra.ExactArgs(1),
	RunE:  runSurveyRemove,
}

// Flags shared by survey add/update.
var (
	surveyName        string
	surveyType        string
	surveyClient      string
	surveyDescription string
	surveyInstruction string
)

func addSurveyFieldFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&surveyName, "name", "", "Survey name")
	cmd.Flags().StringVar(&surveyType, "type", string(domain.SurveyTypeOnlineBasic),
		"Survey type (OnlineBasic, OnlineAdvanced, Euro)")
	cmd.Flags().StringVar(&surveyClient, "client", "", "Client name")
	cmd.Flags().StringVar(&surveyDescription, "description", "", "Description")
	cmd.Flags().StringVar(&surveyInstruction, "instruction", "", "Interviewer instruction")
}

func init() {
	addSurveyFieldFlags(surveyAddCmd)
	addSurveyFieldFlags(surveyUpdateCmd)

	surveyCmd.AddCommand(surveyAddCmd)
	surveyCmd.AddCommand(surveyListCmd)
	surveyCmd.AddCommand(surveyUpdateCmd)
	surveyCmd.AddCommand(surveyRemoveCmd)
	rootCmd.AddCommand(surveyCmd)
}

func runSurveyAdd(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	parsedType, err := domain.ParseSurveyType(surveyType)
	if err != nil {
		return err
	}

	created, err := svc.Surveys.Add(context.Background(), &domain.Survey{
		Type:                   parsedType,
		Name:                   surveyName,
		ClientName:             surveyClient,
		Description:            surveyDescription,
		InterviewerInstruction: surveyInstruction,
	})
	if err != nil {
		return fmt.Errorf("add survey: %w", err)
	}

	cmd.Printf("Created survey %q (%s)\n", created.Name, created.ID)
	return nil
}

func runSurveyList(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	surveys, err := svc.Surveys.List(context.Background())
	if err != nil {
		return fmt.Errorf("list surveys: %w", err)
	}

	if len(surveys) == 0 {
		cmd.Println("No surveys found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tNAME\tCLIENT")
	for i := range surveys {
		s := &surveys[i]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ID, s.Type, s.Name, s.ClientName)
	}
	return w.Flush()
}

func runSurveyUpdate(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	ctx := context.Background()
	current, err := svc.Surveys.Get(ctx, args[0])
	if err != nil {
		return fmt.Errorf("get survey: %w", err)
	}

	if cmd.Flags().Changed("name") {
		current.Name = surveyName
	}
	if cmd.Flags().Changed("type") {
		parsedType, err := domain.ParseSurveyType(surveyType)
		if err != nil {
			return err
		}
		current.Type = parsedType
	}
	if cmd.Flags().Changed("client") {
		current.ClientName = surveyClient
	}
	if cmd.Flags().Changed("description") {
		current.Description = surveyDescription
	}
	if cmd.Flags().Changed("instruction") {
		current.InterviewerInstruction = surveyInstruction
	}

	updated, err := svc.Surveys.Update(ctx, current)
	if err != nil {
		return fmt.Errorf("update survey: %w", err)
	}

	cmd.Printf("Updated survey %q (%s)\n", updated.Name, updated.ID)
	return nil
}

func runSurveyRemove(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	if err := svc.Surveys.Remove(context.Background(), args[0]); err != nil {
		return fmt.Errorf("remove survey: %w", err)
	}

	cmd.Printf("Removed survey %s\n", args[0])
	return nil
}
