package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fieldwork-labs/nfield-cli/internal/core/domain"
)

var interviewerCmd = &cobra.Command{
	Use:   "interviewer",
	Short: "Manage interviewers",
	Long: `Add, list, update and remove interviewers, and change their passwords.

Examples:
  nfield interviewer add --username jdoe --email jdoe@example.com --first-name Jane --last-name Doe
  nfield interviewer list
  nfield interviewer update <id> --email new@example.com
  nfield interviewer password <id>
  nfield interviewer remove <id>`,
}

var interviewerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new interviewer",
	RunE:  runInterviewerAdd,
}

var interviewerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List interviewers",
	RunE:  runInterviewerList,
}

var interviewerUpdateCmd = &cobra.Command{
	Use:   "update [interviewer-id]",
	Short: "Update an interviewer",
	Args:  cobra.ExactArgs(1),
	RunE:  runInterviewerUpdate,
}

var interviewerRemoveCmd = &cobra.Command{
	Use:   "remove [interviewer-id]",
	Short: "Remove an interviewer",
	Args:  cobra.ExactArgs(1),
	RunE:  runInterviewerRemove,
}

var interviewerPasswordCmd = &cobra.Command{
	Use:   "password [interviewer-id]",
	Short: "Change an interviewer's password",
	Args:  cobra.ExactArgs(1),
	RunE:  runInterviewerPassword,
}

// Flags shared by interviewer add/update.
var (
	interviewerUserName  string
	interviewerFirstName string
	interviewerLastName  string
	interviewerEmail     string
	interviewerPhone     string
	interviewerClientID  string
)

func addInterviewerFieldFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&interviewerUserName, "username", "", "Sign-in user name")
	cmd.Flags().StringVar(&interviewerFirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&interviewerLastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&interviewerEmail, "email", "", "Email address")
	cmd.Flags().StringVar(&interviewerPhone, "phone", "", "Telephone number")
	cmd.Flags().StringVar(&interviewerClientID, "client-id", "", "Client-side interviewer identifier")
}

func init() {
	addInterviewerFieldFlags(interviewerAddCmd)
	addInterviewerFieldFlags(interviewerUpdateCmd)

	interviewerCmd.AddCommand(interviewerAddCmd)
	interviewerCmd.AddCommand(interviewerListCmd)
	interviewerCmd.AddCommand(interviewerUpdateCmd)
	interviewerCmd.AddCommand(interviewerRemoveCmd)
	interviewerCmd.AddCommand(interviewerPasswordCmd)
	rootCmd.AddCommand(interviewerCmd)
}

func runInterviewerAdd(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	created, err := svc.Interviewers.Add(context.Background(), &domain.Interviewer{
		ClientInterviewerID: interviewerClientID,
		UserName:            interviewerUserName,
		FirstName:           interviewerFirstName,
		LastName:            interviewerLastName,
		EmailAddress:        interviewerEmail,
		TelephoneNumber:     interviewerPhone,
	})
	if err != nil {
		return fmt.Errorf("add interviewer: %w", err)
	}

	cmd.Printf("Created interviewer %s (%s)\n", created.DisplayName(), created.ID)
	return nil
}

func runInterviewerList(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	interviewers, err := svc.Interviewers.List(context.Background())
	if err != nil {
		return fmt.Errorf("list interviewers: %w", err)
	}

	if len(interviewers) == 0 {
		cmd.Println("No interviewers found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME\tNAME\tEMAIL")
	for i := range interviewers {
		iv := &interviewers[i]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", iv.ID, iv.UserName, iv.DisplayName(), iv.EmailAddress)
	}
	return w.Flush()
}

func runInterviewerUpdate(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	ctx := context.Background()
	current, err := svc.Interviewers.Get(ctx, args[0])
	if err != nil {
		return fmt.Errorf("get interviewer: %w", err)
	}

	// Only flags the caller set override the current values.
	if cmd.Flags().Changed("username") {
		current.UserName = interviewerUserName
	}
	if cmd.Flags().Changed("first-name") {
		current.FirstName = interviewerFirstName
	}
	if cmd.Flags().Changed("last-name") {
		current.LastName = interviewerLastName
	}
	if cmd.Flags().Changed("email") {
		current.EmailAddress = interviewerEmail
	}
	if cmd.Flags().Changed("phone") {
		current.TelephoneNumber = interviewerPhone
	}
	if cmd.Flags().Changed("client-id") {
		current.ClientInterviewerID = interviewerClientID
	}

	updated, err := svc.Interviewers.Update(ctx, current)
	if err != nil {
		return fmt.Errorf("update interviewer: %w", err)
	}

	cmd.Printf("Updated interviewer %s (%s)\n", updated.DisplayName(), updated.ID)
	return nil
}

func runInterviewerRemove(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	if err := svc.Interviewers.Remove(context.Background(), args[0]); err != nil {
		return fmt.Errorf("remove interviewer: %w", err)
	}

	cmd.Printf("Removed interviewer %s\n", args[0])
	return nil
}

func runInterviewerPassword(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	cmd.Print("New password: ")
	password := readPassword()
	cmd.Println()

	if err := svc.Interviewers.ChangePassword(context.Background(), args[0], password); err != nil {
		return fmt.Errorf("change password: %w", err)
	}

	cmd.Printf("Password changed for interviewer %s\n", args[0])
	return nil
}
