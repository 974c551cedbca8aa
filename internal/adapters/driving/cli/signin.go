package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fieldwork-labs/nfield-cli/internal/core/ports/driven"
	"github.com/fieldwork-labs/nfield-cli/internal/nfield"
)

var signinCmd = &cobra.Command{
	Use:   "signin",
	Short: "Sign in to the platform and save the session",
	Long: `Sign in to the platform with domain, username and password.

The password is prompted and never stored; the resulting authentication
token and the server/domain/username are saved so later commands reuse
the session.

Examples:
  nfield signin --domain acme --user jdoe
  nfield signin --server https://api.nfieldmr.com --domain acme --user jdoe`,
	RunE: runSignin,
}

var (
	signinDomain string
	signinUser   string
)

func init() {
	signinCmd.Flags().StringVar(&signinDomain, "domain", "", "Platform domain")
	signinCmd.Flags().StringVar(&signinUser, "user", "", "User name")
	rootCmd.AddCommand(signinCmd)
}

func runSignin(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return fmt.Errorf("config store not configured")
	}

	domain := signinDomain
	if domain == "" {
		domain = configStore.GetString(driven.ConfigKeyAuthDomain)
	}
	if domain == "" {
		domain = promptLine(cmd, "Domain: ")
	}

	user := signinUser
	if user == "" {
		user = configStore.GetString(driven.ConfigKeyAuthUsername)
	}
	if user == "" {
		user = promptLine(cmd, "Username: ")
	}

	if domain == "" || user == "" {
		return fmt.Errorf("domain and user are required")
	}

	cmd.Print("Password: ")
	password := readPassword()
	cmd.Println()
	if password == "" {
		return fmt.Errorf("password is required")
	}

	server := serverURL()
	client, err := nfield.New(server, nfield.Credentials{
		Domain:   domain,
		Username: user,
		Password: password,
	})
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := client.SignIn(ctx); err != nil {
		if nfield.IsUnauthorized(err) {
			return fmt.Errorf("sign-in rejected for %s/%s", domain, user)
		}
		return fmt.Errorf("sign-in failed: %w", err)
	}

	token, err := client.Token(ctx)
	if err != nil {
		return err
	}

	// Persist the session for later invocations.
	for key, value := range map[string]any{
		driven.ConfigKeyServerURL:    server,
		driven.ConfigKeyAuthDomain:   domain,
		driven.ConfigKeyAuthUsername: user,
		driven.ConfigKeyAuthToken:    token,
	} {
		if err := configStore.Set(key, value); err != nil {
			return fmt.Errorf("saving session: %w", err)
		}
	}

	cmd.Printf("Signed in to %s as %s/%s.\n", server, domain, user)
	return nil
}

// promptLine reads one trimmed line from stdin.
func promptLine(cmd *cobra.Command, prompt string) string {
	cmd.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

// readPassword reads a password without echo, falling back to a plain
// line read when stdin is not a terminal.
//
//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}
