// Package cli implements the cobra command tree for the nfield CLI.
package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/fieldwork-labs/nfield-cli/internal/core/ports/driven"
	"github.com/fieldwork-labs/nfield-cli/internal/core/services"
	"github.com/fieldwork-labs/nfield-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// DefaultServerURL is used when no server has been configured.
const DefaultServerURL = "https://api.nfieldmr.com"

// Services bundles the wired platform handles the commands call.
// main constructs it once and injects it via SetServices.
type Services struct {
	Interviewers   driven.InterviewersService
	Surveys        driven.SurveysService
	SamplingPoints driven.SamplingPointsService
	SurveyScript   driven.SurveyScriptService
	Tasks          driven.BackgroundTasksService
	Downloads      *services.DownloadService
}

var (
	verboseFlag bool
	serverFlag  string

	configStore driven.ConfigStore
	platform    *Services

	// connect builds the platform services once the flags are parsed,
	// so --server overrides reach every command. Injected by main.
	connect func(serverURL string) (*Services, error)
)

var rootCmd = &cobra.Command{
	Use:   "nfield",
	Short: "Command-line client for the Nfield survey platform",
	Long: `nfield is a command-line client for the Nfield survey platform.

It manages interviewers, surveys and sampling points, fetches
questionnaire scripts, requests data exports and tracks the background
tasks that produce them.

Sign in once with 'nfield signin'; the authentication token is kept in
~/.nfield/config.toml and reused (and rotated) on later invocations.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)

		if platform == nil && connect != nil {
			svc, err := connect(serverURL())
			if err != nil {
				return err
			}
			platform = svc
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"Enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&serverFlag, "server", "",
		"Server URL (overrides the configured one)")
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

// SetConfigStore injects the configuration store.
func SetConfigStore(store driven.ConfigStore) {
	configStore = store
}

// SetServices injects the wired platform services.
func SetServices(s *Services) {
	platform = s
}

// SetConnect injects the lazy service builder. It runs once per
// invocation, after flag parsing, with the resolved server URL.
func SetConnect(fn func(serverURL string) (*Services, error)) {
	connect = fn
}

// serverURL resolves the server to talk to: flag, then config, then default.
func serverURL() string {
	if serverFlag != "" {
		return serverFlag
	}
	if configStore != nil {
		if url := configStore.GetString(driven.ConfigKeyServerURL); url != "" {
			return url
		}
	}
	return DefaultServerURL
}

// pollInterval resolves the configured task poll interval.
func pollInterval() time.Duration {
	if configStore != nil {
		if secs := configStore.GetInt(driven.ConfigKeyPollInterval); secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return services.DefaultPollInterval
}

// requireServices guards commands that need a signed-in connection.
func requireServices() (*Services, error) {
	if platform == nil {
		return nil, errors.New("not signed in - run 'nfield signin' first")
	}
	return platform, nil
}
