package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fieldwork-labs/nfield-cli/internal/adapters/driven/config/file"
	"github.com/fieldwork-labs/nfield-cli/internal/adapters/driven/storage/sqlite"
	"github.com/fieldwork-labs/nfield-cli/internal/adapters/driving/cli"
	"github.com/fieldwork-labs/nfield-cli/internal/core/ports/driven"
	"github.com/fieldwork-labs/nfield-cli/internal/core/services"
	"github.com/fieldwork-labs/nfield-cli/internal/logger"
	"github.com/fieldwork-labs/nfield-cli/internal/nfield"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	cli.SetConfigStore(configStore)

	// The services are built lazily, after flag parsing, so a --server
	// override reaches every command rather than only signin.
	var (
		client *nfield.Client
		store  *sqlite.Store
	)
	cli.SetConnect(func(serverURL string) (*cli.Services, error) {
		client = buildClient(configStore, serverURL)
		if client == nil {
			return nil, nil
		}

		var downloadStore driven.DownloadStore
		s, err := sqlite.NewStore("")
		if err != nil {
			// Commands still work without local history.
			logger.Warn("opening history store: %v", err)
		} else {
			store = s
			downloadStore = s.DownloadStore()
		}

		waiter := services.NewTaskWaiter(client.BackgroundTasks(), pollInterval(configStore))

		return &cli.Services{
			Interviewers:   client.Interviewers(),
			Surveys:        client.Surveys(),
			SamplingPoints: client.SamplingPoints(),
			SurveyScript:   client.SurveyScript(),
			Tasks:          client.BackgroundTasks(),
			Downloads:      services.NewDownloadService(client.SurveyData(), downloadStore, waiter),
		}, nil
	})

	runErr := cli.Execute()

	if store != nil {
		if err := store.Close(); err != nil {
			logger.Warn("closing history store: %v", err)
		}
	}

	// The platform may have rotated the token during this invocation;
	// persist whatever is current so the next run resumes the session.
	if client != nil && client.TokenProvider().IsAuthenticated() {
		if token, err := client.Token(context.Background()); err == nil {
			if err := configStore.Set(driven.ConfigKeyAuthToken, token); err != nil {
				logger.Warn("saving rotated token: %v", err)
			}
		}
	}

	return runErr
}

// buildClient restores the saved session from the config store against
// the resolved server. It returns nil when no session has been saved
// yet; commands that need one tell the user to sign in.
func buildClient(configStore driven.ConfigStore, serverURL string) *nfield.Client {
	domain := configStore.GetString(driven.ConfigKeyAuthDomain)
	username := configStore.GetString(driven.ConfigKeyAuthUsername)
	token := configStore.GetString(driven.ConfigKeyAuthToken)
	if domain == "" || username == "" || token == "" {
		return nil
	}

	opts := []nfield.Option{nfield.WithSavedToken(token)}
	if rate := configStore.GetInt(driven.ConfigKeyRequestRate); rate > 0 {
		opts = append(opts, nfield.WithRequestRate(float64(rate)))
	}

	client, err := nfield.New(serverURL, nfield.Credentials{
		Domain:   domain,
		Username: username,
	}, opts...)
	if err != nil {
		logger.Warn("restoring session: %v", err)
		return nil
	}
	return client
}

func pollInterval(configStore driven.ConfigStore) time.Duration {
	if secs := configStore.GetInt(driven.ConfigKeyPollInterval); secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return services.DefaultPollInterval
}
