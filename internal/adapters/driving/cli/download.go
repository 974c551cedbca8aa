package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/fieldwork-labs/nfield-cli/internal/core/domain"
)

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Request and track survey data exports",
	Long: `Request a prepared data export for a survey and track its progress.

The platform runs the export as a background task. With --wait the
command blocks until the task finishes; otherwise use 'nfield tasks
watch <task-id>' to follow it.

Examples:
  nfield download request --survey <id> --file export.zip --successful-live --closed-answers
  nfield download request --survey <id> --file export.zip --from 2024-01-01T00:00:00Z --to 2024-02-01T00:00:00Z --wait
  nfield download history
  nfield download prune --older-than 720h`,
}

var downloadRequestCmd = &cobra.Command{
	Use:   "request",
	Short: "Request a data export",
	RunE:  runDownloadRequest,
}

var downloadHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously requested exports",
	RunE:  runDownloadHistory,
}

var downloadPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove old entries from the local export history",
	RunE:  runDownloadPrune,
}

var (
	downloadSurvey string
	downloadFile   string
	downloadFrom   string
	downloadTo     string
	downloadWait   bool

	downloadSuccessfulLive   bool
	downloadUnsuccessfulLive bool
	downloadSuspendedLive    bool
	downloadOpenAnswers      bool
	downloadClosedAnswers    bool
	downloadParaData         bool
	downloadCapturedMedia    bool
	downloadVarFile          bool
	downloadTestData         bool

	downloadPruneOlderThan time.Duration
)

func init() {
	flags := downloadRequestCmd.Flags()
	flags.StringVar(&downloadSurvey, "survey", "", "Survey ID (required)")
	flags.StringVar(&downloadFile, "file", "", "Name of the export archive (required)")
	flags.StringVar(&downloadFrom, "from", "", "Start of the collection period (RFC 3339, e.g. 2024-01-01T00:00:00Z)")
	flags.StringVar(&downloadTo, "to", "", "End of the collection period (RFC 3339)")
	flags.BoolVar(&downloadWait, "wait", false, "Block until the export task finishes")

	flags.BoolVar(&downloadSuccessfulLive, "successful-live", false, "Include successful live interview data")
	flags.BoolVar(&downloadUnsuccessfulLive, "unsuccessful-live", false, "Include unsuccessful live interview data")
	flags.BoolVar(&downloadSuspendedLive, "suspended-live", false, "Include suspended live interview data")
	flags.BoolVar(&downloadOpenAnswers, "open-answers", false, "Include open answer data")
	flags.BoolVar(&downloadClosedAnswers, "closed-answers", false, "Include closed answer data")
	flags.BoolVar(&downloadParaData, "para-data", false, "Include para data")
	flags.BoolVar(&downloadCapturedMedia, "captured-media", false, "Include captured media")
	flags.BoolVar(&downloadVarFile, "var-file", false, "Include the var file")
	flags.BoolVar(&downloadTestData, "test-data", false, "Include test interview data")

	_ = downloadRequestCmd.MarkFlagRequired("survey")
	_ = downloadRequestCmd.MarkFlagRequired("file")

	downloadPruneCmd.Flags().DurationVar(&downloadPruneOlderThan, "older-than", 30*24*time.Hour,
		"Remove history entries older than this duration")

	downloadCmd.AddCommand(downloadRequestCmd)
	downloadCmd.AddCommand(downloadHistoryCmd)
	downloadCmd.AddCommand(downloadPruneCmd)
	rootCmd.AddCommand(downloadCmd)
}

func runDownloadRequest(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	req := &domain.DataDownloadRequest{
		SurveyID:                      downloadSurvey,
		FileName:                      downloadFile,
		SuccessfulLiveInterviewData:   downloadSuccessfulLive,
		UnsuccessfulLiveInterviewData: downloadUnsuccessfulLive,
		SuspendedLiveInterviewData:    downloadSuspendedLive,
		OpenAnswerData:                downloadOpenAnswers,
		ClosedAnswerData:              downloadClosedAnswers,
		ParaData:                      downloadParaData,
		CapturedMedia:                 downloadCapturedMedia,
		VarFile:                       downloadVarFile,
		TestInterviewData:             downloadTestData,
	}

	if downloadFrom != "" {
		req.StartDate, err = time.Parse(time.RFC3339, downloadFrom)
		if err != nil {
			return fmt.Errorf("parse --from: %w", err)
		}
	}
	if downloadTo != "" {
		req.EndDate, err = time.Parse(time.RFC3339, downloadTo)
		if err != nil {
			return fmt.Errorf("parse --to: %w", err)
		}
	}

	ctx := context.Background()
	record, err := svc.Downloads.Request(ctx, req)
	if err != nil {
		return fmt.Errorf("request download: %w", err)
	}

	cmd.Printf("Export requested; background task %s\n", record.TaskID)

	if !downloadWait {
		cmd.Printf("Follow it with: nfield tasks watch %s\n", record.TaskID)
		return nil
	}

	task, err := svc.Downloads.Await(ctx, record)
	if err != nil {
		return fmt.Errorf("wait for export: %w", err)
	}

	cmd.Printf("Export finished: %s\n", task.Status)
	if task.ResultURL != "" {
		cmd.Printf("Result: %s\n", task.ResultURL)
	}
	return nil
}

func runDownloadHistory(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	records, err := svc.Downloads.History(context.Background())
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	if len(records) == 0 {
		cmd.Println("No exports requested yet.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "REQUESTED\tTASK\tSURVEY\tFILE\tSTATUS")
	for i := range records {
		r := &records[i]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			r.RequestedAt.Local().Format("2006-01-02 15:04"),
			r.TaskID, r.SurveyID, r.FileName, r.Status)
	}
	return w.Flush()
}

func runDownloadPrune(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	n, err := svc.Downloads.PruneHistory(context.Background(), downloadPruneOlderThan)
	if err != nil {
		return fmt.Errorf("prune history: %w", err)
	}

	cmd.Printf("Removed %d history entries.\n", n)
	return nil
}
