package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var samplingPointCmd = &cobra.Command{
	Use:   "samplingpoint",
	Short: "Inspect sampling points",
}

var samplingPointListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the sampling points of a survey",
	RunE:  runSamplingPointList,
}

var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Fetch survey questionnaire scripts",
}

var scriptGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Fetch the questionnaire script of a survey",
	RunE:  runScriptGet,
}

var (
	samplingPointSurvey string
	scriptSurvey        string
	scriptOutFile       string
)

func init() {
	samplingPointListCmd.Flags().StringVar(&samplingPointSurvey, "survey", "", "Survey ID (required)")
	_ = samplingPointListCmd.MarkFlagRequired("survey")
	samplingPointCmd.AddCommand(samplingPointListCmd)
	rootCmd.AddCommand(samplingPointCmd)

	scriptGetCmd.Flags().StringVar(&scriptSurvey, "survey", "", "Survey ID (required)")
	scriptGetCmd.Flags().StringVar(&scriptOutFile, "out", "", "Write the script to this file instead of stdout")
	_ = scriptGetCmd.MarkFlagRequired("survey")
	scriptCmd.AddCommand(scriptGetCmd)
	rootCmd.AddCommand(scriptCmd)
}

func runSamplingPointList(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	points, err := svc.SamplingPoints.List(context.Background(), samplingPointSurvey)
	if err != nil {
		return fmt.Errorf("list sampling points: %w", err)
	}

	if len(points) == 0 {
		cmd.Println("No sampling points found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tOFFICE\tDESCRIPTION")
	for i := range points {
		p := &points[i]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.FieldworkOfficeID, p.Description)
	}
	return w.Flush()
}

func runScriptGet(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	script, err := svc.SurveyScript.Get(context.Background(), scriptSurvey)
	if err != nil {
		return fmt.Errorf("get script: %w", err)
	}

	if scriptOutFile != "" {
		if err := os.WriteFile(scriptOutFile, []byte(script.Script), 0644); err != nil {
			return fmt.Errorf("write script: %w", err)
		}
		cmd.Printf("Wrote %s to %s\n", script.FileName, scriptOutFile)
		return nil
	}

	cmd.Println(script.Script)
	return nil
}
