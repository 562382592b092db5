package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/careermap/riasec/internal/cli"
	"github.com/careermap/riasec/internal/config"
	"github.com/careermap/riasec/internal/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func processCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process",
		Short: "Batch-classify a job dataset",
		Long: `Stream a tabular job dataset through the classifier in fixed-size
windows and write an augmented output table with riasec_code,
riasec_confidence, primary_riasec_type and extracted_title columns.

Output format follows the destination extension: .parquet (zstd
compressed) or delimited CSV.

Examples:
  riasec process --input job_skills.csv --output jobs_riasec.parquet
  riasec process --input job_skills.csv --sample 1000
  riasec process --skills-csv skills.csv --details-csv details.csv --output unified.parquet`,
		RunE: runProcess,
	}

	cmd.Flags().StringP("input", "i", "", "Input CSV file")
	cmd.Flags().StringP("output", "o", "", "Output file (CSV or Parquet)")
	cmd.Flags().String("skills-csv", "", "Skills CSV (join mode)")
	cmd.Flags().String("details-csv", "", "Details CSV (join mode)")
	cmd.Flags().Int("window-size", 0, "Rows per processing window")
	cmd.Flags().Int("sample", 0, "Only process this many rows (for testing)")
	cmd.Flags().String("skills-col", "", "Skills column name")
	cmd.Flags().String("title-col", "", "Title column name")
	cmd.Flags().String("link-col", "", "Job link column name")

	_ = viper.BindPFlag("pipeline.window_size", cmd.Flags().Lookup("window-size"))
	_ = viper.BindPFlag("pipeline.skills_column", cmd.Flags().Lookup("skills-col"))
	_ = viper.BindPFlag("pipeline.title_column", cmd.Flags().Lookup("title-col"))
	_ = viper.BindPFlag("pipeline.link_column", cmd.Flags().Lookup("link-col"))

	return cmd
}

func runProcess(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	skillsCSV, _ := cmd.Flags().GetString("skills-csv")
	detailsCSV, _ := cmd.Flags().GetString("details-csv")
	sample, _ := cmd.Flags().GetInt("sample")

	opts := pipeline.DefaultOptions()
	opts.Sample = sample
	if v := viper.GetInt("pipeline.window_size"); v > 0 {
		opts.WindowSize = v
	}
	if v := viper.GetString("pipeline.skills_column"); v != "" {
		opts.SkillsColumn = v
	}
	if v := viper.GetString("pipeline.link_column"); v != "" {
		opts.LinkColumn = v
	}
	opts.TitleColumn = viper.GetString("pipeline.title_column")

	p := pipeline.New(loadClassifier())

	var summary *pipeline.Summary
	var err error
	switch {
	case skillsCSV != "" && detailsCSV != "":
		if output == "" {
			output = "unified_jobs_riasec.parquet"
		}
		summary, err = p.RunJoin(ctx,
			config.ExpandPath(skillsCSV), config.ExpandPath(detailsCSV),
			config.ExpandPath(output), opts)
	case input != "":
		if output == "" {
			output = defaultOutputPath(input)
		}
		summary, err = p.Run(ctx,
			config.ExpandPath(input), config.ExpandPath(output), opts)
	default:
		return errors.New("provide --input, or both --skills-csv and --details-csv")
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.TitleStyle.Render("Processing complete"))
	fmt.Fprintf(out, "  Rows classified: %s\n", cli.BoldStyle.Render(humanInt(summary.Rows)))
	fmt.Fprintf(out, "  Total time:      %s\n", summary.Elapsed.Round(time.Millisecond).String())
	fmt.Fprintf(out, "  Average rate:    %.0f rows/sec\n", summary.Rate)
	fmt.Fprintf(out, "  Output:          %s\n", cli.SuccessStyle.Render(summary.Output))
	return nil
}

func defaultOutputPath(input string) string {
	if strings.HasSuffix(input, ".csv") {
		return strings.TrimSuffix(input, ".csv") + "_riasec.parquet"
	}
	return input + "_riasec.parquet"
}
