package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/careermap/riasec/internal/cli"
	"github.com/careermap/riasec/internal/config"
	"github.com/careermap/riasec/internal/report"
	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Aggregate a classified output file",
		Long: `Read a classified output file (CSV or Parquet) and print the RIASEC
code distribution, primary type distribution and confidence bands.

Examples:
  riasec report --input jobs_riasec.parquet
  riasec report --input jobs_riasec.csv --top 10`,
		RunE: runReport,
	}

	cmd.Flags().StringP("input", "i", "", "Classified output file to aggregate")
	cmd.Flags().Int("top", 20, "Number of codes to show in the distribution")

	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	input, _ := cmd.Flags().GetString("input")
	top, _ := cmd.Flags().GetInt("top")
	if input == "" {
		return errors.New("provide --input")
	}

	r, err := report.AnalyzeFile(cmd.Context(), config.ExpandPath(input), top)
	if err != nil {
		return err
	}

	renderReport(cmd.OutOrStdout(), r)
	return nil
}

func renderReport(out io.Writer, r *report.Report) {
	fmt.Fprintln(out, cli.TitleStyle.Render(fmt.Sprintf("RIASEC report — %s rows", humanInt(r.Total))))

	fmt.Fprintln(out, cli.BoldStyle.Render("Code distribution"))
	for _, b := range r.Codes {
		fmt.Fprintf(out, "  %s: %9s (%5.1f%%) %s\n",
			cli.CodeStyle.Render(b.Label), humanInt(b.Count), b.Percent, cli.Bar(b.Percent, 2))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.BoldStyle.Render("Primary type distribution"))
	for _, b := range r.Types {
		fmt.Fprintf(out, "  %-15s: %9s (%5.1f%%) %s\n",
			b.Label, humanInt(b.Count), b.Percent, cli.Bar(b.Percent, 5))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.BoldStyle.Render("Confidence"))
	total := float64(r.Total)
	fmt.Fprintf(out, "  High   (>=70%%): %9s (%5.1f%%)\n",
		humanInt(r.Confidence.High), float64(r.Confidence.High)/total*100)
	fmt.Fprintf(out, "  Medium (40-70%%): %8s (%5.1f%%)\n",
		humanInt(r.Confidence.Medium), float64(r.Confidence.Medium)/total*100)
	fmt.Fprintf(out, "  Low    (<40%%):  %9s (%5.1f%%)\n",
		humanInt(r.Confidence.Low), float64(r.Confidence.Low)/total*100)
}
