package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/careermap/riasec/internal/cli"
	"github.com/careermap/riasec/internal/classify"
	"github.com/careermap/riasec/internal/framework"
	"github.com/careermap/riasec/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify skills into a 3-letter RIASEC code",
		Long: `Classify free-text skills (and an optional job title) into a 3-letter
RIASEC code with a confidence score.

Examples:
  riasec classify --skills "Python, SQL, Machine Learning" --title "Data Scientist"
  riasec classify --link "https://example.com/jobs/view/welder-at-acme-123" --skills "welding"
  riasec classify --interactive`,
		RunE: runClassify,
	}

	cmd.Flags().StringP("skills", "s", "", "Comma-separated skills or job description")
	cmd.Flags().StringP("title", "t", "", "Job title")
	cmd.Flags().String("link", "", "Job listing URL (title is extracted when --title is empty)")
	cmd.Flags().BoolP("verbose", "v", false, "Show per-letter scores and matched indicators")
	cmd.Flags().BoolP("interactive", "i", false, "Interactive mode")

	_ = viper.BindPFlag("classify.verbose", cmd.Flags().Lookup("verbose"))

	return cmd
}

func runClassify(cmd *cobra.Command, _ []string) error {
	skills, _ := cmd.Flags().GetString("skills")
	title, _ := cmd.Flags().GetString("title")
	link, _ := cmd.Flags().GetString("link")
	interactive, _ := cmd.Flags().GetBool("interactive")
	verbose := viper.GetBool("classify.verbose")

	fw := loadFramework()
	classifier := classify.New(fw)

	if interactive {
		return runInteractive(cmd, classifier, fw, verbose)
	}

	if skills == "" && link == "" {
		return errors.New("provide --skills (or --link), or use --interactive")
	}

	result := classifier.Classify(skills, title, link)
	printResult(cmd.OutOrStdout(), fw, result, verbose)
	return nil
}

func runInteractive(cmd *cobra.Command, classifier *classify.Classifier, fw *framework.Framework, verbose bool) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	reader := cli.NewLineReader(cmd.InOrStdin())

	fmt.Fprintln(out, cli.TitleStyle.Render("RIASEC Classifier — interactive mode"))
	fmt.Fprintln(out, cli.SubtleStyle.Render("Enter skills and a job title to classify. Type 'quit' to exit."))
	fmt.Fprintln(out)

	for {
		fmt.Fprint(out, cli.BoldStyle.Render("Skills (comma-separated): "))
		skills, err := reader.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, cli.ErrInputCancelled) {
				return nil
			}
			return err
		}
		if strings.EqualFold(strings.TrimSpace(skills), "quit") {
			return nil
		}

		fmt.Fprint(out, cli.BoldStyle.Render("Job Title (optional): "))
		title, err := reader.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, cli.ErrInputCancelled) {
				return nil
			}
			return err
		}

		fmt.Fprintln(out)
		printResult(out, fw, classifier.Classify(skills, title, ""), verbose)
		fmt.Fprintln(out)
	}
}

func printResult(out io.Writer, fw *framework.Framework, result model.Result, verbose bool) {
	fmt.Fprintf(out, "%s %s\n", cli.SubtitleStyle.Render("RIASEC Code:"), cli.CodeStyle.Render(result.Code))
	fmt.Fprintf(out, "%s %s\n", cli.SubtitleStyle.Render("Primary Type:"), result.PrimaryType)

	confidence := fmt.Sprintf("%.0f%%", result.Confidence*100)
	if result.Confidence < 0.4 {
		confidence = cli.WarningStyle.Render(confidence)
	} else {
		confidence = cli.SuccessStyle.Render(confidence)
	}
	fmt.Fprintf(out, "%s %s\n", cli.SubtitleStyle.Render("Confidence:"), confidence)
	fmt.Fprintf(out, "%s %s\n", cli.SubtitleStyle.Render("Description:"), result.Description)
	if result.Gift != "" {
		fmt.Fprintf(out, "%s %s\n", cli.SubtitleStyle.Render("Gift:"), result.Gift)
	}

	if !verbose {
		return
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.BoldStyle.Render("Scores:"))
	for _, l := range model.Letters {
		letter := string(l)
		fmt.Fprintf(out, "  %s (%s): %.1f\n", letter, fw.TypeName(letter), result.Scores[letter])
	}

	if len(result.MatchedIndicators) == 0 {
		return
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.BoldStyle.Render("Matched Indicators:"))
	for _, l := range model.Letters {
		matches := result.MatchedIndicators[string(l)]
		if len(matches) == 0 {
			continue
		}
		if len(matches) > 5 {
			matches = matches[:5]
		}
		fmt.Fprintf(out, "  %s: %s\n", string(l), strings.Join(matches, ", "))
	}
}
