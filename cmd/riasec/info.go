package main

import (
	"fmt"

	"github.com/careermap/riasec/internal/cli"
	"github.com/spf13/cobra"
)

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show framework information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fw := loadFramework()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, cli.TitleStyle.Render("RIASEC career framework"))
			for _, t := range fw.Types() {
				fmt.Fprintf(out, "%s — %s (%s)\n",
					cli.CodeStyle.Render(t.Letter), cli.BoldStyle.Render(t.Name), t.Title)
				fmt.Fprintf(out, "   %s\n", cli.SubtleStyle.Render(fmt.Sprintf(
					"%d strong, %d moderate, %d keyword indicators",
					len(t.Strong), len(t.Moderate), len(t.Keywords))))
			}
			fmt.Fprintf(out, "\nTotal combinations: %d\n", fw.Combinations())
			return nil
		},
	}
}
