package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/discern/internal/report"
	"github.com/abhisek/discern/internal/ui/layout"
	"github.com/abhisek/discern/internal/ui/view"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate and view discernment reports",
}

var reportGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new report for the local user",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		r, err := a.Reports.GenerateReport(cmd.Context(), a.LocalUser())
		var missing *report.MissingModulesError
		if errors.As(err, &missing) {
			fmt.Fprintln(cmd.ErrOrStderr(), view.Hints(
				layout.Hint{Command: "discern progress show", Description: "see which modules are unfinished"},
				layout.Hint{Command: "discern progress import <file>", Description: "load answers from a file"},
			))
		}
		if err != nil {
			return err
		}
		return printReport(cmd, r)
	},
}

var reportShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the latest report",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		userID, _ := cmd.Flags().GetString("user")
		if userID == "" {
			userID = a.LocalUser().ID
		}
		r, err := a.Reports.LatestReport(cmd.Context(), userID)
		if err != nil {
			return err
		}
		if r == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "No report generated yet.")
			fmt.Fprintln(cmd.OutOrStdout(), view.Hints(layout.Hint{Command: "discern report generate", Description: "write the first report"}))
			return nil
		}
		return printReport(cmd, r)
	},
}

var reportHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List every report of the local user, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		reports, err := a.Reports.History(cmd.Context(), a.LocalUser().ID)
		if err != nil {
			return err
		}
		if len(reports) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No reports found.")
			return nil
		}
		for _, r := range reports {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %-8s  %s\n",
				r.ID, r.GeneratedAt.Local().Format("2006-01-02 15:04"), r.PromptVersion, r.Model)
		}
		return nil
	},
}

func printReport(cmd *cobra.Command, r *report.Report) error {
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return printJSON(cmd, r)
	}
	fmt.Fprintln(cmd.OutOrStdout(), view.Report(r))
	return nil
}

func init() {
	reportGenerateCmd.Flags().Bool("json", false, "Print the report as JSON")
	reportShowCmd.Flags().Bool("json", false, "Print the report as JSON")
	reportShowCmd.Flags().String("user", "", "User ID (defaults to the local user)")

	reportCmd.AddCommand(reportGenerateCmd)
	reportCmd.AddCommand(reportShowCmd)
	reportCmd.AddCommand(reportHistoryCmd)
}
