package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/discern/internal/assessment"
	"github.com/abhisek/discern/internal/catalog"
	"github.com/abhisek/discern/internal/progress"
	"github.com/abhisek/discern/internal/scoring"
	"github.com/abhisek/discern/internal/ui/view"
)

var scoreCmd = &cobra.Command{
	Use:   "score <module> [file]",
	Short: "Score a module's answers",
	Long: "Score and classify strengths, gifts or vocational answers.\n\n" +
		"With a file, the answers are read from a progress JSON file (one object or an array)\n" +
		"and nothing is stored. Without one, the local user's stored progress is scored.",
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		module, err := catalog.ParseModule(args[0])
		if err != nil {
			return err
		}
		if !module.Scored() {
			return fmt.Errorf("module %s has no scores", module)
		}

		var p *assessment.Progress
		if len(args) == 2 {
			records, err := readProgressFile(args[1])
			if err != nil {
				return err
			}
			for _, r := range records {
				if r.Module == module {
					p = r
				}
			}
			if p == nil {
				return fmt.Errorf("%s has no %s progress", args[1], module)
			}
		} else {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			p, err = a.Progress.Get(cmd.Context(), a.LocalUser().ID, module)
			if err != nil && !errors.Is(err, progress.ErrNotStarted) {
				return err
			}
		}

		res, err := scoring.ScoreModule(module, p)
		if err != nil {
			return err
		}
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printJSON(cmd, res)
		}
		fmt.Fprintln(cmd.OutOrStdout(), view.Result(res))
		return nil
	},
}

func init() {
	scoreCmd.Flags().Bool("json", false, "Print the classified result as JSON")
}
