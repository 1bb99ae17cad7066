package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/discern/internal/assessment"
	"github.com/abhisek/discern/internal/ui/view"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Inspect and import assessment progress",
}

var progressShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the local user's progress through each module",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		list, err := a.Progress.List(cmd.Context(), a.LocalUser().ID)
		if err != nil {
			return err
		}
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printJSON(cmd, list)
		}
		fmt.Fprintln(cmd.OutOrStdout(), view.Progress(list))
		return nil
	},
}

var progressImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import progress records from a JSON file",
	Long: "Import progress records from a JSON file holding one progress object or an array of them.\n" +
		"Each record replaces the stored progress for its module. Records without a userId\n" +
		"are imported for the local user.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := readProgressFile(args[0])
		if err != nil {
			return err
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		for _, p := range records {
			if p.UserID == "" {
				p.UserID = a.LocalUser().ID
			}
			if err := a.Progress.Import(cmd.Context(), p); err != nil {
				return fmt.Errorf("import %s for %s: %w", p.Module, p.UserID, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s for %s (%d answers)\n", p.Module, p.UserID, len(p.Answers))
		}
		return nil
	},
}

// readProgressFile decodes a single progress object or an array of them.
func readProgressFile(path string) ([]*assessment.Progress, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)

	var records []*assessment.Progress
	if len(data) > 0 && data[0] == '[' {
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else {
		var p assessment.Progress
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		records = append(records, &p)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s holds no progress records", path)
	}
	for i, p := range records {
		if p == nil || !p.Module.Valid() {
			return nil, fmt.Errorf("%s: record %d has no valid module", path, i)
		}
		if p.Answers == nil {
			p.Answers = []assessment.Answer{}
		}
	}
	return records, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	progressShowCmd.Flags().Bool("json", false, "Print raw JSON")

	progressCmd.AddCommand(progressShowCmd)
	progressCmd.AddCommand(progressImportCmd)
}
