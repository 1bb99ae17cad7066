package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/discern/internal/catalog"
	"github.com/abhisek/discern/internal/ui/components"
	"github.com/abhisek/discern/internal/ui/layout"
	"github.com/abhisek/discern/internal/ui/theme"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the assessment catalog",
}

var catalogModulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List the assessment modules",
	Run: func(cmd *cobra.Command, args []string) {
		cards := make([]string, 0, len(catalog.Modules))
		for _, m := range catalog.Modules {
			info := m.Info()
			cards = append(cards, layout.RenderCard(
				theme.Heading.Render(info.Title)+"  "+theme.Hint.Render(string(m)+", "+info.EstimatedTime)+
					"\n"+info.Description))
		}
		fmt.Fprintln(cmd.OutOrStdout(), layout.Join(cards...))
	},
}

var catalogListCmd = &cobra.Command{
	Use:   "list <module>",
	Short: "List the domains of a scored module and their question prefixes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := catalog.ParseModule(args[0])
		if err != nil {
			return err
		}
		if !m.Scored() {
			return fmt.Errorf("module %s has no scored domains", m)
		}

		headers, rows := catalogRows(m)
		fmt.Fprintln(cmd.OutOrStdout(), layout.Join(
			layout.RenderHeader(m.Info().Title, fmt.Sprintf("%d domains", len(rows))),
			components.Table(headers, rows, -1),
		))
		return nil
	},
}

// catalogRows lists a scored module with the column that matters most for
// reading its results.
func catalogRows(m catalog.Module) ([]string, [][]string) {
	var rows [][]string
	switch m {
	case catalog.Strengths:
		for _, s := range catalog.AllStrengths() {
			rows = append(rows, []string{s.ID, s.Prefix, s.Name, s.Description})
		}
		return []string{"ID", "Prefix", "Name", "Description"}, rows
	case catalog.Gifts:
		for _, g := range catalog.AllGifts() {
			rows = append(rows, []string{g.ID, g.Prefix, g.Name, g.ScriptureRef})
		}
		return []string{"ID", "Prefix", "Name", "Scripture"}, rows
	default:
		for _, d := range catalog.AllDirections() {
			rows = append(rows, []string{d.ID, d.Prefix, d.Name, strings.Join(d.TypicalCosts, "; ")})
		}
		return []string{"ID", "Prefix", "Name", "Typical costs"}, rows
	}
}

func init() {
	catalogCmd.AddCommand(catalogModulesCmd)
	catalogCmd.AddCommand(catalogListCmd)
}
