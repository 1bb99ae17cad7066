package components

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/discern/internal/ui/theme"
)

// Table renders rows under headers with rounded borders. Column tierCol,
// when non-negative, is coloured by its classification label.
func Table(headers []string, rows [][]string, tierCol int) string {
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(theme.TableBorder).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return cell.Inherit(theme.Heading)
			case col == tierCol && row < len(rows):
				return cell.Inherit(theme.Tier(rows[row][col]))
			}
			return cell
		}).
		String()
}
