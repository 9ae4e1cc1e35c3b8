// Package texttable renders rows as fixed-width columns for chat output.
package texttable

import (
	"strings"
	"text/tabwriter"
)

// Render aligns rows into columns separated by two spaces. The first row is
// treated as a header and underlined with dashes.
func Render(rows [][]string) string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	for i, row := range rows {
		_, _ = w.Write([]byte(strings.Join(row, "\t") + "\n"))
		if i == 0 {
			underline := make([]string, len(row))
			for j, cell := range row {
				underline[j] = strings.Repeat("-", len(cell))
			}
			_, _ = w.Write([]byte(strings.Join(underline, "\t") + "\n"))
		}
	}
	_ = w.Flush()

	return sb.String()
}

// Fence wraps text in a Discord code fence.
func Fence(text string) string {
	return "```\n" + strings.TrimRight(text, "\n") + "\n```"
}
