package reader

import (
	"strings"
)

const utf8BOM = "\ufeff"

// ReadCSV splits comma-separated text into a Grid. A double quote toggles
// quoted mode and is not kept; commas inside quotes do not split. Blank
// lines are dropped and every cell is trimmed. Rows may differ in length.
func ReadCSV(data []byte) Grid {
	text := strings.TrimPrefix(string(data), utf8BOM)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var grid Grid
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		grid = append(grid, SplitCSVLine(line))
	}
	return grid
}

// SplitCSVLine splits one line on commas outside double quotes.
// `a,"b, c",d` -> ["a", "b, c", "d"]
func SplitCSVLine(line string) []string {
	var (
		cells    []string
		current  strings.Builder
		inQuotes bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			cells = append(cells, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	return append(cells, strings.TrimSpace(current.String()))
}
