package output

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	columnSeparator = " | "
	ruleSeparator   = "-+-"
)

// RenderTable renders headers and rows as a left-aligned ASCII table.
// Cells of any type are converted with fmt.Sprint. Each column is as wide as
// its widest cell or header, counted in characters. Lines are joined with "\n" and the result has no
// trailing newline.
func RenderTable(headers []string, rows [][]any) string {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = utf8.RuneCountInString(header)
	}

	cells := make([][]string, len(rows))
	for r, row := range rows {
		cells[r] = make([]string, len(row))
		for i, cell := range row {
			text := fmt.Sprint(cell)
			cells[r][i] = text
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := utf8.RuneCountInString(text); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, formatLine(headers, widths))

	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("-", w)
	}
	lines = append(lines, strings.Join(rule, ruleSeparator))

	for _, row := range cells {
		lines = append(lines, formatLine(row, widths))
	}

	return strings.Join(lines, "\n")
}

func formatLine(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = pad(cell, widths[i])
	}
	return strings.Join(padded, columnSeparator)
}

func pad(text string, width int) string {
	gap := width - utf8.RuneCountInString(text)
	if gap <= 0 {
		return text
	}
	return text + strings.Repeat(" ", gap)
}
