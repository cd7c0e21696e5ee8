package parser

import (
	"strconv"
	"strings"
)

// findDataBounds finds the last row and last column holding a non-empty cell.
// Both are -1 when the sheet has no data.
func findDataBounds(rows [][]string) (maxRow, maxCol int) {
	maxRow, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if rowIdx > maxRow {
					maxRow = rowIdx
				}
				if colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}

// resolveHeaders turns the header row into width unique column names.
// Blank headers become "Unnamed: <i>"; repeated names get ".1", ".2", ...
func resolveHeaders(header []string, width int) []string {
	names := make([]string, width)
	used := make(map[string]bool, width)
	suffix := make(map[string]int)

	for i := 0; i < width; i++ {
		name := ""
		if i < len(header) {
			name = strings.TrimSpace(header[i])
		}
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}

		if used[name] {
			base := name
			n := suffix[base]
			for {
				n++
				name = base + "." + strconv.Itoa(n)
				if !used[name] {
					break
				}
			}
			suffix[base] = n
		}
		used[name] = true
		names[i] = name
	}

	return names
}
