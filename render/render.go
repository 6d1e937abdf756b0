// Package render is the display collaborator: it produces a read-only grid
// view of a board for the terminal. It never mutates board state.
package render

import (
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/nyoung/checkers/board"
	"github.com/nyoung/checkers/checker"
)

func marker(p checker.Checker) string {
	m := "B"
	if p.Color() == checker.Red {
		m = "R"
	}
	if p.IsKing() {
		m = "K" + m
	}
	return m
}

// BoardText renders the board as a bordered grid, one cell per square, with
// column letters across the top and 1-based row numbers down the side.
func BoardText(b *board.CheckerBoard) string {
	var sb strings.Builder
	table := tablewriter.NewWriter(&sb)

	header := make([]string, b.Width()+1)
	header[0] = ""
	for col := 0; col < b.Width(); col++ {
		header[col+1] = string(rune('A' + col))
	}
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetRowLine(true)
	table.SetAlignment(tablewriter.ALIGN_CENTER)

	for row := 0; row < b.Height(); row++ {
		cells := make([]string, b.Width()+1)
		cells[0] = strconv.Itoa(row + 1)
		for col := 0; col < b.Width(); col++ {
			if p, ok := b.PieceAt(col, row); ok {
				cells[col+1] = marker(p)
			}
		}
		table.Append(cells)
	}
	table.Render()
	return sb.String()
}
