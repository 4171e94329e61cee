package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Format returns the rows padded according to the widest entry in each column.
// Widths are measured in terminal cells, so wide runes line up.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			if width := CellWidth(cell); width > widths[c] {
				widths[c] = width
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c := 0; c < colCount; c++ {
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			if c > 0 {
				b.WriteString("  ")
			}
			pad := widths[c] - CellWidth(cell)
			if c < len(alignments) && alignments[c] == AlignRight {
				writeSpaces(&b, pad)
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				if c < colCount-1 {
					writeSpaces(&b, pad)
				}
			}
		}
		out[i] = b.String()
	}
	return out
}

// CellWidth returns the display width of text in terminal cells.
func CellWidth(text string) int {
	return runewidth.StringWidth(text)
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	b.WriteString(strings.Repeat(" ", count))
}
