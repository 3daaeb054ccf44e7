package ui

import (
	"strings"
	"unicode/utf8"
)

// Task titles are the only unbounded column in td's tables, so cells are
// capped at a width that keeps the seven-column list readable next to the
// fixed-width status and date columns.
const cellMaxWidth = 50

const cellEllipsis = "..."

// TableBuilder accumulates rows for a td table and renders them as
// space-aligned columns. Alignment is computed on visible width, so colored
// cells line up with plain ones.
type TableBuilder struct {
	headers []string
	rows    [][]string
	widths  []int
}

// NewTableBuilder seeds column widths from the header row.
func NewTableBuilder(headers []string, capacity int) *TableBuilder {
	cleaned := make([]string, len(headers))
	widths := make([]int, len(headers))
	for i, header := range headers {
		cleaned[i] = flattenCell(header)
		widths[i] = displayWidth(cleaned[i])
	}
	return &TableBuilder{headers: cleaned, rows: make([][]string, 0, capacity), widths: widths}
}

// AddRow appends a row, widening columns as needed.
func (b *TableBuilder) AddRow(row []string) {
	cleaned := make([]string, len(row))
	for i, cell := range row {
		cleaned[i] = flattenCell(cell)
		if i < len(b.widths) {
			if width := displayWidth(cleaned[i]); width > b.widths[i] {
				b.widths[i] = width
			}
		}
	}
	b.rows = append(b.rows, cleaned)
}

// String renders the header row followed by every added row.
func (b *TableBuilder) String() string {
	var out strings.Builder
	b.writeRow(&out, b.headers)
	for _, row := range b.rows {
		b.writeRow(&out, row)
	}
	return out.String()
}

func (b *TableBuilder) writeRow(out *strings.Builder, row []string) {
	for i, cell := range row {
		out.WriteString(cell)
		if i == len(row)-1 {
			break
		}
		padding := 2
		if i < len(b.widths) {
			padding += b.widths[i] - displayWidth(cell)
		}
		out.WriteString(strings.Repeat(" ", padding))
	}
	out.WriteByte('\n')
}

// TruncateCell caps a cell at the table's column width, appending an
// ellipsis when anything was cut.
func TruncateCell(value string) string {
	value = flattenCell(value)
	if displayWidth(value) <= cellMaxWidth {
		return value
	}
	return clipVisible(value, cellMaxWidth-len(cellEllipsis)) + cellEllipsis
}

// flattenCell collapses line breaks and tabs so a cell stays on one table row.
func flattenCell(value string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(value)
}

// displayWidth counts runes outside ANSI escape sequences.
func displayWidth(value string) int {
	width := 0
	for len(value) > 0 {
		if _, rest, ok := cutEscape(value); ok {
			value = rest
			continue
		}
		_, size := utf8.DecodeRuneInString(value)
		width++
		value = value[size:]
	}
	return width
}

// clipVisible returns a prefix with at most max visible runes. ANSI escape
// sequences are kept, including any after the cut, so a clipped colored cell
// still resets its style.
func clipVisible(value string, max int) string {
	var out strings.Builder
	visible := 0
	for len(value) > 0 {
		if esc, rest, ok := cutEscape(value); ok {
			out.WriteString(esc)
			value = rest
			continue
		}
		_, size := utf8.DecodeRuneInString(value)
		if visible < max {
			out.WriteString(value[:size])
			visible++
		}
		value = value[size:]
	}
	return out.String()
}

// cutEscape splits a leading ANSI SGR sequence off value.
func cutEscape(value string) (esc, rest string, ok bool) {
	if len(value) < 2 || value[0] != '\x1b' || value[1] != '[' {
		return "", value, false
	}
	end := strings.IndexByte(value, 'm')
	if end < 0 {
		return value, "", true
	}
	return value[:end+1], value[end+1:], true
}
