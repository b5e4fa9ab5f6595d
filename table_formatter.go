package main

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
)

// tabStop is how many columns a tab is assumed to take in a rule line.
const tabStop = 4

// Table раскладывает ячейки по колонкам фиксированной ширины, разделяя их табуляцией.
// Ширина колонки = max(длина заголовка, самая широкая ячейка).
type Table struct {
	headers []string
	rows    [][]string
	widths  []int
}

func NewTable(headers ...string) *Table {
	t := &Table{headers: headers, widths: make([]int, len(headers))}
	for i, h := range headers {
		t.widths[i] = text.RuneWidthWithoutEscSequences(h)
	}
	return t
}

// AppendRow adds a row; missing cells are blank and extra cells are dropped.
func (t *Table) AppendRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	for i, c := range row {
		t.Reserve(i, c)
	}
	t.rows = append(t.rows, row)
}

// Reserve widens column col to fit s without adding a row.
func (t *Table) Reserve(col int, s string) {
	if w := text.RuneWidthWithoutEscSequences(s); col < len(t.widths) && w > t.widths[col] {
		t.widths[col] = w
	}
}

func (t *Table) Widths() []int {
	return append([]int{}, t.widths...)
}

func (t *Table) Rows() [][]string {
	return t.rows
}

func (t *Table) HeaderLine() string {
	return t.Line(t.headers)
}

// Line formats cells with the table widths, left-justified and tab-joined.
func (t *Table) Line(cells []string) string {
	parts := make([]string, len(t.widths))
	for i, w := range t.widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = text.Pad(cell, w, ' ')
	}
	return strings.Join(parts, "\t")
}

// Rule is a dash line as wide as the table renders with tabStop-wide tabs.
func (t *Table) Rule() string {
	n := 0
	for i, w := range t.widths {
		n += w
		if i < len(t.widths)-1 {
			n += tabStop
		}
	}
	return strings.Repeat("-", n)
}
