package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mozillazg/go-unidecode"
	"github.com/pivolan/address_stats/domain/models"
)

var (
	duplicateHeaders = []string{"Город", "Улица", "Номер дома", "Количество этажей", "Количество дубликатов"}
	houseHeaders     = []string{"Город", "Количество этажей", "Количество домов"}
)

const noDuplicatesMsg = "Дубликаты не были найдены"

type ReportPrinter struct {
	console       *Console
	style         models.TableStyle
	variant       models.Variant
	transliterate bool
}

func NewReportPrinter(console *Console, style models.TableStyle, variant models.Variant, transliterate bool) *ReportPrinter {
	return &ReportPrinter{console: console, style: style, variant: variant, transliterate: transliterate}
}

func (p *ReportPrinter) cell(s string) string {
	if p.transliterate {
		return unidecode.Unidecode(s)
	}
	return s
}

func (p *ReportPrinter) cells(values []string) []string {
	result := make([]string, len(values))
	for i, v := range values {
		result[i] = p.cell(v)
	}
	return result
}

// DuplicatesTable builds the duplicates table; rows seen once are left out.
func (p *ReportPrinter) DuplicatesTable(rows *RowCounts) *Table {
	t := NewTable(p.cells(duplicateHeaders)...)
	for _, d := range rows.Duplicates() {
		t.AppendRow(append(p.cells(d.Row.Cells()), strconv.Itoa(d.Count))...)
	}
	return t
}

// HouseCountsTable builds the house counts table. groupStart[i] marks the first row of a city.
func (p *ReportPrinter) HouseCountsTable(houses *HouseCounts) (t *Table, groupStart []bool) {
	t = NewTable(p.cells(houseHeaders)...)
	entries := houses.Entries()
	labels := CityLabels(entries, p.variant)
	prevCity := ""
	for i, e := range entries {
		groupStart = append(groupStart, i == 0 || e.City != prevCity)
		t.Reserve(0, p.cell(e.City))
		t.AppendRow(p.cell(labels[i]), p.cell(e.Floors), strconv.Itoa(e.Houses))
		prevCity = e.City
	}
	return t, groupStart
}

// CityLabels returns the text of the city column for each entry.
// Standard: the city is shown on the first row of its group only.
// Legacy: the city is shown only where the floor count is exactly 3.
func CityLabels(entries []models.HouseCount, variant models.Variant) []string {
	labels := make([]string, len(entries))
	prevCity := ""
	for i, e := range entries {
		switch variant {
		case models.VariantLegacy:
			if n, err := strconv.Atoi(strings.TrimSpace(e.Floors)); err == nil && n == 3 {
				labels[i] = e.City
			}
		default:
			if i == 0 || e.City != prevCity {
				labels[i] = e.City
			}
		}
		prevCity = e.City
	}
	return labels
}

// DuplicateLines renders the duplicates section body in the plain style.
func DuplicateLines(t *Table) []string {
	lines := []string{t.HeaderLine()}
	for _, row := range t.Rows() {
		lines = append(lines, t.Rule(), t.Line(row))
	}
	if len(t.Rows()) == 0 {
		lines = append(lines, noDuplicatesMsg)
	}
	return lines
}

// HouseCountLines renders the house counts section body in the plain style.
func HouseCountLines(t *Table, groupStart []bool) []string {
	lines := []string{t.HeaderLine()}
	for i, row := range t.Rows() {
		if groupStart[i] {
			lines = append(lines, t.Rule())
		}
		lines = append(lines, t.Line(row))
	}
	return append(lines, t.Rule())
}

// boxed renders t with go-pretty, adding a separator before every marked row.
func boxed(t *Table, separatorBefore []bool) string {
	w := table.NewWriter()
	header := table.Row{}
	for _, h := range t.headers {
		header = append(header, h)
	}
	w.AppendHeader(header)
	for i, row := range t.Rows() {
		if i > 0 && separatorBefore != nil && separatorBefore[i] {
			w.AppendSeparator()
		}
		r := table.Row{}
		for _, c := range row {
			if n, err := strconv.Atoi(c); err == nil && c == strconv.Itoa(n) {
				r = append(r, n)
				continue
			}
			r = append(r, c)
		}
		w.AppendRow(r)
	}
	w.SetStyle(table.StyleDefault)
	return w.Render()
}

func (p *ReportPrinter) PrintDuplicates(rows *RowCounts) {
	out := p.console.Out()
	fmt.Fprintln(out)
	p.console.Title("Дубликаты:")
	fmt.Fprintln(out)
	t := p.DuplicatesTable(rows)
	if p.style == models.TableBoxed {
		if len(t.Rows()) == 0 {
			fmt.Fprintln(out, p.cell(noDuplicatesMsg))
		} else {
			fmt.Fprintln(out, boxed(t, nil))
		}
	} else {
		lines := DuplicateLines(t)
		if len(t.Rows()) == 0 {
			lines[len(lines)-1] = p.cell(noDuplicatesMsg)
		}
		fmt.Fprintln(out, strings.Join(lines, "\n"))
	}
	fmt.Fprintln(out)
}

func (p *ReportPrinter) PrintHouseCounts(houses *HouseCounts) {
	out := p.console.Out()
	p.console.Title("Количество домов в каждом городе по этажам:")
	fmt.Fprintln(out)
	t, groupStart := p.HouseCountsTable(houses)
	if p.style == models.TableBoxed {
		fmt.Fprintln(out, boxed(t, groupStart))
	} else {
		fmt.Fprintln(out, strings.Join(HouseCountLines(t, groupStart), "\n"))
	}
	fmt.Fprintln(out)
}
