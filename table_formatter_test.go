package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableWidths(t *testing.T) {
	table := NewTable("Город", "Количество")
	table.AppendRow("Москва-Сити", "1")
	table.AppendRow("Тула")

	assert.Equal(t, []int{11, 10}, table.Widths())
	assert.Equal(t, [][]string{{"Москва-Сити", "1"}, {"Тула", ""}}, table.Rows())
}

func TestTableLine(t *testing.T) {
	table := NewTable("a", "bb", "ccc")
	table.AppendRow("xxxx", "y", "z")

	assert.Equal(t, "a   \tbb\tccc", table.HeaderLine())
	assert.Equal(t, "xxxx\ty \tz  ", table.Line(table.Rows()[0]))
	assert.Equal(t, "    \t  \t   ", table.Line(nil))
}

func TestTableRule(t *testing.T) {
	table := NewTable("ab", "c", "def")
	// (2+4) + (1+4) + 3
	assert.Equal(t, strings.Repeat("-", 14), table.Rule())
}

func TestTableReserve(t *testing.T) {
	table := NewTable("a", "b")
	table.Reserve(0, "Петербург")
	table.Reserve(5, "ignored")
	table.AppendRow("", "1")

	assert.Equal(t, []int{9, 1}, table.Widths())
	assert.Equal(t, strings.Repeat(" ", 9)+"\t1", table.Line(table.Rows()[0]))
}
