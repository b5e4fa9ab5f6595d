package main

import (
	"bufio"
	"encoding/csv"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/pivolan/address_stats/domain/models"
	"go.uber.org/zap"
)

var ErrMalformedRow = errors.New("malformed row")

const addressFields = 4

// xmlItem атрибуты элемента <item>
type xmlItem struct {
	City   string `xml:"city,attr"`
	Street string `xml:"street,attr"`
	House  string `xml:"house,attr"`
	Floor  string `xml:"floor,attr"`
}

// LoadStats describes what was read from one file.
type LoadStats struct {
	Rows    int
	Skipped int
}

type AddressLoader struct {
	Delimiter rune
	// formats are checked after unpacking, a zip entry may hide any extension
	formats []models.InputFormat
	logger  *zap.Logger
}

func NewAddressLoader(delimiter rune, formats []models.InputFormat, logger *zap.Logger) *AddressLoader {
	return &AddressLoader{Delimiter: delimiter, formats: formats, logger: logger}
}

func (l *AddressLoader) accepts(format models.InputFormat) bool {
	for _, f := range l.formats {
		if f == format {
			return true
		}
	}
	return false
}

// Load reads every address row of path. Either the whole file is counted or an error is returned.
func (l *AddressLoader) Load(path string) (*RowCounts, error) {
	src, err := openSource(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer src.Close()

	if !l.accepts(src.format) {
		return nil, fmt.Errorf("%s (%s): %w", path, src.format, ErrUnsupportedExtension)
	}

	rows := NewRowCounts()
	var stats LoadStats
	switch src.format {
	case models.FormatCSV:
		stats, err = l.readCSV(src, rows)
	case models.FormatXML:
		stats, err = readXML(src, rows)
	default:
		return nil, fmt.Errorf("%s (%s): %w", path, src.format, ErrUnsupportedExtension)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	l.logger.Info("file loaded",
		zap.String("path", path),
		zap.String("format", string(src.format)),
		zap.Int("rows", stats.Rows),
		zap.Int("skipped", stats.Skipped),
		zap.Int("distinct", rows.Len()),
	)
	return rows, nil
}

// readCSV пропускает первую строку (заголовок) и читает остальные записи.
// Строку образуют только первые четыре поля, лишние поля не учитываются.
func (l *AddressLoader) readCSV(r io.Reader, rows *RowCounts) (LoadStats, error) {
	stats := LoadStats{}
	br := bufio.NewReader(r)
	if _, err := br.ReadString('\n'); err != nil {
		if errors.Is(err, io.EOF) {
			return stats, nil
		}
		return stats, err
	}

	cr := csv.NewReader(br)
	cr.Comma = l.Delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return stats, nil
		}
		if err != nil {
			return stats, err
		}
		if len(record) < addressFields {
			line, _ := cr.FieldPos(0)
			// +1 за пропущенный заголовок
			return stats, fmt.Errorf("line %d: %d fields: %w", line+1, len(record), ErrMalformedRow)
		}
		rows.Add(models.AddressRow{City: record[0], Street: record[1], House: record[2], Floors: record[3]})
		stats.Rows++
	}
}

// readXML collects every <item> element regardless of nesting depth.
func readXML(r io.Reader, rows *RowCounts) (LoadStats, error) {
	stats := LoadStats{}
	decoder := xml.NewDecoder(r)
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return stats, nil
		}
		if err != nil {
			return stats, err
		}
		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != "item" {
			continue
		}
		var item xmlItem
		if err := decoder.DecodeElement(&item, &start); err != nil {
			return stats, err
		}
		row := models.AddressRow{City: item.City, Street: item.Street, House: item.House, Floors: item.Floor}
		if !row.Complete() {
			stats.Skipped++
			continue
		}
		rows.Add(row)
		stats.Rows++
	}
}
