package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/pivolan/address_stats/config"
	"github.com/pivolan/address_stats/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestProcessor(t *testing.T, cfg *config.Config, input string) (*Processor, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cfg.NoColor = true
	return newProcessor(cfg, strings.NewReader(input), out, zaptest.NewLogger(t), clockwork.NewFakeClock()), out
}

func TestProcessFile(t *testing.T) {
	path := writeFile(t, "houses.csv", []byte(sampleCSV))
	proc, out := newTestProcessor(t, config.Default(), "")

	report, err := proc.ProcessFile(path)
	require.NoError(t, err)
	assert.Equal(t, []models.RowCount{{Row: moscowRow, Count: 2}}, report.Rows.Duplicates())
	assert.Equal(t, []models.HouseCount{
		{CityFloor: models.CityFloor{City: "Moscow", Floors: "9"}, Houses: 1},
		{CityFloor: models.CityFloor{City: "Tula", Floors: "3"}, Houses: 1},
	}, report.Houses.Entries())
	assert.Contains(t, out.String(), "[*] Время выполнения программы: 0.00000 сек.")
}

func TestProcessFileFailureProducesNoTables(t *testing.T) {
	path := writeFile(t, "bad.csv", []byte("h\nonly;two\n"))
	proc, out := newTestProcessor(t, config.Default(), "")

	report, err := proc.ProcessFile(path)
	assert.ErrorIs(t, err, ErrMalformedRow)
	assert.Nil(t, report)
	assert.NotContains(t, out.String(), "Дубликаты")
}

func TestRunInteractive(t *testing.T) {
	good := writeFile(t, "houses.csv", []byte(sampleCSV))
	bad := writeFile(t, "bad.csv", []byte("h\nonly;two\n"))
	input := strings.Join([]string{good, "what", "Y", bad, "n"}, "\n") + "\n"
	proc, out := newTestProcessor(t, config.Default(), input)

	require.NoError(t, proc.Run())
	text := out.String()
	assert.Equal(t, 1, strings.Count(text, "[O] Дубликаты:"))
	assert.Contains(t, text, "[!] Некорректный ввод. Введите 'y' или 'n'.")
	assert.Contains(t, text, "[!] Не удалось обработать файл")
	assert.Equal(t, 3, strings.Count(text, "Продолжить (y/n)?"))
}

func TestRunAbortsOnMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.csv")
	proc, out := newTestProcessor(t, config.Default(), missing+"\nn\n")

	require.NoError(t, proc.Run())
	assert.NotContains(t, out.String(), "Продолжить")
}

func TestRunAttemptsExceeded(t *testing.T) {
	cfg := config.Default()
	cfg.MaxAttempts = 1
	cfg.Variant = models.VariantLegacy
	xmlPath := writeFile(t, "houses.xml", []byte(sampleXML))
	proc, out := newTestProcessor(t, cfg, xmlPath+"\n")

	require.NoError(t, proc.Run())
	assert.Contains(t, out.String(), "Неверное расширение файла")
	assert.Contains(t, out.String(), "Превышено количество попыток")
}

func TestRunBatchLegacyZipWithXML(t *testing.T) {
	cfg := config.Default()
	cfg.Variant = models.VariantLegacy
	path := writeFile(t, "h.zip", zipOf(t, "houses.xml", []byte(sampleXML)))
	proc, out := newTestProcessor(t, cfg, "")

	_, err := proc.ProcessFile(path)
	assert.ErrorIs(t, err, ErrUnsupportedExtension)
	assert.EqualError(t, proc.RunBatch([]string{path}), "1 of 1 files failed")
	assert.NotContains(t, out.String(), "Дубликаты")
}

func TestRunBatch(t *testing.T) {
	good := writeFile(t, "houses.xml", []byte(sampleXML))
	proc, out := newTestProcessor(t, config.Default(), "")

	require.NoError(t, proc.RunBatch([]string{good}))
	assert.Contains(t, out.String(), "Moscow\tLenina")

	err := proc.RunBatch([]string{good, filepath.Join(t.TempDir(), "missing.csv"), writeFile(t, "a.txt", nil)})
	assert.EqualError(t, err, "2 of 3 files failed")
}

func TestProcessFileWritesChart(t *testing.T) {
	cfg := config.Default()
	cfg.ChartPath = filepath.Join(t.TempDir(), "houses.png")
	path := writeFile(t, "houses.csv", []byte(sampleCSV))
	proc, out := newTestProcessor(t, cfg, "")

	_, err := proc.ProcessFile(path)
	require.NoError(t, err)
	data, err := os.ReadFile(cfg.ChartPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
	assert.Contains(t, out.String(), "Диаграмма сохранена")
}
