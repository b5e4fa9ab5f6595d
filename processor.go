package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/pivolan/address_stats/plot"
	uuid "github.com/satori/go.uuid"
	"go.uber.org/zap"
)

// Processor связывает ввод пути, загрузку, агрегацию и вывод таблиц
type Processor struct {
	console   *Console
	resolver  *PathResolver
	loader    *AddressLoader
	printer   *ReportPrinter
	accepted  []string
	chartPath string
	clock     clockwork.Clock
	logger    *zap.Logger
}

// Report is what one processed file produced.
type Report struct {
	Rows   *RowCounts
	Houses *HouseCounts
}

// Run is the interactive loop: ask for a path, print the tables, ask whether to continue.
func (p *Processor) Run() error {
	for {
		path, err := p.resolver.Resolve()
		if errors.Is(err, ErrNoPath) {
			return nil
		}
		if errors.Is(err, ErrAttemptsExceeded) {
			p.console.Error("Превышено количество попыток ввода пути")
			return nil
		}
		if err != nil {
			return err
		}

		if _, err := p.ProcessFile(path); err != nil {
			p.console.Error("Не удалось обработать файл: %v", err)
		}

		next, err := p.console.Confirm("Продолжить (y/n)? ")
		if err != nil || !next {
			return nil
		}
	}
}

// RunBatch processes the given paths without any prompts.
func (p *Processor) RunBatch(paths []string) error {
	failed := 0
	for _, path := range paths {
		if err := CheckPath(path, p.accepted); err != nil {
			p.console.Error("%v", err)
			failed++
			continue
		}
		if _, err := p.ProcessFile(path); err != nil {
			p.console.Error("Не удалось обработать файл: %v", err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(paths))
	}
	return nil
}

// ProcessFile loads path and prints both tables. Nothing is printed when loading fails.
func (p *Processor) ProcessFile(path string) (*Report, error) {
	runID := uuid.NewV4().String()
	logger := p.logger.With(zap.String("run_id", runID), zap.String("path", path))
	start := p.clock.Now()

	rows, err := p.loader.Load(path)
	if err != nil {
		logger.Error("load failed", zap.Error(err))
		return nil, err
	}
	houses := AggregateHouses(rows)
	logger.Info("aggregated",
		zap.Int("rows_read", rows.Total()),
		zap.Int("distinct_rows", rows.Len()),
		zap.Int("duplicates", len(rows.Duplicates())),
		zap.Int("city_floor_pairs", houses.Len()),
	)

	p.printer.PrintDuplicates(rows)
	p.printer.PrintHouseCounts(houses)
	p.console.Info("Время выполнения программы: %.5f сек.\n", p.clock.Since(start).Seconds())

	if p.chartPath != "" {
		if err := p.writeChart(houses); err != nil {
			logger.Warn("chart export failed", zap.Error(err))
			p.console.Error("Не удалось сохранить диаграмму: %v", err)
		} else {
			p.console.Info("Диаграмма сохранена: %s", p.chartPath)
		}
	}
	return &Report{Rows: rows, Houses: houses}, nil
}

func (p *Processor) writeChart(houses *HouseCounts) error {
	png, err := plot.DrawHouseCounts(houses.Entries())
	if err != nil {
		return err
	}
	return os.WriteFile(p.chartPath, png, 0644)
}
