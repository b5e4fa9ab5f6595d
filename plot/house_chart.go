package plot

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/pivolan/address_stats/domain/models"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var ErrNoData = errors.New("nothing to draw")

const (
	barWidth   = 40
	barSpacing = 20
	paddingY   = 100
	minWidth   = 400
	chartRatio = 9.0 / 16.0
)

// DrawHouseCounts рисует столбчатую диаграмму количества домов по (город, этажность) в PNG
func DrawHouseCounts(entries []models.HouseCount) ([]byte, error) {
	if len(entries) == 0 {
		return nil, ErrNoData
	}
	bars := houseBars(entries)
	maxValue := findMaxValue(bars)
	step := calculateGridStep(maxValue)
	maxY := math.Ceil(maxValue/step) * step

	var ticks []chart.Tick
	for v := 0.0; v <= maxY; v += step {
		ticks = append(ticks, chart.Tick{Value: v, Label: fmt.Sprintf("%.0f", v)})
	}

	paddingX := customizePaddingXBottom(bars)
	width, height := chartDimensions(len(bars))
	graph := chart.BarChart{
		Title: "Количество домов по этажности",
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Bottom: paddingX,
			},
			FillColor: drawing.ColorWhite,
		},
		Width:      width,
		Height:     height + paddingX,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Bars:       bars,
		XAxis: chart.Style{
			StrokeWidth:         2,
			StrokeColor:         chart.ColorBlack,
			TextRotationDegrees: 88,
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxY},
			Ticks: ticks,
			GridMajorStyle: chart.Style{
				StrokeColor:     chart.ColorBlack,
				StrokeWidth:     1,
				StrokeDashArray: []float64{5.0, 5.0},
			},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("error rendering chart: %v", err)
	}
	return buffer.Bytes(), nil
}

func houseBars(entries []models.HouseCount) []chart.Value {
	bars := make([]chart.Value, 0, len(entries))
	for _, e := range entries {
		bars = append(bars, chart.Value{
			Value: float64(e.Houses),
			Label: fmt.Sprintf("%s / %s", e.City, e.Floors),
			Style: chart.Style{
				FillColor: drawing.ColorBlue.WithAlpha(160),
			},
		})
	}
	return bars
}

func chartDimensions(n int) (width, height int) {
	width = n*(barWidth+barSpacing) + 2*paddingY
	if width < minWidth {
		width = minWidth
	}
	return width, int(float64(width) * chartRatio)
}

// calculateGridStep returns a round tick step, never below one house.
func calculateGridStep(maxValue float64) float64 {
	if maxValue <= 1 {
		return 1
	}
	magnitude := math.Pow(10, math.Floor(math.Log10(maxValue)))
	normalized := maxValue / magnitude

	var step float64
	switch {
	case normalized <= 1:
		step = 0.2
	case normalized <= 2:
		step = 0.5
	case normalized <= 5:
		step = 1.0
	default:
		step = 2.0
	}
	return math.Max(1, math.Round(step*magnitude))
}

func findMaxValue(bars []chart.Value) float64 {
	max := 0.0
	for _, b := range bars {
		if b.Value > max {
			max = b.Value
		}
	}
	return max
}

func customizePaddingXBottom(values []chart.Value) int {
	count := 0
	for _, v := range values {
		if len(v.Label) > count {
			count = len(v.Label)
		}
	}
	return count * 8
}
