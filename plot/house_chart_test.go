package plot

import (
	"bytes"
	"testing"

	"github.com/pivolan/address_stats/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawHouseCounts(t *testing.T) {
	entries := []models.HouseCount{
		{CityFloor: models.CityFloor{City: "Москва", Floors: "9"}, Houses: 12},
		{CityFloor: models.CityFloor{City: "Тула", Floors: "3"}, Houses: 4},
	}

	png, err := DrawHouseCounts(entries)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestDrawHouseCountsEmpty(t *testing.T) {
	_, err := DrawHouseCounts(nil)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestCalculateGridStep(t *testing.T) {
	tests := []struct {
		max  float64
		want float64
	}{
		{0, 1},
		{1, 1},
		{4, 1},
		{12, 5},
		{60, 20},
		{150, 50},
		{3000, 1000},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, calculateGridStep(tt.max), "max=%v", tt.max)
	}
}

func TestChartDimensions(t *testing.T) {
	w, h := chartDimensions(1)
	assert.Equal(t, minWidth, w)
	assert.Equal(t, 225, h)

	w, _ = chartDimensions(20)
	assert.Equal(t, 20*(barWidth+barSpacing)+2*paddingY, w)
}
