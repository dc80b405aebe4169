package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGrowth(t *testing.T) {
	cases := []struct {
		name     string
		current  int64
		previous int64
		want     float64
	}{
		{"flat", 100, 100, 0},
		{"both zero", 0, 0, 0},
		{"up half", 150, 100, 50.0},
		{"down half", 50, 100, -50.0},
		{"zero baseline", 10, 0, 100},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Growth(decimal.NewFromInt(c.current), decimal.NewFromInt(c.previous))
			assert.Equal(t, c.want, got)
		})
	}
}

func TestGrowthRounding(t *testing.T) {
	// 1/3 growth is 33.333..., one decimal only
	assert.Equal(t, 33.3, GrowthInt(4, 3))
	assert.Equal(t, -33.3, GrowthFloat(2, 3))
}

func TestGrowthNegativeBaseline(t *testing.T) {
	// sign preserved either way
	assert.Equal(t, -100.0, GrowthInt(0, 5))
}

func TestPctOf(t *testing.T) {
	assert.Equal(t, 0.0, pctOf(3, 0))
	assert.Equal(t, 50.0, pctOf(1, 2))
	assert.Equal(t, 33.3, pctOf(1, 3))
	assert.Equal(t, 66.7, pctOf(2, 3))
}

func TestPctOfDecimal(t *testing.T) {
	assert.Equal(t, 0.0, pctOfDecimal(decimal.NewFromInt(5), decimal.Zero))
	assert.Equal(t, 33.3, pctOfDecimal(decimal.NewFromInt(60000), decimal.NewFromInt(180000)))
}
