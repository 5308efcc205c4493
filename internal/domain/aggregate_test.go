package domain

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seriesWithChances builds a full-day series whose precipitation chance is
// given per hour; unlisted hours are zero.
func seriesWithChances(chances map[int]float64) HourlySeries {
	series := make(HourlySeries, 0, 24)
	for hour := 0; hour < 24; hour++ {
		series = append(series, HourlySample{
			Hour:            hour,
			TemperatureF:    70,
			PrecipChancePct: chances[hour],
		})
	}
	return series
}

func TestAggregateWindow_PeakRestrictedToPlayWindow(t *testing.T) {
	// Start hour 19: hours 19–22 contribute to the peak. Hour 18 and hour 23
	// are context only, even when their chance values are larger.
	series := seriesWithChances(map[int]float64{
		18: 90, // context before first pitch
		19: 10,
		20: 40,
		21: 35,
		22: 15,
		23: 95, // context after the play window
	})

	summary := AggregateWindow(series, 19)

	assert.Equal(t, 40.0, summary.PeakPrecipChancePct)

	hours := make([]int, len(summary.Window))
	for i, sample := range summary.Window {
		hours[i] = sample.Hour
	}
	assert.Equal(t, []int{18, 19, 20, 21, 22, 23}, hours, "display window spans start-1 through start+4")
}

func TestAggregateWindow_ClampsToDay(t *testing.T) {
	t.Run("late start", func(t *testing.T) {
		series := seriesWithChances(map[int]float64{22: 20, 23: 55})
		summary := AggregateWindow(series, 22)

		assert.Equal(t, 55.0, summary.PeakPrecipChancePct, "play window clamps at hour 23")
		hours := make([]int, len(summary.Window))
		for i, sample := range summary.Window {
			hours[i] = sample.Hour
		}
		assert.Equal(t, []int{21, 22, 23}, hours)
	})

	t.Run("midnight start", func(t *testing.T) {
		series := seriesWithChances(map[int]float64{0: 30})
		summary := AggregateWindow(series, 0)

		assert.Equal(t, 30.0, summary.PeakPrecipChancePct)
		assert.Equal(t, 0, summary.Window[0].Hour, "no hour -1")
	})
}

func TestAggregateWindow_EmptyWindow(t *testing.T) {
	summary := AggregateWindow(nil, 19)
	assert.Zero(t, summary.PeakPrecipChancePct)
	assert.Empty(t, summary.Window)
	assert.False(t, summary.Thunderstorm)
	assert.False(t, summary.Snow)
}

func TestAggregateWindow_HazardFlagsUseDisplayWindow(t *testing.T) {
	series := seriesWithChances(nil)
	series[18].Thunderstorm = true // context hour, still flags the game
	series[23].Snow = true

	summary := AggregateWindow(series, 19)
	assert.True(t, summary.Thunderstorm)
	assert.True(t, summary.Snow)

	// Outside the display window entirely: no flag.
	series2 := seriesWithChances(nil)
	series2[10].Thunderstorm = true
	summary2 := AggregateWindow(series2, 19)
	assert.False(t, summary2.Thunderstorm)
}

func TestBeyondForecastHorizon(t *testing.T) {
	now := time.Date(2026, time.June, 1, 9, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(now))
	defer SetClock(nil)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"today", now, false},
		{"historical", now.AddDate(0, 0, -30), false},
		{"at the horizon", now.AddDate(0, 0, 16), false},
		{"one past the horizon", now.AddDate(0, 0, 17), true},
		{"far future", now.AddDate(0, 2, 0), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BeyondForecastHorizon(tc.date))
		})
	}
}

func TestBeyondForecastHorizon_UsesLocalCivilDate(t *testing.T) {
	// 23:00 UTC on June 1; a game 16 days ahead by calendar date stays
	// inside the horizon regardless of time of day.
	SetClock(clockwork.NewFakeClockAt(time.Date(2026, time.June, 1, 23, 0, 0, 0, time.UTC)))
	defer SetClock(nil)

	game := time.Date(2026, time.June, 17, 1, 0, 0, 0, time.UTC)
	require.False(t, BeyondForecastHorizon(game))
}
