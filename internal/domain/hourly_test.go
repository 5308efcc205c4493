package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flatHours builds a 24-hour amount-shape payload with constant values,
// which individual tests then perturb.
func flatHours(shape PrecipShape) ProviderHours {
	raw := ProviderHours{
		Shape:           shape,
		TemperatureF:    make([]float64, 24),
		WindSpeedMPH:    make([]float64, 24),
		WindFromBearing: make([]float64, 24),
	}
	for i := range raw.TemperatureF {
		raw.TemperatureF[i] = 72
		raw.WindSpeedMPH[i] = 5
		raw.WindFromBearing[i] = 180
	}
	switch shape {
	case ShapeProbability:
		raw.PrecipProbabilityPct = make([]float64, 24)
	case ShapeAmount:
		raw.PrecipAmountIn = make([]float64, 24)
	}
	return raw
}

func TestNormalize_AmountTierMapping(t *testing.T) {
	tests := []struct {
		name   string
		inches float64
		want   float64
	}{
		{"heavy", 0.12, 80},
		{"moderate", 0.07, 60},
		{"light", 0.02, 30},
		{"trace", 0.005, 0},
		{"dry", 0.00, 0},
		{"heavy boundary inclusive", 0.10, 80},
		{"moderate boundary inclusive", 0.05, 60},
		{"light boundary inclusive", 0.01, 30},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			raw := flatHours(ShapeAmount)
			raw.PrecipAmountIn[13] = tc.inches

			series, err := Normalize(raw)
			require.NoError(t, err)

			sample, ok := series.At(13)
			require.True(t, ok)
			assert.Equal(t, tc.want, sample.PrecipChancePct)
		})
	}
}

func TestNormalize_ProbabilityPassthrough(t *testing.T) {
	raw := flatHours(ShapeProbability)
	raw.PrecipProbabilityPct[19] = 45

	series, err := Normalize(raw)
	require.NoError(t, err)

	sample, ok := series.At(19)
	require.True(t, ok)
	assert.Equal(t, 45.0, sample.PrecipChancePct, "calibrated percentage used unchanged")
}

func TestNormalize_WeatherCodes(t *testing.T) {
	t.Run("thunderstorm codes", func(t *testing.T) {
		for _, code := range []int{95, 96, 99} {
			raw := flatHours(ShapeProbability)
			raw.WeatherCode = make([]int, 24)
			raw.WeatherCode[12] = code

			series, err := Normalize(raw)
			require.NoError(t, err)

			sample, _ := series.At(12)
			assert.True(t, sample.Thunderstorm, "code %d", code)
			assert.False(t, sample.Snow, "code %d", code)
		}
	})

	t.Run("snow codes", func(t *testing.T) {
		for _, code := range []int{71, 73, 75, 77, 85, 86} {
			raw := flatHours(ShapeProbability)
			raw.WeatherCode = make([]int, 24)
			raw.WeatherCode[12] = code

			series, err := Normalize(raw)
			require.NoError(t, err)

			sample, _ := series.At(12)
			assert.True(t, sample.Snow, "code %d", code)
			assert.False(t, sample.Thunderstorm, "code %d", code)
		}
	})

	t.Run("benign code", func(t *testing.T) {
		raw := flatHours(ShapeProbability)
		raw.WeatherCode = make([]int, 24)
		raw.WeatherCode[12] = 61 // light rain, not a hazard group

		series, err := Normalize(raw)
		require.NoError(t, err)

		sample, _ := series.At(12)
		assert.False(t, sample.Thunderstorm)
		assert.False(t, sample.Snow)
	})

	t.Run("absent code array defaults both flags false", func(t *testing.T) {
		raw := flatHours(ShapeProbability)

		series, err := Normalize(raw)
		require.NoError(t, err)

		for _, sample := range series {
			assert.False(t, sample.Thunderstorm)
			assert.False(t, sample.Snow)
		}
	})
}

func TestNormalize_HumidityPresence(t *testing.T) {
	t.Run("forecast shape carries humidity", func(t *testing.T) {
		raw := flatHours(ShapeProbability)
		raw.HumidityPct = make([]float64, 24)
		raw.HumidityPct[15] = 62

		series, err := Normalize(raw)
		require.NoError(t, err)

		sample, _ := series.At(15)
		assert.True(t, sample.HasHumidity)
		assert.Equal(t, 62.0, sample.HumidityPct)
	})

	t.Run("archive shape omits humidity", func(t *testing.T) {
		raw := flatHours(ShapeAmount)

		series, err := Normalize(raw)
		require.NoError(t, err)

		sample, _ := series.At(15)
		assert.False(t, sample.HasHumidity)
	})
}

func TestNormalize_OutOfRangeHoursDropped(t *testing.T) {
	raw := flatHours(ShapeProbability)
	// Provider occasionally returns more than 24 entries around DST; the
	// extras must be dropped silently, not errored.
	raw.TemperatureF = append(raw.TemperatureF, 70, 70)
	raw.WindSpeedMPH = append(raw.WindSpeedMPH, 5, 5)
	raw.WindFromBearing = append(raw.WindFromBearing, 180, 180)
	raw.PrecipProbabilityPct = append(raw.PrecipProbabilityPct, 0, 0)

	series, err := Normalize(raw)
	require.NoError(t, err)
	assert.Len(t, series, 24)
	_, ok := series.At(24)
	assert.False(t, ok)
}

func TestNormalize_ShortParallelArrays(t *testing.T) {
	raw := flatHours(ShapeProbability)
	raw.WindSpeedMPH = raw.WindSpeedMPH[:12]

	series, err := Normalize(raw)
	require.NoError(t, err)
	assert.Len(t, series, 12, "hours without wind data are dropped")
}

func TestNormalize_Errors(t *testing.T) {
	t.Run("empty temperature series", func(t *testing.T) {
		_, err := Normalize(ProviderHours{Shape: ShapeProbability})
		require.ErrorIs(t, err, ErrNoHourlyData)
	})

	t.Run("probability shape missing its array", func(t *testing.T) {
		raw := flatHours(ShapeProbability)
		raw.PrecipProbabilityPct = nil
		_, err := Normalize(raw)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "precipitation_probability")
	})

	t.Run("amount shape missing its array", func(t *testing.T) {
		raw := flatHours(ShapeAmount)
		raw.PrecipAmountIn = nil
		_, err := Normalize(raw)
		require.Error(t, err)
	})

	t.Run("unknown shape", func(t *testing.T) {
		raw := flatHours(ShapeProbability)
		raw.Shape = "mystery"
		_, err := Normalize(raw)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown precipitation shape")
	})
}
