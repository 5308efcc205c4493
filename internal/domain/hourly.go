package domain

import (
	"errors"
	"fmt"
)

// PrecipShape identifies which precipitation representation a provider
// response carries. Exactly one is present per response.
type PrecipShape string

const (
	// ShapeProbability is the forecast shape: a calibrated percent chance.
	ShapeProbability PrecipShape = "probability"
	// ShapeAmount is the archive shape: raw hourly accumulation in inches.
	ShapeAmount PrecipShape = "amount"
)

// Precipitation tier bounds for the amount-based archive shape, inclusive.
const (
	heavyRainInches    = 0.10 // → 80%
	moderateRainInches = 0.05 // → 60%
	lightRainInches    = 0.01 // → 30%
)

// ErrNoHourlyData is returned by Normalize when the provider response carries
// no usable hourly temperature series.
var ErrNoHourlyData = errors.New("no hourly data in provider response")

// ProviderHours is the raw hourly payload extracted from a provider response,
// parallel arrays indexed by hour of day. HumidityPct and WeatherCode may be
// empty; the archive shape never carries humidity.
type ProviderHours struct {
	Shape           PrecipShape
	TemperatureF    []float64
	HumidityPct     []float64
	WindSpeedMPH    []float64
	WindFromBearing []float64

	// PrecipProbabilityPct is set for ShapeProbability responses,
	// PrecipAmountIn for ShapeAmount. The other is nil.
	PrecipProbabilityPct []float64
	PrecipAmountIn       []float64

	WeatherCode []int
}

// HourlySample is one normalized hour of venue weather. PrecipChancePct is
// always a calibrated 0–100 percentage regardless of which shape the provider
// returned.
type HourlySample struct {
	Hour            int     `json:"hour"`
	TemperatureF    float64 `json:"temperature_f"`
	HumidityPct     float64 `json:"humidity_pct,omitempty"`
	HasHumidity     bool    `json:"-"`
	PrecipChancePct float64 `json:"precip_chance_pct"`
	Thunderstorm    bool    `json:"thunderstorm,omitempty"`
	Snow            bool    `json:"snow,omitempty"`
	WindSpeedMPH    float64 `json:"wind_speed_mph"`
	WindFromBearing float64 `json:"wind_from_bearing"`
}

// HourlySeries is the normalized hourly weather for one venue-local day,
// ordered by hour. Hours the provider did not report are simply absent.
type HourlySeries []HourlySample

// At returns the sample for the given hour of day, if present.
func (s HourlySeries) At(hour int) (HourlySample, bool) {
	for _, sample := range s {
		if sample.Hour == hour {
			return sample, true
		}
	}
	return HourlySample{}, false
}

// Normalize reconciles a provider's raw hourly arrays into an HourlySeries.
// Hour indices outside 0–23 are dropped silently; hours missing any of the
// required parallel arrays are dropped as well. An empty temperature series
// or an unknown shape is an error, which callers degrade to an unavailable
// assessment.
func Normalize(raw ProviderHours) (HourlySeries, error) {
	if len(raw.TemperatureF) == 0 {
		return nil, ErrNoHourlyData
	}

	switch raw.Shape {
	case ShapeProbability:
		if raw.PrecipProbabilityPct == nil {
			return nil, fmt.Errorf("probability shape without precipitation_probability array")
		}
	case ShapeAmount:
		if raw.PrecipAmountIn == nil {
			return nil, fmt.Errorf("amount shape without precipitation array")
		}
	default:
		return nil, fmt.Errorf("unknown precipitation shape %q", raw.Shape)
	}

	series := make(HourlySeries, 0, 24)
	for hour := range raw.TemperatureF {
		if hour > 23 {
			break
		}
		if hour >= len(raw.WindSpeedMPH) || hour >= len(raw.WindFromBearing) {
			continue
		}

		sample := HourlySample{
			Hour:            hour,
			TemperatureF:    raw.TemperatureF[hour],
			WindSpeedMPH:    raw.WindSpeedMPH[hour],
			WindFromBearing: raw.WindFromBearing[hour],
		}

		if hour < len(raw.HumidityPct) {
			sample.HumidityPct = raw.HumidityPct[hour]
			sample.HasHumidity = true
		}

		switch raw.Shape {
		case ShapeProbability:
			if hour < len(raw.PrecipProbabilityPct) {
				sample.PrecipChancePct = raw.PrecipProbabilityPct[hour]
			}
		case ShapeAmount:
			if hour < len(raw.PrecipAmountIn) {
				sample.PrecipChancePct = precipChanceFromAmount(raw.PrecipAmountIn[hour])
			}
		}

		if hour < len(raw.WeatherCode) {
			sample.Thunderstorm, sample.Snow = classifyWeatherCode(raw.WeatherCode[hour])
		}

		series = append(series, sample)
	}

	return series, nil
}

// precipChanceFromAmount maps a raw hourly accumulation in inches to a
// percentage tier. Lower bounds are inclusive.
func precipChanceFromAmount(inches float64) float64 {
	switch {
	case inches >= heavyRainInches:
		return 80
	case inches >= moderateRainInches:
		return 60
	case inches >= lightRainInches:
		return 30
	default:
		return 0
	}
}

// classifyWeatherCode flags the hazard groups of a WMO 4677 condition code.
func classifyWeatherCode(code int) (thunderstorm, snow bool) {
	switch code {
	case 95, 96, 99:
		return true, false
	case 71, 73, 75, 77, 85, 86:
		return false, true
	default:
		return false, false
	}
}
