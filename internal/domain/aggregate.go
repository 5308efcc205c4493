package domain

import "time"

// Window geometry around first pitch, in hours.
const (
	displayWindowBefore = 1 // context shown before first pitch
	displayWindowAfter  = 4 // context shown after first pitch
	playWindowHours     = 4 // start through start+3, the likely game duration
)

// ForecastHorizonDays is how far ahead the provider publishes hourly
// forecasts. Games beyond it get a too-early assessment without a fetch.
const ForecastHorizonDays = 16

// WindowSummary is the game-level aggregation of a normalized hourly series.
type WindowSummary struct {
	// Window is the display window: start-1 through start+4, clamped to the hours
	// the series actually has.
	Window []HourlySample

	// PeakPrecipChancePct is the maximum precipitation chance over the play
	// window only (start through start+3). Context hours do not contribute.
	PeakPrecipChancePct float64

	// Thunderstorm and Snow are true if any hour of the display window
	// carries the flag.
	Thunderstorm bool
	Snow         bool
}

// AggregateWindow scans the hours around the given first-pitch hour and
// produces game-level summary metrics. An empty window yields a zero peak.
func AggregateWindow(series HourlySeries, startHour int) WindowSummary {
	var summary WindowSummary

	for hour := startHour - displayWindowBefore; hour <= startHour+displayWindowAfter; hour++ {
		if hour < 0 || hour > 23 {
			continue
		}
		sample, ok := series.At(hour)
		if !ok {
			continue
		}

		summary.Window = append(summary.Window, sample)
		summary.Thunderstorm = summary.Thunderstorm || sample.Thunderstorm
		summary.Snow = summary.Snow || sample.Snow

		if hour >= startHour && hour < startHour+playWindowHours {
			if sample.PrecipChancePct > summary.PeakPrecipChancePct {
				summary.PeakPrecipChancePct = sample.PrecipChancePct
			}
		}
	}

	return summary
}

// BeyondForecastHorizon reports whether the game date is too far in the
// future to have hourly data: more than ForecastHorizonDays past the current
// local date. Historical dates are never beyond the horizon.
func BeyondForecastHorizon(start time.Time) bool {
	today := civilDate(clock.Now())
	gameDay := civilDate(start)
	return gameDay.Sub(today) > ForecastHorizonDays*24*time.Hour
}

// civilDate reads the calendar day in the instant's own location and anchors
// it at UTC midnight, so subtracting two civil dates counts whole days.
func civilDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
