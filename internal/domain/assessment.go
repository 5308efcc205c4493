package domain

// Status reports whether an assessment carries real data.
type Status string

const (
	// StatusOK means weather data was fetched and the assessment is complete.
	StatusOK Status = "ok"
	// StatusTooEarly means the game date is beyond the forecast horizon; no
	// hourly data exists yet. Not an error condition.
	StatusTooEarly Status = "too-early"
	// StatusUnavailable means the provider fetch or parse failed; the
	// assessment carries zero-impact defaults.
	StatusUnavailable Status = "unavailable"
)

// GameWeatherAssessment is the engine's output for one game: point-in-time
// conditions at first pitch, windowed risk aggregates, roof state, wind
// classification, and the generated analysis notes. Constructed fresh per
// (game, venue) pair and immutable once produced. Point-in-time fields are
// meaningless unless Status is StatusOK.
type GameWeatherAssessment struct {
	Status Status `json:"status"`

	TemperatureF    float64 `json:"temperature_f,omitempty"`
	HumidityPct     float64 `json:"humidity_pct,omitempty"`
	HasHumidity     bool    `json:"-"`
	WindSpeedMPH    float64 `json:"wind_speed_mph,omitempty"`
	WindFromBearing float64 `json:"wind_from_bearing,omitempty"`

	PeakPrecipChancePct float64 `json:"peak_precip_chance_pct"`
	Thunderstorm        bool    `json:"thunderstorm,omitempty"`
	Snow                bool    `json:"snow,omitempty"`
	RoofClosed          bool    `json:"roof_closed,omitempty"`

	// RawWind is the classification computed from the actual bearings; Wind
	// is the effective classification after the roof-closed override. They
	// differ only for covered parks playing indoors.
	RawWind WindClassification `json:"raw_wind,omitzero"`
	Wind    WindClassification `json:"wind,omitzero"`

	// Window is the display-window slice used for the peak computation's
	// surrounding context.
	Window []HourlySample `json:"window,omitempty"`

	Notes    []AnalysisNote `json:"notes,omitempty"`
	Analysis string         `json:"analysis,omitempty"`
}

// UnavailableAssessment is the degraded output when the provider fetch or
// parse fails: zero-impact defaults, empty series, never fatal to the slate.
func UnavailableAssessment() GameWeatherAssessment {
	return GameWeatherAssessment{Status: StatusUnavailable}
}

// TooEarlyAssessment is the output for games beyond the forecast horizon.
func TooEarlyAssessment() GameWeatherAssessment {
	return GameWeatherAssessment{Status: StatusTooEarly}
}

// BuildAssessment assembles the full assessment for one game from its
// normalized hourly series: windowed aggregation, roof resolution, wind
// classification with the roof override, and the analysis notes, in that
// order. Returns an unavailable assessment when the series has no sample for
// the first-pitch hour.
func BuildAssessment(venue VenueProfile, startHour int, series HourlySeries) GameWeatherAssessment {
	firstPitch, ok := series.At(clampHour(startHour))
	if !ok {
		return UnavailableAssessment()
	}

	summary := AggregateWindow(series, startHour)

	a := GameWeatherAssessment{
		Status:              StatusOK,
		TemperatureF:        firstPitch.TemperatureF,
		HumidityPct:         firstPitch.HumidityPct,
		HasHumidity:         firstPitch.HasHumidity,
		WindSpeedMPH:        firstPitch.WindSpeedMPH,
		WindFromBearing:     firstPitch.WindFromBearing,
		PeakPrecipChancePct: summary.PeakPrecipChancePct,
		Thunderstorm:        summary.Thunderstorm,
		Snow:                summary.Snow,
		Window:              summary.Window,
	}

	a.RawWind = ClassifyWind(firstPitch.WindFromBearing, venue.OrientationBearing)
	a.Wind = a.RawWind

	// The roof override must land before the analysis rules run; the wind
	// rule reads the effective classification.
	a.RoofClosed = ResolveRoof(venue, summary.PeakPrecipChancePct, firstPitch.TemperatureF)
	if a.RoofClosed {
		a.WindSpeedMPH = 0
		a.Wind = RoofClosedWind()
	}

	a.Notes = GenerateAnalysis(a)
	a.Analysis = JoinNotes(a.Notes)

	return a
}

func clampHour(hour int) int {
	if hour < 0 {
		return 0
	}
	if hour > 23 {
		return 23
	}
	return hour
}
