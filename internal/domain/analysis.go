package domain

import (
	"fmt"
	"strings"
)

// Analysis rule thresholds. RainDelayThresholdPct drifted between 30 and 40
// across revisions of the original rule set; 30 is the canonical value here,
// kept as a named constant rather than a literal.
const (
	RainoutRiskThresholdPct = 70.0
	RainDelayThresholdPct   = 30.0
	DryAirMaxHumidityPct    = 30.0
	HumidAirMinHumidityPct  = 70.0
	HitterFriendlyMinTempF  = 85.0
	PitcherFriendlyMaxTempF = 50.0
	WindEffectMinMPH        = 8.0
)

// Factor labels tagging each analysis note.
const (
	FactorRoof        = "roof"
	FactorLightning   = "lightning"
	FactorSnow        = "snow"
	FactorRain        = "rain"
	FactorHumidity    = "humidity"
	FactorTemperature = "temperature"
	FactorWind        = "wind"
	FactorNeutral     = "neutral"
)

// AnalysisNote is one natural-language gameplay-impact note tagged with the
// weather factor that produced it.
type AnalysisNote struct {
	Factor string `json:"factor"`
	Text   string `json:"text"`
}

// roofClosedNote is the single note emitted for indoor play; no other rule
// is evaluated when the roof is closed.
var roofClosedNote = AnalysisNote{
	Factor: FactorRoof,
	Text:   "Controlled environment, zero weather impact.",
}

// neutralNote is emitted when no rule fires.
var neutralNote = AnalysisNote{
	Factor: FactorNeutral,
	Text:   "Fair conditions, no significant advantage either way.",
}

// GenerateAnalysis runs the ordered rule set against a resolved assessment
// and returns the notes to display. Rules are evaluated independently, so
// several notes may co-occur; the order is fixed and determines display
// order, not severity. The wind rule reads the effective (post-roof-override)
// classification, so this must run after ResolveRoof's override is applied.
func GenerateAnalysis(a GameWeatherAssessment) []AnalysisNote {
	if a.RoofClosed {
		return []AnalysisNote{roofClosedNote}
	}

	var notes []AnalysisNote

	// 1. Hazard flags.
	if a.Thunderstorm {
		notes = append(notes, AnalysisNote{
			Factor: FactorLightning,
			Text:   "Thunderstorms in the forecast. Lightning protocols can halt play at any point.",
		})
	}
	if a.Snow {
		notes = append(notes, AnalysisNote{
			Factor: FactorSnow,
			Text:   "Snow expected. Visibility and footing become a real factor for fielders.",
		})
	}

	// 2. Rain tier.
	switch {
	case a.PeakPrecipChancePct >= RainoutRiskThresholdPct:
		notes = append(notes, AnalysisNote{
			Factor: FactorRain,
			Text:   fmt.Sprintf("High rainout risk. Peak precipitation chance hits %.0f%% during play.", a.PeakPrecipChancePct),
		})
	case a.PeakPrecipChancePct >= RainDelayThresholdPct:
		notes = append(notes, AnalysisNote{
			Factor: FactorRain,
			Text:   "Rain could interrupt play. Watch for a delay around first pitch.",
		})
	}

	// 3. Temperature. Bounds do not overlap, so at most one fires.
	switch {
	case a.TemperatureF >= HitterFriendlyMinTempF:
		notes = append(notes, AnalysisNote{
			Factor: FactorTemperature,
			Text:   "Hot, thin air favors the hitters.",
		})
	case a.TemperatureF <= PitcherFriendlyMaxTempF:
		notes = append(notes, AnalysisNote{
			Factor: FactorTemperature,
			Text:   "Cold, dense air favors the pitchers.",
		})
	}

	// 4. Humidity. Skipped when the provider shape carried no humidity.
	if a.HasHumidity {
		switch {
		case a.HumidityPct <= DryAirMaxHumidityPct:
			notes = append(notes, AnalysisNote{
				Factor: FactorHumidity,
				Text:   "Dry air sharpens breaking balls and lets fly balls carry.",
			})
		case a.HumidityPct >= HumidAirMinHumidityPct:
			notes = append(notes, AnalysisNote{
				Factor: FactorHumidity,
				Text:   "Humid air flattens breaking balls and knocks down fly balls.",
			})
		}
	}

	// 5. Wind, only meaningful at sustained speed.
	if a.WindSpeedMPH >= WindEffectMinMPH {
		if note, ok := windNote(a.Wind.Category); ok {
			notes = append(notes, note)
		}
	}

	if len(notes) == 0 {
		return []AnalysisNote{neutralNote}
	}
	return notes
}

func windNote(category WindCategory) (AnalysisNote, bool) {
	var text string
	switch category {
	case WindBlowingOut:
		text = "Wind blowing out. Home run friendly."
	case WindBlowingIn:
		text = "Wind blowing in. Expect suppressed power numbers."
	case WindOutToRight:
		text = "Wind out to right field favors left-handed power."
	case WindOutToLeft:
		text = "Wind out to left field favors right-handed power."
	case WindInFromRight:
		text = "Wind in from right field suppresses left-handed power."
	case WindInFromLeft:
		text = "Wind in from left field suppresses right-handed power."
	case WindCrossRightToLeft, WindCrossLeftToRight:
		text = "Crosswind makes fly balls unpredictable. Outfield defense matters today."
	default:
		return AnalysisNote{}, false
	}
	return AnalysisNote{Factor: FactorWind, Text: text}, true
}

// JoinNotes renders an ordered note list as the final analysis text.
func JoinNotes(notes []AnalysisNote) string {
	parts := make([]string, len(notes))
	for i, note := range notes {
		parts[i] = note.Text
	}
	return strings.Join(parts, " ")
}
