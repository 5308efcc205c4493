package domain

import "math"

// WindCategory is one of the eight directional wind sectors relative to the
// park's orientation, plus the fixed indoor value used when the roof is closed.
type WindCategory string

const (
	WindBlowingIn        WindCategory = "blowing-in"
	WindInFromRight      WindCategory = "in-from-right"
	WindCrossRightToLeft WindCategory = "cross-right-to-left"
	WindOutToLeft        WindCategory = "out-to-left"
	WindBlowingOut       WindCategory = "blowing-out"
	WindOutToRight       WindCategory = "out-to-right"
	WindCrossLeftToRight WindCategory = "cross-left-to-right"
	WindInFromLeft       WindCategory = "in-from-left"

	// WindRoofClosed is the override category for indoor play. It carries no
	// directional arrow.
	WindRoofClosed WindCategory = "roof-closed"
)

// WindClassification pairs a sector with its display label and arrow glyph.
type WindClassification struct {
	Category WindCategory `json:"category"`
	Label    string       `json:"label"`
	Arrow    string       `json:"arrow,omitempty"`
}

// ClassifyWind maps a wind-from bearing and a park orientation bearing to one
// of the eight directional sectors. Total function: every bearing pair maps to
// exactly one sector. See the package documentation for the sector geometry.
func ClassifyWind(windFromBearing, orientationBearing float64) WindClassification {
	diff := math.Mod(windFromBearing-orientationBearing, 360)
	if diff < 0 {
		diff += 360
	}

	switch {
	case diff >= 337.5 || diff < 22.5:
		return WindClassification{Category: WindBlowingIn, Label: "Blowing in", Arrow: "⬇"}
	case diff < 67.5:
		return WindClassification{Category: WindInFromRight, Label: "In from right", Arrow: "↙"}
	case diff < 112.5:
		return WindClassification{Category: WindCrossRightToLeft, Label: "Cross (R to L)", Arrow: "⬅"}
	case diff < 157.5:
		return WindClassification{Category: WindOutToLeft, Label: "Out to left", Arrow: "↖"}
	case diff < 202.5:
		return WindClassification{Category: WindBlowingOut, Label: "Blowing out", Arrow: "⬆"}
	case diff < 247.5:
		return WindClassification{Category: WindOutToRight, Label: "Out to right", Arrow: "↗"}
	case diff < 292.5:
		return WindClassification{Category: WindCrossLeftToRight, Label: "Cross (L to R)", Arrow: "➡"}
	default:
		return WindClassification{Category: WindInFromLeft, Label: "In from left", Arrow: "↘"}
	}
}

// RoofClosedWind returns the fixed indoor classification substituted for the
// raw sector once the roof-state resolver decides the roof is closed.
func RoofClosedWind() WindClassification {
	return WindClassification{Category: WindRoofClosed, Label: "Roof closed"}
}
