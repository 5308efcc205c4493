package domain

// Retractable-roof closing thresholds. A roof crew shuts the park when rain
// is likely or the temperature is outside comfortable bounds.
const (
	RainRoofCloseThresholdPct = 30.0
	RoofCloseColdF            = 50.0
	RoofCloseHotF             = 95.0
)

// ResolveRoof decides whether a venue plays with the roof closed. Rules in
// order: a dome is always closed, independent of conditions; a retractable
// roof closes on likely rain or extreme temperature; a park with no roof
// capability is never closed.
func ResolveRoof(venue VenueProfile, peakPrecipChancePct, temperatureF float64) bool {
	if venue.HasDome {
		return true
	}
	if venue.HasRetractableRoof {
		return peakPrecipChancePct > RainRoofCloseThresholdPct ||
			temperatureF < RoofCloseColdF ||
			temperatureF > RoofCloseHotF
	}
	return false
}
