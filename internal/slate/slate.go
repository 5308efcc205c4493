// Package slate builds the daily slate: every scheduled game for a date,
// each paired with its venue profile and weather-impact assessment. A failed
// fetch for one game degrades that game's card, never the slate.
package slate

import (
	"time"

	"github.com/couchcryptid/gameday-weather/internal/domain"
)

// GameCard is one slate entry. Venue is nil when the schedule references a
// park the directory does not know, in which case the assessment is
// unavailable.
type GameCard struct {
	Game       domain.GameContext           `json:"game"`
	Venue      *domain.VenueProfile         `json:"venue,omitempty"`
	Assessment domain.GameWeatherAssessment `json:"assessment"`
}

// Slate is the full output for one calendar date.
type Slate struct {
	Date    string     `json:"date"`
	Games   []GameCard `json:"games"`
	BuiltAt time.Time  `json:"built_at"`
}
