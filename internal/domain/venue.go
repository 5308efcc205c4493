package domain

import "time"

// VenueProfile holds the static ballpark metadata the engine needs: where the
// park is, which way it faces, and whether it can be covered.
type VenueProfile struct {
	ID   int    `json:"id" validate:"required,gt=0"`
	Name string `json:"name" validate:"required"`
	Lat  float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon  float64 `json:"lon" validate:"gte=-180,lte=180"`

	// OrientationBearing is the compass azimuth in degrees from home plate
	// toward center field.
	OrientationBearing float64 `json:"bearing" validate:"gte=0,lt=360"`

	// HasDome marks a permanently enclosed park; the roof is closed
	// regardless of conditions. Mutually exclusive with HasRetractableRoof.
	HasDome            bool `json:"dome"`
	HasRetractableRoof bool `json:"roof"`

	// Timezone is the IANA zone name used to resolve the local first-pitch
	// hour, e.g. "America/New_York".
	Timezone string `json:"tz" validate:"required"`
}

// Location resolves the venue's IANA timezone, falling back to UTC if the
// zone name cannot be loaded.
func (v VenueProfile) Location() *time.Location {
	loc, err := time.LoadLocation(v.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Covered reports whether the park has any roof capability at all.
func (v VenueProfile) Covered() bool {
	return v.HasDome || v.HasRetractableRoof
}

// GameContext identifies one scheduled game. Team names and IDs are carried
// for display only; the engine reads the venue reference and start instant.
type GameContext struct {
	GamePk     int       `json:"game_pk"`
	StartTime  time.Time `json:"start_time"`
	VenueID    int       `json:"venue_id"`
	VenueName  string    `json:"venue_name"`
	AwayTeam   string    `json:"away_team"`
	AwayTeamID int       `json:"away_team_id"`
	HomeTeam   string    `json:"home_team"`
	HomeTeamID int       `json:"home_team_id"`
}

// LocalStartHour returns the first-pitch hour of day (0–23) in the venue's
// local time.
func (g GameContext) LocalStartHour(venue VenueProfile) int {
	return g.StartTime.In(venue.Location()).Hour()
}
