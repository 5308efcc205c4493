// Package venues provides the static ballpark directory: id, coordinates,
// center-field orientation bearing, roof capability, and timezone for every
// park, embedded at build time and validated on load.
package venues

import (
	"encoding/json"
	"fmt"

	_ "embed"

	"github.com/go-playground/validator/v10"

	"github.com/couchcryptid/gameday-weather/internal/domain"
)

//go:embed stadiums.json
var stadiumsJSON []byte

// Directory resolves venue IDs to profiles. It implements
// domain.VenueDirectory and is immutable after Load.
type Directory struct {
	byID map[int]domain.VenueProfile
}

// Load parses and validates the embedded stadium dataset.
func Load() (*Directory, error) {
	return loadFrom(stadiumsJSON)
}

func loadFrom(data []byte) (*Directory, error) {
	var profiles []domain.VenueProfile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("parse stadium dataset: %w", err)
	}

	validate := validator.New()
	byID := make(map[int]domain.VenueProfile, len(profiles))
	for _, p := range profiles {
		if err := validate.Struct(p); err != nil {
			return nil, fmt.Errorf("invalid venue %d (%s): %w", p.ID, p.Name, err)
		}
		if p.HasDome && p.HasRetractableRoof {
			return nil, fmt.Errorf("invalid venue %d (%s): dome and retractable roof are mutually exclusive", p.ID, p.Name)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate venue id %d", p.ID)
		}
		byID[p.ID] = p
	}

	return &Directory{byID: byID}, nil
}

// Lookup returns the profile for a venue id. Games at unknown venues are not
// assessed; callers render a venue-id-only placeholder instead.
func (d *Directory) Lookup(id int) (domain.VenueProfile, bool) {
	p, ok := d.byID[id]
	return p, ok
}

// Len reports how many venues the directory holds.
func (d *Directory) Len() int {
	return len(d.byID)
}
