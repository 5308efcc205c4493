package domain

import (
	"context"
	"time"
)

// WeatherSource fetches one venue-local day of raw hourly weather. The
// implementation chooses the archive or forecast shape based on the date.
type WeatherSource interface {
	HourlyWeather(ctx context.Context, lat, lon float64, date time.Time) (ProviderHours, error)
}

// ScheduleSource lists the games scheduled for a date.
type ScheduleSource interface {
	Schedule(ctx context.Context, date time.Time) ([]GameContext, error)
}

// VenueDirectory resolves a venue ID to its static profile.
type VenueDirectory interface {
	Lookup(id int) (VenueProfile, bool)
}
