// Package domain implements the weather-impact analysis engine for scheduled
// ballgames: it turns raw hourly weather-provider output plus static venue
// metadata into a normalized, classified, human-readable assessment of how
// weather will affect play at a single park.
//
// # Data Source
//
// Hourly weather comes from Open-Meteo (https://open-meteo.com). Two response
// shapes exist, distinguished by which precipitation field is present:
//
//	Forecast shape: "precipitation_probability", a calibrated 0-100 percent
//	  chance of precipitation per hour. Used unchanged.
//	Archive shape:  "precipitation", raw hourly accumulation in inches.
//	  Served for historical dates, where no probability exists. Mapped to a
//	  percentage tier during normalization:
//	    ≥ 0.10 in → 80%   ≥ 0.05 in → 60%   ≥ 0.01 in → 30%   else → 0%
//	  Tier bounds are inclusive. The archive shape also omits relative
//	  humidity, so humidity-driven analysis is skipped for historical games.
//
// Exactly one of the two precipitation arrays is present per response; the
// normalizer resolves the difference at ingestion so every downstream
// component only ever sees a uniform percentage field.
//
// # WMO Weather Codes
//
// The optional "weather_code" array carries WMO 4677 condition codes. The
// engine cares about two hazard groups:
//
//	Thunderstorm: 95 (thunderstorm), 96, 99 (thunderstorm with hail)
//	Snow:         71, 73, 75 (snowfall), 77 (snow grains), 85, 86 (snow showers)
//
// An absent code array means both hazard flags default to false for the hour.
//
// # Wind Geometry
//
// A park's orientation bearing is the compass azimuth from home plate toward
// center field. Wind direction is reported as the bearing the wind blows FROM.
// The signed angular difference
//
//	diff = (windFrom - orientation + 360) mod 360
//
// partitions [0,360) into eight half-open 45° sectors:
//
//	[337.5,22.5)  blowing in      (from center field toward the plate)
//	[22.5,67.5)   in from right
//	[67.5,112.5)  cross, right to left
//	[112.5,157.5) out to left
//	[157.5,202.5) blowing out     (carries fly balls toward center)
//	[202.5,247.5) out to right
//	[247.5,292.5) cross, left to right
//	[292.5,337.5) in from left
//
// Classification is a total function; every bearing pair maps to exactly one
// sector.
//
// # Game Windows
//
// Aggregation distinguishes two hour ranges around first pitch:
//
//	Display window: start-1 through start+4, clamped to 0–23. Context shown in any
//	  hourly breakdown; also the range scanned for thunderstorm/snow flags.
//	Play window: start through start+3. The likely duration of the game; the peak
//	  precipitation chance is taken over this narrower range only, so an
//	  evening storm two hours after the final out cannot inflate the headline
//	  risk number.
//
// # Roof Logic
//
// Domed parks are always closed. Retractable roofs close when the peak
// precipitation chance exceeds 30%, or the first-pitch temperature falls
// below 50°F or above 95°F. A closed roof forces wind speed to zero and
// replaces the wind classification with a fixed indoor category before the
// analysis rules run.
package domain
