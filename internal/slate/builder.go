package slate

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/couchcryptid/gameday-weather/internal/domain"
	"github.com/couchcryptid/gameday-weather/internal/observability"
)

// Publisher emits finished slates to an external sink. Optional; a nil
// publisher disables publishing.
type Publisher interface {
	PublishSlate(ctx context.Context, s Slate) error
}

// Builder assembles the slate for a date: schedule lookup, then one
// concurrent assessment per game.
type Builder struct {
	schedule    domain.ScheduleSource
	weather     domain.WeatherSource
	venues      domain.VenueDirectory
	publisher   Publisher
	logger      *slog.Logger
	metrics     *observability.Metrics
	clock       clockwork.Clock
	concurrency int
	ready       atomic.Bool
}

// NewBuilder creates a Builder. Concurrency bounds the number of in-flight
// weather requests; publisher may be nil.
func NewBuilder(
	schedule domain.ScheduleSource,
	weather domain.WeatherSource,
	venues domain.VenueDirectory,
	publisher Publisher,
	logger *slog.Logger,
	metrics *observability.Metrics,
	concurrency int,
) *Builder {
	return &Builder{
		schedule:    schedule,
		weather:     weather,
		venues:      venues,
		publisher:   publisher,
		logger:      logger,
		metrics:     metrics,
		clock:       clockwork.NewRealClock(),
		concurrency: concurrency,
	}
}

// CheckReadiness returns nil once at least one slate has been built.
func (b *Builder) CheckReadiness(_ context.Context) error {
	if !b.ready.Load() {
		return errors.New("no slate built yet")
	}
	return nil
}

// Build assembles the slate for one date. Only the schedule fetch is fatal;
// every per-game failure degrades to an unavailable card.
func (b *Builder) Build(ctx context.Context, date time.Time) (Slate, error) {
	start := time.Now()

	games, err := b.schedule.Schedule(ctx, date)
	if err != nil {
		return Slate{}, err
	}

	cards := make([]GameCard, len(games))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)
	for i, game := range games {
		g.Go(func() error {
			cards[i] = b.assessGame(gctx, game)
			return nil
		})
	}
	// assessGame never returns an error; Wait only propagates cancellation.
	if err := g.Wait(); err != nil {
		return Slate{}, err
	}

	s := Slate{
		Date:    date.Format("2006-01-02"),
		Games:   cards,
		BuiltAt: b.clock.Now(),
	}

	b.metrics.SlateBuildDuration.Observe(time.Since(start).Seconds())
	b.metrics.SlateGames.Observe(float64(len(cards)))
	b.metrics.SlateReady.Set(1)
	b.ready.Store(true)

	b.publish(ctx, s)

	b.logger.Info("slate built",
		"date", s.Date,
		"games", len(cards),
		"duration", time.Since(start))

	return s, nil
}

// assessGame produces one card. Every failure path lands on a degraded
// assessment so a single provider hiccup cannot sink the slate.
func (b *Builder) assessGame(ctx context.Context, game domain.GameContext) GameCard {
	card := GameCard{Game: game}

	venue, ok := b.venues.Lookup(game.VenueID)
	if !ok {
		b.logger.Warn("unknown venue, skipping assessment",
			"game_pk", game.GamePk,
			"venue_id", game.VenueID,
			"venue_name", game.VenueName)
		b.metrics.AssessmentsTotal.WithLabelValues("no-venue").Inc()
		card.Assessment = domain.UnavailableAssessment()
		return card
	}
	card.Venue = &venue

	if domain.BeyondForecastHorizon(game.StartTime) {
		b.metrics.AssessmentsTotal.WithLabelValues(string(domain.StatusTooEarly)).Inc()
		card.Assessment = domain.TooEarlyAssessment()
		return card
	}

	localStart := game.StartTime.In(venue.Location())
	raw, err := b.weather.HourlyWeather(ctx, venue.Lat, venue.Lon, localStart)
	if err != nil {
		b.logger.Warn("weather fetch failed",
			"game_pk", game.GamePk,
			"venue", venue.Name,
			"error", err)
		b.metrics.AssessmentsTotal.WithLabelValues(string(domain.StatusUnavailable)).Inc()
		card.Assessment = domain.UnavailableAssessment()
		return card
	}

	series, err := domain.Normalize(raw)
	if err != nil {
		b.logger.Warn("weather normalization failed",
			"game_pk", game.GamePk,
			"venue", venue.Name,
			"error", err)
		b.metrics.AssessmentsTotal.WithLabelValues(string(domain.StatusUnavailable)).Inc()
		card.Assessment = domain.UnavailableAssessment()
		return card
	}

	card.Assessment = domain.BuildAssessment(venue, game.LocalStartHour(venue), series)
	b.metrics.AssessmentsTotal.WithLabelValues(string(card.Assessment.Status)).Inc()
	return card
}

func (b *Builder) publish(ctx context.Context, s Slate) {
	if b.publisher == nil {
		return
	}
	if err := b.publisher.PublishSlate(ctx, s); err != nil {
		b.logger.Error("slate publish failed", "date", s.Date, "error", err)
		b.metrics.PublishErrors.Inc()
		return
	}
	b.metrics.GamesPublished.Add(float64(len(s.Games)))
}
