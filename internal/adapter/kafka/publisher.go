// Package kafka publishes finished slates to a Kafka topic, one message per
// game card, keyed by gamePk so re-assessments of the same game land in the
// same partition.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/gameday-weather/internal/config"
	"github.com/couchcryptid/gameday-weather/internal/slate"
)

// Publisher produces game cards to the sink topic. It implements
// slate.Publisher.
type Publisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewPublisher creates a Kafka producer for the configured sink topic.
func NewPublisher(cfg *config.Config, logger *slog.Logger) *Publisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Publisher{writer: w, logger: logger}
}

// PublishSlate serializes every game card in the slate and publishes them in
// a single WriteMessages call.
func (p *Publisher) PublishSlate(ctx context.Context, s slate.Slate) error {
	if len(s.Games) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(s.Games))
	for i := range s.Games {
		msg, err := serializeToMessage(s.Games[i], s.BuiltAt)
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return err
	}
	p.logger.Info("published slate", "date", s.Date, "games", len(msgs))
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// serializeToMessage marshals a game card into a Kafka message.
func serializeToMessage(card slate.GameCard, builtAt time.Time) (kafkago.Message, error) {
	data, err := json.Marshal(card)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize game card: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(strconv.Itoa(card.Game.GamePk)),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "status", Value: []byte(card.Assessment.Status)},
			{Key: "assessed_at", Value: []byte(builtAt.Format(time.RFC3339))},
		},
	}, nil
}
