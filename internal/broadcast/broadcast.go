package broadcast

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/vakit/internal/athan"
	"github.com/Nixie-Tech-LLC/vakit/internal/model"
	"github.com/Nixie-Tech-LLC/vakit/internal/mqtt"
)

// ScreenLister is the part of db.Store the broadcaster reads.
type ScreenLister interface {
	ListPairedScreens(ctx context.Context) ([]model.Screen, error)
}

// Broadcaster pushes each paired screen's daily times over MQTT.
type Broadcaster struct {
	screens   ScreenLister
	publisher mqtt.Publisher
	interval  time.Duration
	now       func() time.Time
}

func New(screens ScreenLister, publisher mqtt.Publisher, interval time.Duration) *Broadcaster {
	return &Broadcaster{
		screens:   screens,
		publisher: publisher,
		interval:  interval,
		now:       time.Now,
	}
}

// PublishScreen sends today's times to a single paired screen.
func (b *Broadcaster) PublishScreen(s model.Screen) error {
	if s.DeviceID == nil || !s.Paired {
		return fmt.Errorf("screen %d is not paired", s.ID)
	}
	now := b.now()
	day, m, err := athan.ScreenDay(s, now)
	if err != nil {
		return err
	}
	payload, err := athan.NewMessage(*s.DeviceID, day, m, now)
	if err != nil {
		return fmt.Errorf("encode times for screen %d: %w", s.ID, err)
	}
	return b.publisher.Publish(mqtt.AthanTopic(*s.DeviceID), payload)
}

// PublishAll sends to every paired screen and returns the number reached.
// A failing screen does not stop the others.
func (b *Broadcaster) PublishAll(ctx context.Context) (int, error) {
	screens, err := b.screens.ListPairedScreens(ctx)
	if err != nil {
		return 0, fmt.Errorf("list paired screens: %w", err)
	}
	var (
		sent int
		errs []error
	)
	for _, s := range screens {
		if err := b.PublishScreen(s); err != nil {
			log.Error().Err(err).Int("screenID", s.ID).Msg("failed to publish athan times")
			errs = append(errs, err)
			continue
		}
		sent++
	}
	return sent, errors.Join(errs...)
}

// Run publishes immediately and then every interval until ctx is done.
func (b *Broadcaster) Run(ctx context.Context) {
	log.Info().Dur("interval", b.interval).Msg("starting athan broadcaster")
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()
	for {
		sent, err := b.PublishAll(ctx)
		if err != nil {
			log.Error().Err(err).Int("sent", sent).Msg("athan broadcast incomplete")
		} else {
			log.Info().Int("sent", sent).Msg("athan broadcast done")
		}
		select {
		case <-ctx.Done():
			log.Info().Msg("athan broadcaster stopped")
			return
		case <-ticker.C:
		}
	}
}
