package redispublisher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ark-network/countdown/internal/core/domain"
	"github.com/ark-network/countdown/internal/core/ports"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const (
	channel      = "countdown:notifications"
	bufferLength = 64
)

type publisher struct {
	rdb *redis.Client
}

// NewPublisher fans notifications out over redis pub/sub so that observers
// attached to other processes receive them too.
func NewPublisher(rdb *redis.Client) ports.EventPublisher {
	return &publisher{rdb}
}

func NewPublisherFromURL(url string) (ports.EventPublisher, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %s", err)
	}
	return NewPublisher(redis.NewClient(opts)), nil
}

func (p *publisher) Publish(
	ctx context.Context, notifications ...domain.Notification,
) error {
	pipe := p.rdb.Pipeline()
	for _, n := range notifications {
		payload, err := json.Marshal(n)
		if err != nil {
			return fmt.Errorf("failed to serialize notification: %s", err)
		}
		pipe.Publish(ctx, channel, payload)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (p *publisher) Subscribe(ctx context.Context) (<-chan domain.Notification, error) {
	pubsub := p.rdb.Subscribe(ctx, channel)
	// Wait for confirmation that the subscription is in place.
	if _, err := pubsub.Receive(ctx); err != nil {
		// nolint:errcheck
		pubsub.Close()
		return nil, err
	}

	ch := make(chan domain.Notification, bufferLength)
	go func() {
		defer close(ch)
		// nolint:errcheck
		defer pubsub.Close()

		msgs := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var n domain.Notification
				if err := json.Unmarshal([]byte(msg.Payload), &n); err != nil {
					log.WithError(err).Warn("failed to deserialize notification")
					continue
				}
				select {
				case ch <- n:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return ch, nil
}

func (p *publisher) Close() error {
	return p.rdb.Close()
}
