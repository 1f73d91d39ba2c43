package watermillpublisher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/ark-network/countdown/internal/core/domain"
	"github.com/ark-network/countdown/internal/core/ports"
	log "github.com/sirupsen/logrus"
)

const (
	topic        = "countdown.notifications"
	bufferLength = 64
)

type publisher struct {
	pubsub *gochannel.GoChannel
}

// NewPublisher returns an in-process publisher. Every subscriber gets its
// own copy of each published notification, in publishing order.
func NewPublisher() ports.EventPublisher {
	pubsub := gochannel.NewGoChannel(
		gochannel.Config{
			OutputChannelBuffer:            bufferLength,
			BlockPublishUntilSubscriberAck: true,
		},
		watermill.NopLogger{},
	)
	return &publisher{pubsub}
}

func (p *publisher) Publish(
	_ context.Context, notifications ...domain.Notification,
) error {
	msgs := make([]*message.Message, 0, len(notifications))
	for _, n := range notifications {
		payload, err := json.Marshal(n)
		if err != nil {
			return fmt.Errorf("failed to serialize notification: %s", err)
		}
		msgs = append(msgs, message.NewMessage(n.Id, payload))
	}
	return p.pubsub.Publish(topic, msgs...)
}

func (p *publisher) Subscribe(ctx context.Context) (<-chan domain.Notification, error) {
	msgs, err := p.pubsub.Subscribe(ctx, topic)
	if err != nil {
		return nil, err
	}

	ch := make(chan domain.Notification, bufferLength)
	go func() {
		defer close(ch)
		for msg := range msgs {
			var n domain.Notification
			if err := json.Unmarshal(msg.Payload, &n); err != nil {
				log.WithError(err).Warn("failed to deserialize notification")
				msg.Ack()
				continue
			}

			// Publish waits for the ack, so a full subscriber drops the
			// notification instead of stalling the publisher.
			select {
			case ch <- n:
			case <-ctx.Done():
				msg.Ack()
				return
			default:
				log.WithField("seq", n.Seq).Warn(
					"subscriber buffer full, dropping notification",
				)
			}
			msg.Ack()
		}
	}()
	return ch, nil
}

func (p *publisher) Close() error {
	return p.pubsub.Close()
}
