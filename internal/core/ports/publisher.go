package ports

import (
	"context"

	"github.com/ark-network/countdown/internal/core/domain"
)

// EventPublisher fans out committed notifications to live observers.
type EventPublisher interface {
	Publish(ctx context.Context, notifications ...domain.Notification) error
	Subscribe(ctx context.Context) (<-chan domain.Notification, error)
	Close() error
}
