package badgerdb

import (
	"context"

	"github.com/ark-network/countdown/internal/core/domain"
	"github.com/timshannon/badgerhold/v4"
)

const notificationSeqKey = "notifications"

type sequenceDTO struct {
	Value uint64
}

type notificationRepository struct {
	store *badgerhold.Store
}

// Append assigns consecutive sequence numbers to the given notifications.
// The counter is stored along with them so that a discarded transaction
// leaves no gap.
func (r *notificationRepository) Append(
	ctx context.Context, notifications ...domain.Notification,
) ([]domain.Notification, error) {
	var seq sequenceDTO
	if _, err := get(ctx, r.store, notificationSeqKey, &seq); err != nil {
		return nil, err
	}

	stored := make([]domain.Notification, 0, len(notifications))
	for _, n := range notifications {
		seq.Value++
		n.Seq = seq.Value
		if err := insert(ctx, r.store, n.Seq, n); err != nil {
			return nil, err
		}
		stored = append(stored, n)
	}

	if err := upsert(ctx, r.store, notificationSeqKey, seq); err != nil {
		return nil, err
	}
	return stored, nil
}

func (r *notificationRepository) List(
	ctx context.Context, fromSeq uint64, limit int,
) ([]domain.Notification, error) {
	query := badgerhold.Where("Seq").Ge(fromSeq).SortBy("Seq")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var notifications []domain.Notification
	if err := find(ctx, r.store, &notifications, query); err != nil {
		return nil, err
	}
	return notifications, nil
}
