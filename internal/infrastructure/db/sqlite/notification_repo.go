package sqlitedb

import (
	"context"
	"math"

	"github.com/ark-network/countdown/internal/core/domain"
	"github.com/ark-network/countdown/internal/infrastructure/db/sqlite/sqlc/queries"
)

type notificationRepository struct {
	querier *queries.Queries
}

func (r *notificationRepository) Append(
	ctx context.Context, notifications ...domain.Notification,
) ([]domain.Notification, error) {
	querier := querierFor(ctx, r.querier)

	stored := make([]domain.Notification, 0, len(notifications))
	for _, n := range notifications {
		seq, err := querier.InsertNotification(ctx, queries.InsertNotificationParams{
			ID:             n.Id,
			Type:           string(n.Type),
			Account:        formatIdentity(n.Account),
			Amount:         n.Amount.String(),
			Treasury:       formatIdentity(n.Treasury),
			TreasuryAmount: n.TreasuryAmount.String(),
			Timestamp:      int64(n.Timestamp),
		})
		if err != nil {
			return nil, err
		}
		n.Seq = uint64(seq)
		stored = append(stored, n)
	}
	return stored, nil
}

func (r *notificationRepository) List(
	ctx context.Context, fromSeq uint64, limit int,
) ([]domain.Notification, error) {
	if fromSeq > math.MaxInt64 {
		return []domain.Notification{}, nil
	}
	// A negative limit means no limit in sqlite.
	queryLimit := int64(-1)
	if limit > 0 {
		queryLimit = int64(limit)
	}

	rows, err := querierFor(ctx, r.querier).SelectNotifications(
		ctx, queries.SelectNotificationsParams{
			Seq:   int64(fromSeq),
			Limit: queryLimit,
		},
	)
	if err != nil {
		return nil, err
	}

	notifications := make([]domain.Notification, 0, len(rows))
	for _, row := range rows {
		n, err := toNotification(row)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

func toNotification(row queries.Notification) (domain.Notification, error) {
	account, err := parseIdentity(row.Account)
	if err != nil {
		return domain.Notification{}, err
	}
	treasury, err := parseIdentity(row.Treasury)
	if err != nil {
		return domain.Notification{}, err
	}
	amount, err := domain.AmountFromString(row.Amount)
	if err != nil {
		return domain.Notification{}, err
	}
	treasuryAmount, err := domain.AmountFromString(row.TreasuryAmount)
	if err != nil {
		return domain.Notification{}, err
	}
	return domain.Notification{
		Seq:            uint64(row.Seq),
		Id:             row.ID,
		Type:           domain.NotificationType(row.Type),
		Account:        account,
		Amount:         amount,
		Treasury:       treasury,
		TreasuryAmount: treasuryAmount,
		Timestamp:      uint64(row.Timestamp),
	}, nil
}
