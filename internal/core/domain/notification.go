package domain

import "github.com/google/uuid"

type NotificationType string

const (
	BidNotification NotificationType = "OnBid"
	WinNotification NotificationType = "OnWin"
)

// Notification is the externally observable record of an accepted deposit or
// of a claimed reward. Seq is assigned by the store on append.
type Notification struct {
	Seq            uint64
	Id             string
	Type           NotificationType
	Account        Identity
	Amount         Amount
	Treasury       Identity
	TreasuryAmount Amount
	Timestamp      uint64
}

// NotificationsFromEvents maps the game events that are meant to be
// observed to notifications, skipping the others.
func NotificationsFromEvents(events []GameEvent) []Notification {
	notifications := make([]Notification, 0, len(events))
	for _, event := range events {
		switch e := event.(type) {
		case BidPlaced:
			notifications = append(notifications, Notification{
				Id:        uuid.New().String(),
				Type:      BidNotification,
				Account:   e.Bidder,
				Amount:    e.Amount,
				Timestamp: e.Timestamp,
			})
		case RewardClaimed:
			notifications = append(notifications, Notification{
				Id:             uuid.New().String(),
				Type:           WinNotification,
				Account:        e.Winner,
				Amount:         e.Amount,
				Treasury:       e.Treasury,
				TreasuryAmount: e.TreasuryAmount,
				Timestamp:      e.Timestamp,
			})
		}
	}
	return notifications
}
