package publisher_test

import (
	"context"
	"testing"
	"time"

	"github.com/ark-network/countdown/internal/core/domain"
	"github.com/ark-network/countdown/internal/core/ports"
	redispublisher "github.com/ark-network/countdown/internal/infrastructure/publisher/redis"
	watermillpublisher "github.com/ark-network/countdown/internal/infrastructure/publisher/watermill"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

var (
	alice    = domain.HexToIdentity("0x00000000000000000000000000000000000000c3")
	treasury = domain.HexToIdentity("0x00000000000000000000000000000000000000b2")
)

func TestPublisherImplementations(t *testing.T) {
	redisOpts, err := redis.ParseURL("redis://localhost:6379/0")
	require.NoError(t, err)
	rdb := redis.NewClient(redisOpts)

	publishers := []struct {
		name      string
		publisher ports.EventPublisher
		skip      func() bool
	}{
		{"watermill", watermillpublisher.NewPublisher(), func() bool { return false }},
		{"redis", redispublisher.NewPublisher(rdb), func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			return rdb.Ping(ctx).Err() != nil
		}},
	}

	for _, tt := range publishers {
		t.Run(tt.name, func(t *testing.T) {
			if tt.skip() {
				t.Skip("redis not reachable")
			}
			defer func() {
				require.NoError(t, tt.publisher.Close())
			}()
			runPublisherTests(t, tt.publisher)
		})
	}
}

func runPublisherTests(t *testing.T, publisher ports.EventPublisher) {
	ctx, cancel := context.WithCancel(context.Background())

	ch1, err := publisher.Subscribe(ctx)
	require.NoError(t, err)
	ch2, err := publisher.Subscribe(ctx)
	require.NoError(t, err)

	notifications := []domain.Notification{
		{
			Seq:       1,
			Id:        uuid.New().String(),
			Type:      domain.BidNotification,
			Account:   alice,
			Amount:    domain.DefaultStakeAmount,
			Timestamp: 1700000000,
		},
		{
			Seq:            2,
			Id:             uuid.New().String(),
			Type:           domain.WinNotification,
			Account:        alice,
			Amount:         domain.NewAmount(9000000000000000),
			Treasury:       treasury,
			TreasuryAmount: domain.NewAmount(1000000000000000),
			Timestamp:      1700000069,
		},
	}
	require.NoError(t, publisher.Publish(context.Background(), notifications...))

	for _, ch := range []<-chan domain.Notification{ch1, ch2} {
		for _, expected := range notifications {
			select {
			case got := <-ch:
				require.Equal(t, expected.Seq, got.Seq)
				require.Equal(t, expected.Id, got.Id)
				require.Equal(t, expected.Type, got.Type)
				require.Equal(t, expected.Account, got.Account)
				require.True(t, expected.Amount.Equal(got.Amount))
				require.Equal(t, expected.Treasury, got.Treasury)
				require.True(t, expected.TreasuryAmount.Equal(got.TreasuryAmount))
				require.Equal(t, expected.Timestamp, got.Timestamp)
			case <-time.After(5 * time.Second):
				t.Fatal("timeout waiting for notification")
			}
		}
	}

	for seq := uint64(3); seq <= 40; seq++ {
		require.NoError(t, publisher.Publish(context.Background(), domain.Notification{
			Seq:       seq,
			Id:        uuid.New().String(),
			Type:      domain.BidNotification,
			Account:   alice,
			Amount:    domain.DefaultStakeAmount,
			Timestamp: 1700000000 + seq,
		}))
	}
	for _, ch := range []<-chan domain.Notification{ch1, ch2} {
		for seq := uint64(3); seq <= 40; seq++ {
			select {
			case got := <-ch:
				require.Equal(t, seq, got.Seq)
			case <-time.After(5 * time.Second):
				t.Fatal("timeout waiting for notification")
			}
		}
	}

	cancel()
	require.Eventually(t, func() bool {
		_, ok := <-ch1
		return !ok
	}, 5*time.Second, 10*time.Millisecond)
}

func TestWatermillSlowSubscriber(t *testing.T) {
	publisher := watermillpublisher.NewPublisher()
	defer func() {
		require.NoError(t, publisher.Close())
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := publisher.Subscribe(ctx)
	require.NoError(t, err)
	reader, err := publisher.Subscribe(ctx)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for seq := uint64(1); seq <= 200; seq++ {
			// nolint:errcheck
			publisher.Publish(context.Background(), domain.Notification{
				Seq:     seq,
				Id:      uuid.New().String(),
				Type:    domain.BidNotification,
				Account: alice,
				Amount:  domain.DefaultStakeAmount,
			})
		}
	}()

	var last uint64
	for {
		select {
		case <-done:
			return
		case got := <-reader:
			require.Greater(t, got.Seq, last)
			last = got.Seq
		case <-time.After(5 * time.Second):
			t.Fatal("publish blocked by an idle subscriber")
		}
	}
}
