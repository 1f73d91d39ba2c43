package metrics_test

import (
	"context"
	"testing"

	"github.com/ark-network/countdown/internal/core/domain"
	"github.com/ark-network/countdown/internal/infrastructure/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(reg)
	require.NoError(t, err)

	_, err = metrics.NewCollector(reg)
	require.Error(t, err)

	ch := make(chan domain.Notification, 3)
	ch <- domain.Notification{
		Seq: 1, Type: domain.BidNotification, Amount: domain.NewAmount(100), Timestamp: 10,
	}
	ch <- domain.Notification{
		Seq: 2, Type: domain.BidNotification, Amount: domain.NewAmount(100), Timestamp: 20,
	}
	ch <- domain.Notification{
		Seq: 3, Type: domain.WinNotification, Amount: domain.NewAmount(90),
		TreasuryAmount: domain.NewAmount(10), Timestamp: 89,
	}
	close(ch)

	collector.Run(context.Background(), ch)

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	require.Equal(t, 8, count)

	families, err := reg.Gather()
	require.NoError(t, err)
	values := make(map[string]float64)
	for _, f := range families {
		for _, m := range f.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				name := f.GetName()
				for _, l := range m.GetLabel() {
					name += "/" + l.GetValue()
				}
				values[name] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				values[f.GetName()] = m.GetGauge().GetValue()
			}
		}
	}

	require.Equal(t, float64(2), values["countdown_bids_total"])
	require.Equal(t, float64(1), values["countdown_wins_total"])
	require.Equal(t, float64(200), values["countdown_staked_amount_total"])
	require.Equal(t, float64(90), values["countdown_paid_out_amount_total/winner"])
	require.Equal(t, float64(10), values["countdown_paid_out_amount_total/treasury"])
	require.Equal(t, float64(20), values["countdown_last_bid_timestamp_seconds"])
	require.Equal(t, float64(89), values["countdown_last_win_timestamp_seconds"])
	require.Equal(t, float64(3), values["countdown_last_notification_seq"])
}
