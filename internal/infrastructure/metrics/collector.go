package metrics

import (
	"context"

	"github.com/ark-network/countdown/internal/core/domain"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

const namespace = "countdown"

// Collector turns the stream of notifications into prometheus metrics.
type Collector struct {
	bids         prometheus.Counter
	wins         prometheus.Counter
	stakedTotal  prometheus.Counter
	paidOutTotal *prometheus.CounterVec
	lastBidTime  prometheus.Gauge
	lastWinTime  prometheus.Gauge
	lastSeq      prometheus.Gauge
}

func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		bids: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bids_total",
			Help:      "Number of accepted deposits.",
		}),
		wins: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wins_total",
			Help:      "Number of claimed rounds.",
		}),
		stakedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "staked_amount_total",
			Help:      "Sum of the deposited stakes, in base units.",
		}),
		paidOutTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "paid_out_amount_total",
			Help:      "Sum of the paid out shares, in base units.",
		}, []string{"receiver"}),
		lastBidTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_bid_timestamp_seconds",
			Help:      "Time of the last accepted deposit.",
		}),
		lastWinTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_win_timestamp_seconds",
			Help:      "Time of the last claimed reward.",
		}),
		lastSeq: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_notification_seq",
			Help:      "Sequence number of the last observed notification.",
		}),
	}

	for _, collector := range []prometheus.Collector{
		c.bids, c.wins, c.stakedTotal, c.paidOutTotal,
		c.lastBidTime, c.lastWinTime, c.lastSeq,
	} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Collector) Observe(n domain.Notification) {
	c.lastSeq.Set(float64(n.Seq))

	switch n.Type {
	case domain.BidNotification:
		c.bids.Inc()
		c.stakedTotal.Add(n.Amount.Float64())
		c.lastBidTime.Set(float64(n.Timestamp))
	case domain.WinNotification:
		c.wins.Inc()
		c.paidOutTotal.WithLabelValues("winner").Add(n.Amount.Float64())
		c.paidOutTotal.WithLabelValues("treasury").Add(n.TreasuryAmount.Float64())
		c.lastWinTime.Set(float64(n.Timestamp))
	default:
		log.Debugf("metrics: skipping unknown notification type %s", n.Type)
	}
}

// Run observes notifications until the channel is closed or ctx is done.
func (c *Collector) Run(ctx context.Context, notifications <-chan domain.Notification) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-notifications:
			if !ok {
				return
			}
			c.Observe(n)
		}
	}
}
