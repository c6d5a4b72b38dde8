package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	OnlineConns = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "chat_online_conns",
		Help: "Current open realtime connections.",
	})

	BroadcastOK = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chat_broadcast_ok_total",
		Help: "Total events queued to a session successfully.",
	})
	BroadcastBackpressure = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chat_broadcast_backpressure_total",
		Help: "Total times a session's outbound queue was full and the session was dropped.",
	})

	PushQueued = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chat_push_queued_total",
		Help: "Total push events accepted onto the dispatch queue.",
	})
	PushDropped = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chat_push_dropped_total",
		Help: "Total push events dropped because the queue was full.",
	})
	PushSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chat_push_sent_total",
		Help: "Total device tokens delivered to the provider.",
	})
	PushFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chat_push_failed_total",
		Help: "Total provider calls that failed outright.",
	})
)

func Register() {
	prometheus.MustRegister(
		OnlineConns,
		BroadcastOK, BroadcastBackpressure,
		PushQueued, PushDropped, PushSent, PushFailed,
	)
}
