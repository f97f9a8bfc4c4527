package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Game Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameEventsPublished, Help: HelpTextEventsPublished},
		[]string{LabelType},
	)

	DaysEnded = promauto.NewCounter(
		prometheus.CounterOpts{Name: MetricNameDaysEnded, Help: HelpTextDaysEnded},
	)

	ItemsShipped = promauto.NewCounter(
		prometheus.CounterOpts{Name: MetricNameItemsShipped, Help: HelpTextItemsShipped},
	)

	ItemsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameItemsBought, Help: HelpTextItemsBought},
		[]string{LabelItem},
	)

	ItemsCrafted = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameItemsCrafted, Help: HelpTextItemsCrafted},
		[]string{LabelItem},
	)

	ItemsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameItemsSold, Help: HelpTextItemsSold},
		[]string{LabelItem},
	)

	GoldEarned = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameGoldEarned, Help: HelpTextGoldEarned},
		[]string{LabelSource},
	)

	GoldSpent = promauto.NewCounter(
		prometheus.CounterOpts{Name: MetricNameGoldSpent, Help: HelpTextGoldSpent},
	)

	QuestsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{Name: MetricNameQuestsCompleted, Help: HelpTextQuestsCompleted},
	)

	SavesMigrated = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameSavesMigrated, Help: HelpTextSavesMigrated},
		[]string{LabelFromVersion},
	)

	Actions = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameActions, Help: HelpTextActions},
		[]string{LabelAction, LabelOutcome},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{Name: MetricNameActiveSessions, Help: HelpTextActiveSessions},
	)
)
