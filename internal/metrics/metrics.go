package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation labels
const (
	OpInsert = "insert"
	OpRemove = "remove"
	OpPlay   = "play"
	OpLoad   = "load"
)

// Metrics holds the playlist collectors
type Metrics struct {
	SongsAdded      prometheus.Counter
	SongsRemoved    prometheus.Counter
	SongsPlayed     prometheus.Counter
	OperationErrors *prometheus.CounterVec
	PlaylistSize    prometheus.Gauge
	TotalWeight     prometheus.Gauge
}

// New registers the playlist collectors with reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SongsAdded: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "songplaylist_songs_added_total",
				Help: "Total number of songs added to the playlist",
			},
		),
		SongsRemoved: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "songplaylist_songs_removed_total",
				Help: "Total number of songs removed by name",
			},
		),
		SongsPlayed: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "songplaylist_songs_played_total",
				Help: "Total number of songs drawn by weighted play",
			},
		),
		OperationErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "songplaylist_operation_errors_total",
				Help: "Total number of failed playlist operations",
			},
			[]string{"operation", "reason"},
		),
		PlaylistSize: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "songplaylist_size",
				Help: "Number of songs currently in the playlist",
			},
		),
		TotalWeight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "songplaylist_total_weight",
				Help: "Sum of weights of songs currently in the playlist",
			},
		),
	}
}

// Observe records the current playlist shape
func (m *Metrics) Observe(size int, totalWeight int64) {
	m.PlaylistSize.Set(float64(size))
	m.TotalWeight.Set(float64(totalWeight))
}

// RecordError counts a failed operation
func (m *Metrics) RecordError(operation, reason string) {
	m.OperationErrors.WithLabelValues(operation, reason).Inc()
}
