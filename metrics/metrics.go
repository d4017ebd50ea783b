package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type (
	Counter       = prometheus.Counter
	CounterOpts   = prometheus.CounterOpts
	CounterVec    = prometheus.CounterVec
	Gauge         = prometheus.Gauge
	GaugeOpts     = prometheus.GaugeOpts
	GaugeVec      = prometheus.GaugeVec
	Histogram     = prometheus.Histogram
	HistogramOpts = prometheus.HistogramOpts
	HistogramVec  = prometheus.HistogramVec
	Registerer    = prometheus.Registerer
	Gatherer      = prometheus.Gatherer
	Registry      = prometheus.Registry

	RegisterGatherer interface {
		Registerer
		Gatherer
	}
)

var (
	NewCounter      = prometheus.NewCounter
	NewCounterVec   = prometheus.NewCounterVec
	NewGauge        = prometheus.NewGauge
	NewGaugeVec     = prometheus.NewGaugeVec
	NewHistogram    = prometheus.NewHistogram
	NewHistogramVec = prometheus.NewHistogramVec
	NewRegistry     = prometheus.NewRegistry

	Default RegisterGatherer = prometheus.DefaultRegisterer.(*prometheus.Registry)
)

func MustRegister(collectors ...prometheus.Collector) {
	Default.MustRegister(collectors...)
}
