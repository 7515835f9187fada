package api

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	registry *prometheus.Registry

	datasetRecords prometheus.Gauge
	datasetReloads prometheus.Counter
	framesComputed prometheus.Counter
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		datasetRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "volcano_dataset_records",
			Help: "Number of volcano records currently loaded.",
		}),
		datasetReloads: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "volcano_dataset_reloads_total",
			Help: "Number of dataset reloads since start.",
		}),
		framesComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "volcano_frames_computed_total",
			Help: "Number of activity frames computed for API clients.",
		}),
	}
	m.registry.MustRegister(m.datasetRecords, m.datasetReloads, m.framesComputed)
	return m
}
