package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BatchesAnalyzed tracks analyzed vote batches by mode and outcome
	BatchesAnalyzed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "integrity_engine_batches_analyzed_total",
			Help: "Number of vote batches analyzed",
		},
		[]string{"mode", "status"},
	)

	// AnomaliesFound tracks findings by category and severity
	AnomaliesFound = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "integrity_engine_anomalies_found_total",
			Help: "Number of anomaly findings produced",
		},
		[]string{"category", "severity"},
	)

	// RecordsSkipped tracks malformed records skipped during analysis
	RecordsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "integrity_engine_records_skipped_total",
			Help: "Number of malformed records skipped",
		},
	)

	// RollRecordsRemoved tracks voter roll records dropped by cleaning
	RollRecordsRemoved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "integrity_engine_roll_records_removed_total",
			Help: "Number of voter roll records removed during cleaning",
		},
		[]string{"reason"},
	)

	// BatchDuration tracks batch analysis duration
	BatchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "integrity_engine_batch_duration_seconds",
			Help: "Duration of batch analysis in seconds",
		},
		[]string{"operation"},
	)
)
