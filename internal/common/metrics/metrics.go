// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ConfigurationsComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "autoconfig_configurations_computed_total",
			Help: "Total number of computed furnishing configurations",
		},
		[]string{"source"}, // "rule" or "fallback"
	)

	EstimatesComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "budget_estimates_computed_total",
			Help: "Total number of computed budget estimates",
		},
		[]string{"variant"}, // "furnishings" or "project"
	)

	MissingCatalogRefs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "budget_missing_catalog_refs_total",
			Help: "Total number of selection references that did not resolve against the catalog",
		},
		[]string{"kind"}, // "item", "template" or "size"
	)

	EstimateDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "budget_estimate_duration_seconds",
			Help: "Duration of budget aggregation in seconds",
		},
		[]string{"variant"},
	)
)
