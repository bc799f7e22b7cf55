// SPDX-License-Identifier: MIT

package subalgebra

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is the registry holding this package's collectors. Expose it with
// promhttp.HandlerFor(subalgebra.Metrics, …) or gather it directly.
var Metrics = prometheus.NewRegistry()

var (
	closureIterations = promauto.With(Metrics).NewHistogram(prometheus.HistogramOpts{
		Name:    "lielath_closure_iterations",
		Help:    "Saturation passes per closure computation",
		Buckets: []float64{1, 2, 3, 4, 6, 8, 12, 16},
	})

	bracketEvaluations = promauto.With(Metrics).NewCounter(prometheus.CounterOpts{
		Name: "lielath_closure_bracket_evaluations_total",
		Help: "Ambient brackets evaluated by the closure engine",
	})

	registryLookups = promauto.With(Metrics).NewCounterVec(prometheus.CounterOpts{
		Name: "lielath_registry_lookups_total",
		Help: "Subalgebra registry lookups by result",
	}, []string{"result"})

	idealTests = promauto.With(Metrics).NewCounterVec(prometheus.CounterOpts{
		Name: "lielath_ideal_tests_total",
		Help: "IsIdeal calls by result (hit = served from cache)",
	}, []string{"result"})
)
