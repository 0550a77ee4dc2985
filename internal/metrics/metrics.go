/*
Copyright 2025 The easelcalc Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package metrics defines the Prometheus instruments of the easel engine.
// Instruments are registered against a caller-supplied Registerer so tests and
// independent engines never share counters.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "easelcalc"

// CacheMetrics instruments a fit cache.
type CacheMetrics struct {
	Hits          prometheus.Counter
	Misses        prometheus.Counter
	Evictions     prometheus.Counter
	ResolverCalls prometheus.Counter
	Entries       prometheus.Gauge
}

// NewCacheMetrics creates and registers cache instruments on reg.
func NewCacheMetrics(reg prometheus.Registerer) (*CacheMetrics, error) {
	m := &CacheMetrics{
		Hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "fit_cache",
			Name:      "hits_total",
			Help:      "Fit lookups served from the cache.",
		}),
		Misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "fit_cache",
			Name:      "misses_total",
			Help:      "Fit lookups that had to run the resolver.",
		}),
		Evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "fit_cache",
			Name:      "evictions_total",
			Help:      "Entries evicted in insertion order when the cache was full.",
		}),
		ResolverCalls: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "fit_cache",
			Name:      "resolver_calls_total",
			Help:      "Invocations of the underlying fit resolver.",
		}),
		Entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "fit_cache",
			Name:      "entries",
			Help:      "Entries currently held by the cache.",
		}),
	}
	if err := register(reg, m.Hits, m.Misses, m.Evictions, m.ResolverCalls, m.Entries); err != nil {
		return nil, err
	}
	return m, nil
}

// OptimizerMetrics instruments the border optimizer.
type OptimizerMetrics struct {
	Searches   prometheus.Counter
	Candidates prometheus.Histogram
	Score      prometheus.Histogram
	Fallbacks  prometheus.Counter
}

// NewOptimizerMetrics creates and registers optimizer instruments on reg.
func NewOptimizerMetrics(reg prometheus.Registerer) (*OptimizerMetrics, error) {
	m := &OptimizerMetrics{
		Searches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "border_optimizer",
			Name:      "searches_total",
			Help:      "Minimum border searches run.",
		}),
		Candidates: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "border_optimizer",
			Name:      "candidates_evaluated",
			Help:      "Candidate borders evaluated per search.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		}),
		Score: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "border_optimizer",
			Name:      "best_score",
			Help:      "Snap score of the chosen border (0 is a perfect snap).",
			Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.25, 0.5},
		}),
		Fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "border_optimizer",
			Name:      "fallbacks_total",
			Help:      "Searches that found no valid candidate and returned the requested border.",
		}),
	}
	if err := register(reg, m.Searches, m.Candidates, m.Score, m.Fallbacks); err != nil {
		return nil, err
	}
	return m, nil
}

// ObserveSearch records one border search.
func (m *OptimizerMetrics) ObserveSearch(evaluated int, score float64, found bool) {
	m.Searches.Inc()
	m.Candidates.Observe(float64(evaluated))
	if !found {
		m.Fallbacks.Inc()
		return
	}
	m.Score.Observe(score)
}

func register(reg prometheus.Registerer, cs ...prometheus.Collector) error {
	if reg == nil {
		return nil
	}
	for _, c := range cs {
		if err := reg.Register(c); err != nil {
			return fmt.Errorf("registering metric: %w", err)
		}
	}
	return nil
}
