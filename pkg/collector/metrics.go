// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package collector

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	runDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "doccollect_run_duration_seconds",
			Help:    "Time taken to process all snippets of a run",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
		},
		[]string{"mode"},
	)

	snippetsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "doccollect_snippets_total",
			Help: "Total number of processed snippets",
		},
		[]string{"mode", "status"}, // success or error
	)

	invocationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "doccollect_invocation_duration_seconds",
			Help:    "Time taken by individual compiler and example invocations",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"program"}, // compiler name or runtime
	)

	invocationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "doccollect_invocations_total",
			Help: "Total number of compiler and example invocations",
		},
		[]string{"program", "outcome"}, // built, diagnostics, captured or error
	)

	cacheWritesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "doccollect_cache_writes_total",
			Help: "Total number of cache file writes",
		},
	)
)

// Invocation outcomes.
const (
	outcomeBuilt       = "built"
	outcomeDiagnostics = "diagnostics"
	outcomeCaptured    = "captured"
	outcomeError       = "error"
)

// WriteMetrics writes all registered metrics to path in the Prometheus text
// exposition format, suitable for the node exporter textfile collector.
func WriteMetrics(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
