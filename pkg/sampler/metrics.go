// Copyright (c) 2025, HostPulse Authors.  All rights reserved.
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

package sampler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sampleDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hostpulse_sample_duration_seconds",
			Help:    "Time taken to assemble a complete snapshot",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	readerDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hostpulse_reader_duration_seconds",
			Help:    "Time taken by individual counter readers",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 5},
		},
		[]string{"reader"}, // cpu, mem, swap, net, proc
	)

	readerFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hostpulse_reader_failures_total",
			Help: "Total number of reader failures downgraded to zero values",
		},
		[]string{"reader"},
	)
)
