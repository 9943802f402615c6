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

package reporter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sendTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hostpulse_sends_total",
			Help: "Total number of snapshot send attempts by outcome",
		},
		[]string{"status"}, // success, error, or the HTTP status code
	)

	sendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hostpulse_send_duration_seconds",
			Help:    "Snapshot send latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)
