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

// Package server provides the agent's operational HTTP endpoint.
//
// It serves liveness (/healthz), readiness (/readyz) and Prometheus
// (/metrics) endpoints. Readiness flips to true only after the agent
// completes its first report cycle. Additional handlers registered via
// Config.Handlers are wrapped with the full middleware chain: metrics,
// request ID, panic recovery, rate limiting and request logging.
package server
