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

// Package defaults provides centralized configuration constants for the agent.
//
// This package defines the sampling cadence, reader timeouts, HTTP client
// timeouts, and ops-server timeouts used across the codebase. Centralizing
// these values ensures consistency and makes tuning easier.
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/hostpulse/hostpulse/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.ReaderTimeout)
//	defer cancel()
//
// # Guidelines
//
// When choosing values:
//
//   - The CPU sample window must stay strictly below the report interval,
//     since it blocks the cycle for its full duration.
//   - Reporter timeouts should stay below the report interval so a hung
//     collector cannot stack more than one in-flight send.
package defaults
