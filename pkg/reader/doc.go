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

// Package reader provides per-family counter readers for host metrics.
//
// Each metric family (CPU, memory, swap, network, process table) is read
// through a small interface with a single Read operation returning the
// normalized value for that family, so callers map a reader to a snapshot
// field instead of branching per metric. All readers support context-based
// cancellation.
//
// The Factory interface enables dependency injection for testing:
//
//	factory := reader.NewDefaultFactory(
//	    reader.WithCPUSampleWindow(500 * time.Millisecond),
//	)
//	cores, err := factory.CreateCPUReader().Read(ctx)
//
// Failures are reported as errors.ErrCodeReadFailed and are expected to be
// downgraded to fallback values by the caller; a reader never takes down a
// sampling cycle.
package reader
