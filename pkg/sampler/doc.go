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

// Package sampler orchestrates one sampling cycle.
//
// Sample invokes every counter reader in parallel and assembles a single
// Snapshot. A failing reader never aborts the cycle: its field keeps the
// zero value (never the previous cycle's value, which would be silently
// stale), the failure is logged at warn level, and a prometheus counter
// records it. Sample therefore always returns a snapshot.
package sampler
