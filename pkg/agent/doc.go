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

// Package agent drives the sample-encode-send pipeline on a fixed
// interval.
//
// Each tick runs one cycle: Idle -> Sampling -> Encoding -> Sending ->
// Idle. Sampling tolerates per-reader failures internally, and a send
// failure terminates only its own cycle. If a cycle is still in flight
// when the next tick fires, the new cycle is dropped rather than run
// concurrently, bounding the pipeline to one run at a time; every snapshot
// and its encoded payload are cycle-local and immutable once produced.
//
// The loop has no fatal error path: it runs until its context is
// canceled, degrading to zero-value samples or failed sends under
// sustained partial failure.
package agent
