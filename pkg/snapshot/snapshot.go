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

// Package snapshot defines the wire format the agent reports each cycle.
//
// A Snapshot is assembled once per sampling cycle, is immutable after
// assembly, and is never retained across cycles. The JSON schema is a
// stable external contract: key names and value types must not change.
package snapshot

import "encoding/json"

// Memory holds total and used bytes for a memory-like resource (RAM or
// swap). Used follows the OS accounting reported by the reader; used may
// transiently exceed total and is reported as-is, never corrected.
type Memory struct {
	Total uint64 `json:"total"`
	Used  uint64 `json:"used"`
}

// Network holds raw cumulative receive/transmit byte counters for one
// interface. Counters are instantaneous values at read time; the agent
// never diffs them across cycles.
type Network struct {
	Rx uint64 `json:"rx"`
	Tx uint64 `json:"tx"`
}

// Processes holds process counts by state bucket. Buckets need not sum to
// Total: states other than running/sleeping/zombie are counted only in
// Total.
type Processes struct {
	Total    int `json:"total"`
	Running  int `json:"running"`
	Sleeping int `json:"sleeping"`
	Zombie   int `json:"zombie"`
}

// Snapshot is the atomic unit transmitted per cycle.
//
// CPU carries one utilization percentage per logical core, ordered by core
// index. Net maps interface name to its counters; the interface set is
// whatever was visible at read time, and an interface-less host encodes as
// an empty object.
type Snapshot struct {
	CPU  []float64          `json:"cpu"`
	Mem  Memory             `json:"mem"`
	Swap Memory             `json:"swap"`
	Net  map[string]Network `json:"net"`
	Proc Processes          `json:"proc"`
}

// New returns an empty Snapshot with initialized collections so that a
// host with no cores or interfaces visible still encodes "cpu":[] and
// "net":{} rather than null.
func New() *Snapshot {
	return &Snapshot{
		CPU: []float64{},
		Net: make(map[string]Network),
	}
}

// Encode serializes the snapshot to its wire form. For a well-formed
// snapshot (the only kind the sampler produces) this cannot fail: every
// field is a primitive numeric or string-keyed composite.
func (s *Snapshot) Encode() ([]byte, error) {
	return json.Marshal(s)
}

// Decode parses wire bytes back into a Snapshot.
func Decode(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
