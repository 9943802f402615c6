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

package reader

import (
	"context"
	"time"

	"github.com/hostpulse/hostpulse/pkg/defaults"
	"github.com/hostpulse/hostpulse/pkg/snapshot"
)

// CPU reads per-core utilization percentages, ordered by core index.
type CPU interface {
	Read(ctx context.Context) ([]float64, error)
}

// Memory reads total/used bytes for a memory-like resource. Both the RAM
// and swap readers satisfy this interface.
type Memory interface {
	Read(ctx context.Context) (snapshot.Memory, error)
}

// Network reads raw cumulative rx/tx byte counters for every interface
// visible at read time.
type Network interface {
	Read(ctx context.Context) (map[string]snapshot.Network, error)
}

// Process reads process counts bucketed by state.
type Process interface {
	Read(ctx context.Context) (snapshot.Processes, error)
}

// Factory creates readers with their dependencies.
// This interface enables dependency injection for testing.
type Factory interface {
	CreateCPUReader() CPU
	CreateMemoryReader() Memory
	CreateSwapReader() Memory
	CreateNetworkReader() Network
	CreateProcessReader() Process
}

// Option configures a DefaultFactory.
type Option func(*DefaultFactory)

// WithCPUSampleWindow sets the delta between the two CPU counter reads.
// The window must be strictly less than the overall reporting interval;
// the caller validates that relationship.
func WithCPUSampleWindow(window time.Duration) Option {
	return func(f *DefaultFactory) {
		if window > 0 {
			f.cpuSampleWindow = window
		}
	}
}

// DefaultFactory creates readers backed by the OS counter sources.
type DefaultFactory struct {
	cpuSampleWindow time.Duration
}

// NewDefaultFactory creates a factory with default settings.
func NewDefaultFactory(opts ...Option) *DefaultFactory {
	f := &DefaultFactory{
		cpuSampleWindow: defaults.CPUSampleWindow,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateCPUReader creates a per-core CPU utilization reader.
func (f *DefaultFactory) CreateCPUReader() CPU {
	return &CPUReader{SampleWindow: f.cpuSampleWindow}
}

// CreateMemoryReader creates a RAM reader.
func (f *DefaultFactory) CreateMemoryReader() Memory {
	return &MemoryReader{}
}

// CreateSwapReader creates a swap reader.
func (f *DefaultFactory) CreateSwapReader() Memory {
	return &SwapReader{}
}

// CreateNetworkReader creates a per-interface counter reader.
func (f *DefaultFactory) CreateNetworkReader() Network {
	return &NetworkReader{}
}

// CreateProcessReader creates a process-state reader.
func (f *DefaultFactory) CreateProcessReader() Process {
	return &ProcessReader{}
}
