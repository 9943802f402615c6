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

	"github.com/shirou/gopsutil/v4/mem"

	"github.com/hostpulse/hostpulse/pkg/errors"
	"github.com/hostpulse/hostpulse/pkg/snapshot"
)

// MemoryReader reads RAM totals. "Used" follows gopsutil's accounting,
// which excludes buffers and cache on Linux (total - free - buffers -
// cache); this convention is kept consistent across cycles.
type MemoryReader struct{}

// Read returns current total and used RAM in bytes.
func (r *MemoryReader) Read(ctx context.Context) (snapshot.Memory, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return snapshot.Memory{}, errors.Wrap(errors.ErrCodeReadFailed, "memory counters unreadable", err)
	}
	return snapshot.Memory{Total: vm.Total, Used: vm.Used}, nil
}

// SwapReader reads swap totals. "Used" is total minus free as the OS
// reports it.
type SwapReader struct{}

// Read returns current total and used swap in bytes.
func (r *SwapReader) Read(ctx context.Context) (snapshot.Memory, error) {
	sm, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return snapshot.Memory{}, errors.Wrap(errors.ErrCodeReadFailed, "swap counters unreadable", err)
	}
	return snapshot.Memory{Total: sm.Total, Used: sm.Used}, nil
}
