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

	psnet "github.com/shirou/gopsutil/v4/net"

	"github.com/hostpulse/hostpulse/pkg/errors"
	"github.com/hostpulse/hostpulse/pkg/snapshot"
)

// NetworkReader reads raw cumulative byte counters for every interface
// visible at read time, including loopback, virtual, and bridge
// interfaces. The interface set may change between cycles; each read is an
// independent observation with no assumed continuity.
type NetworkReader struct{}

// Read returns a map from interface name to its rx/tx counters. A host
// with no visible interfaces yields an empty map, not an error.
func (r *NetworkReader) Read(ctx context.Context) (map[string]snapshot.Network, error) {
	counters, err := psnet.IOCountersWithContext(ctx, true)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeReadFailed, "network counters unreadable", err)
	}

	ifaces := make(map[string]snapshot.Network, len(counters))
	for _, c := range counters {
		ifaces[c.Name] = snapshot.Network{Rx: c.BytesRecv, Tx: c.BytesSent}
	}
	return ifaces, nil
}
