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

	"github.com/shirou/gopsutil/v4/cpu"

	"github.com/hostpulse/hostpulse/pkg/errors"
)

// CPUReader derives per-core utilization percentages from two counter
// reads separated by SampleWindow. Read blocks for the full window, so the
// window must stay below the reporting interval.
type CPUReader struct {
	SampleWindow time.Duration
}

// Read returns one utilization percentage per logical core, ordered by
// core index. The order is stable across cycles on a fixed host.
func (r *CPUReader) Read(ctx context.Context) ([]float64, error) {
	percents, err := cpu.PercentWithContext(ctx, r.SampleWindow, true)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeReadFailed, "cpu counters unreadable", err)
	}
	return percents, nil
}
