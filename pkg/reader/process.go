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

	"github.com/shirou/gopsutil/v4/process"

	"github.com/hostpulse/hostpulse/pkg/errors"
	"github.com/hostpulse/hostpulse/pkg/snapshot"
)

// ProcessReader counts processes by state bucket. States other than
// running, sleeping, and zombie contribute only to the total, and
// processes that vanish between enumeration and state read are likewise
// counted in the total only.
type ProcessReader struct{}

// Read returns current process counts.
func (r *ProcessReader) Read(ctx context.Context) (snapshot.Processes, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return snapshot.Processes{}, errors.Wrap(errors.ErrCodeReadFailed, "process table unreadable", err)
	}

	counts := snapshot.Processes{Total: len(procs)}
	for _, p := range procs {
		statuses, err := p.StatusWithContext(ctx)
		if err != nil {
			// Process exited mid-read; it still existed at enumeration.
			continue
		}
		bucket(&counts, statuses)
	}
	return counts, nil
}

// bucket increments the state bucket matching the reported statuses.
// A process carries at most one of the bucketed states.
func bucket(counts *snapshot.Processes, statuses []string) {
	for _, s := range statuses {
		switch s {
		case process.Running:
			counts.Running++
			return
		case process.Sleep:
			counts.Sleeping++
			return
		case process.Zombie:
			counts.Zombie++
			return
		}
	}
}
