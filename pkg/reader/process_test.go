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
	"testing"

	"github.com/hostpulse/hostpulse/pkg/snapshot"
)

func TestBucket(t *testing.T) {
	tests := []struct {
		name     string
		statuses [][]string
		want     snapshot.Processes
	}{
		{
			name: "mixed states",
			statuses: [][]string{
				{"running"},
				{"sleep"},
				{"sleep"},
				{"zombie"},
			},
			want: snapshot.Processes{Running: 1, Sleeping: 2, Zombie: 1},
		},
		{
			name: "unrecognized states excluded from buckets",
			statuses: [][]string{
				{"idle"},
				{"stop"},
				{"wait"},
				{"sleep"},
			},
			want: snapshot.Processes{Sleeping: 1},
		},
		{
			name: "first bucketed state wins",
			statuses: [][]string{
				{"idle", "running"},
			},
			want: snapshot.Processes{Running: 1},
		},
		{
			name:     "empty status list",
			statuses: [][]string{{}},
			want:     snapshot.Processes{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var counts snapshot.Processes
			for _, s := range tt.statuses {
				bucket(&counts, s)
			}
			if counts != tt.want {
				t.Errorf("bucket counts = %+v, want %+v", counts, tt.want)
			}
		})
	}
}
