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

package agent

import (
	"fmt"
	"io"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hostpulse/hostpulse/pkg/snapshot"
)

var displayPrinter = message.NewPrinter(language.English)

// Render writes a human-readable summary of snap to w. Interface rows
// are sorted by name so consecutive renders line up.
func Render(w io.Writer, snap *snapshot.Snapshot) {
	displayPrinter.Fprintf(w, "=== host metrics ===\n")

	displayPrinter.Fprintf(w, "cpu (%d cores):", len(snap.CPU))
	for _, pct := range snap.CPU {
		displayPrinter.Fprintf(w, " %.1f%%", pct)
	}
	displayPrinter.Fprintf(w, "\n")

	displayPrinter.Fprintf(w, "mem:  %s / %s\n",
		formatBytes(snap.Mem.Used), formatBytes(snap.Mem.Total))
	displayPrinter.Fprintf(w, "swap: %s / %s\n",
		formatBytes(snap.Swap.Used), formatBytes(snap.Swap.Total))

	names := make([]string, 0, len(snap.Net))
	for name := range snap.Net {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		counters := snap.Net[name]
		displayPrinter.Fprintf(w, "net %s: rx %s, tx %s\n",
			name, formatBytes(counters.Rx), formatBytes(counters.Tx))
	}

	displayPrinter.Fprintf(w, "proc: %d total, %d running, %d sleeping, %d zombie\n",
		snap.Proc.Total, snap.Proc.Running, snap.Proc.Sleeping, snap.Proc.Zombie)
}

// formatBytes renders n with a binary-scaled unit, two decimal places
// above bytes.
func formatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
