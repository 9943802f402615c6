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

package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hostpulse/hostpulse/pkg/defaults"
	"github.com/hostpulse/hostpulse/pkg/reader"
	"github.com/hostpulse/hostpulse/pkg/sampler"
	"github.com/hostpulse/hostpulse/pkg/serializer"
)

func sampleCmd() *cli.Command {
	return &cli.Command{
		Name:                  "sample",
		EnableShellCompletion: true,
		Usage:                 "Capture a single host metrics snapshot",
		Description: `Capture one snapshot of host metrics including:
  - Per-core CPU usage percentages
  - Memory and swap totals and usage
  - Per-interface network byte counters
  - Process counts by state

The snapshot can be output in JSON, YAML, or table format.

# Examples

Print a snapshot to the terminal:
  hostpulse sample --format table

Write the raw collector payload to a file:
  hostpulse sample --output snapshot.json`,
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "cpu-window",
				Usage: "CPU usage measurement window",
				Value: defaults.CPUSampleWindow,
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			cpuWindow := cmd.Duration("cpu-window")
			if cpuWindow <= 0 {
				return fmt.Errorf("cpu-window must be positive, got %s", cpuWindow)
			}

			smplr := sampler.New(
				sampler.WithFactory(reader.NewDefaultFactory(
					reader.WithCPUSampleWindow(cpuWindow),
				)),
			)

			snap := smplr.Sample(ctx)

			w := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			return w.Serialize(snap)
		},
	}
}
