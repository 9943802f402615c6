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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/hostpulse/hostpulse/pkg/sampler"
	"github.com/hostpulse/hostpulse/pkg/snapshot"
)

func hasFlag(cmd *cli.Command, name string) bool {
	for _, f := range cmd.Flags {
		for _, n := range f.Names() {
			if n == name {
				return true
			}
		}
	}
	return false
}

func TestRootCmdStructure(t *testing.T) {
	root := rootCmd()

	assert.Equal(t, "hostpulse", root.Name)
	require.Len(t, root.Commands, 3)

	names := make([]string, 0, len(root.Commands))
	for _, c := range root.Commands {
		names = append(names, c.Name)
		if c.Name != "version" {
			assert.NotNil(t, c.Action, "command %s must have an action", c.Name)
		}
	}
	assert.ElementsMatch(t, []string{"run", "sample", "version"}, names)
}

func TestRootCmdLogLevelFlag(t *testing.T) {
	root := rootCmd()

	assert.True(t, hasFlag(root, "log-level"), "root must define a global log-level flag")

	err := root.Run(context.Background(),
		[]string{"hostpulse", "--log-level", "debug", "version"})
	assert.NoError(t, err)
}

func TestNewOpsServerDisabledByEmptyListen(t *testing.T) {
	smplr := sampler.New()

	assert.Nil(t, newOpsServer("", smplr),
		"empty listen address must disable the ops server")
	assert.NotNil(t, newOpsServer(":9090", smplr))
}

func TestRunCmdFlags(t *testing.T) {
	cmd := runCmd()

	for _, name := range []string{"endpoint", "interval", "cpu-window", "listen", "display"} {
		assert.True(t, hasFlag(cmd, name), "run must define flag %q", name)
	}
	require.NotNil(t, cmd.Action)
}

func TestRunCmdRejectsInvalidEndpoint(t *testing.T) {
	root := rootCmd()

	err := root.Run(context.Background(),
		[]string{"hostpulse", "run", "--endpoint", "not a url"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid endpoint")
}

func TestRunCmdRejectsCPUWindowLongerThanInterval(t *testing.T) {
	root := rootCmd()

	err := root.Run(context.Background(),
		[]string{"hostpulse", "run",
			"--endpoint", "http://localhost:8080/ingest",
			"--interval", "10ms",
			"--cpu-window", "20ms"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cpu-window")
}

func TestSampleCmdFlags(t *testing.T) {
	cmd := sampleCmd()

	for _, name := range []string{"cpu-window", "output", "format"} {
		assert.True(t, hasFlag(cmd, name), "sample must define flag %q", name)
	}
	require.NotNil(t, cmd.Action)
}

func TestSampleCmdRejectsUnknownFormat(t *testing.T) {
	root := rootCmd()

	err := root.Run(context.Background(),
		[]string{"hostpulse", "sample", "--format", "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestSampleCmdWritesSnapshotFile(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping host sampling in short mode")
	}

	out := filepath.Join(t.TempDir(), "snapshot.json")
	root := rootCmd()

	err := root.Run(context.Background(),
		[]string{"hostpulse", "sample",
			"--cpu-window", "50ms",
			"--output", out})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	snap, err := snapshot.Decode(data)
	require.NoError(t, err)
	assert.NotEmpty(t, snap.CPU)
	assert.Positive(t, snap.Mem.Total)
}

func TestVersionCmd(t *testing.T) {
	root := rootCmd()

	err := root.Run(context.Background(), []string{"hostpulse", "version"})
	assert.NoError(t, err)
}
