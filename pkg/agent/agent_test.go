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
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostpulse/hostpulse/pkg/errors"
	"github.com/hostpulse/hostpulse/pkg/snapshot"
)

type fakeSampler struct {
	calls atomic.Int64
	delay time.Duration
}

func (f *fakeSampler) Sample(ctx context.Context) *snapshot.Snapshot {
	f.calls.Add(1)
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
		}
	}
	snap := snapshot.New()
	snap.CPU = []float64{12.5}
	snap.Mem = snapshot.Memory{Total: 16 << 30, Used: 8 << 30}
	snap.Net["eth0"] = snapshot.Network{Rx: 1024, Tx: 2048}
	snap.Proc = snapshot.Processes{Total: 100, Running: 2, Sleeping: 90, Zombie: 1}
	return snap
}

type fakeSender struct {
	calls    atomic.Int64
	inFlight atomic.Int64
	maxSeen  atomic.Int64
	fail     atomic.Bool
	lastBody atomic.Value
}

func (f *fakeSender) Send(ctx context.Context, payload []byte) error {
	cur := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		prev := f.maxSeen.Load()
		if cur <= prev || f.maxSeen.CompareAndSwap(prev, cur) {
			break
		}
	}

	f.calls.Add(1)
	f.lastBody.Store(append([]byte(nil), payload...))
	if f.fail.Load() {
		return errors.New(errors.ErrCodeSendFailed, "collector unreachable")
	}
	return nil
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	_, err := New(nil, &fakeSender{})
	assert.Error(t, err)

	_, err = New(&fakeSampler{}, nil)
	assert.Error(t, err)

	a, err := New(&fakeSampler{}, &fakeSender{}, WithInterval(-1))
	require.NoError(t, err)
	assert.Positive(t, a.interval, "negative interval must be ignored")
}

func TestRunCyclesUntilCanceled(t *testing.T) {
	t.Parallel()

	s := &fakeSampler{}
	r := &fakeSender{}
	a, err := New(s, r, WithInterval(10*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(120 * time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	// First synchronous cycle plus several ticks.
	assert.GreaterOrEqual(t, r.calls.Load(), int64(3))
	assert.Equal(t, s.calls.Load(), r.calls.Load(), "every sample must be sent")

	body, ok := r.lastBody.Load().([]byte)
	require.True(t, ok)
	snap, err := snapshot.Decode(body)
	require.NoError(t, err)
	assert.Equal(t, []float64{12.5}, snap.CPU)
	assert.Equal(t, 100, snap.Proc.Total)
}

func TestReadySignaledAfterFirstCycle(t *testing.T) {
	t.Parallel()

	r := &fakeSender{}
	var readyAfter int64
	a, err := New(&fakeSampler{}, r,
		WithInterval(time.Hour),
		WithReadyFunc(func() { readyAfter = r.calls.Load() }))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	assert.Eventually(t, func() bool { return r.calls.Load() == 1 },
		time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	assert.Equal(t, int64(1), readyAfter, "ready hook must fire after the first cycle")
}

func TestSendFailuresDoNotStopLoop(t *testing.T) {
	t.Parallel()

	s := &fakeSampler{}
	r := &fakeSender{}
	r.fail.Store(true)
	a, err := New(s, r, WithInterval(5*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	// Well past ten consecutive failures the loop must still be
	// attempting new cycles.
	assert.Eventually(t, func() bool { return r.calls.Load() >= 11 },
		2*time.Second, 5*time.Millisecond)

	// Recovery: the next cycle after the collector comes back succeeds
	// with a fresh snapshot.
	r.fail.Store(false)
	before := r.calls.Load()
	assert.Eventually(t, func() bool { return r.calls.Load() > before },
		2*time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestOverlappingCyclesDropped(t *testing.T) {
	t.Parallel()

	// Sampling takes several intervals, so most ticks must be dropped
	// and at most one cycle may be in flight at a time.
	s := &fakeSampler{delay: 50 * time.Millisecond}
	r := &fakeSender{}
	a, err := New(s, r, WithInterval(10*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(300 * time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	assert.Equal(t, int64(1), r.maxSeen.Load(), "cycles must never run concurrently")
	assert.LessOrEqual(t, r.calls.Load(), int64(10), "slow cycles must suppress ticks, not queue them")
}

func TestRender(t *testing.T) {
	t.Parallel()

	snap := snapshot.New()
	snap.CPU = []float64{12.5, 30}
	snap.Mem = snapshot.Memory{Total: 16 << 30, Used: 8 << 30}
	snap.Swap = snapshot.Memory{Total: 1 << 30, Used: 512}
	snap.Net["lo"] = snapshot.Network{Rx: 4094, Tx: 4094}
	snap.Net["eth0"] = snapshot.Network{Rx: 1 << 20, Tx: 2 << 20}
	snap.Proc = snapshot.Processes{Total: 280, Running: 1, Sleeping: 215, Zombie: 2}

	var sb strings.Builder
	Render(&sb, snap)
	out := sb.String()

	assert.Contains(t, out, "cpu (2 cores): 12.5% 30.0%")
	assert.Contains(t, out, "mem:  8.00 GiB / 16.00 GiB")
	assert.Contains(t, out, "swap: 512 B / 1.00 GiB")
	assert.Contains(t, out, "net eth0: rx 1.00 MiB, tx 2.00 MiB")
	assert.Contains(t, out, "proc: 280 total, 1 running, 215 sleeping, 2 zombie")

	// Sorted interface order.
	assert.Less(t, strings.Index(out, "net eth0:"), strings.Index(out, "net lo:"))
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.00 KiB"},
		{1536, "1.50 KiB"},
		{10 << 20, "10.00 MiB"},
		{16 << 30, "16.00 GiB"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, formatBytes(tc.in), "input %d", tc.in)
	}
}
