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
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"

	"github.com/hostpulse/hostpulse/pkg/defaults"
	"github.com/hostpulse/hostpulse/pkg/errors"
	"github.com/hostpulse/hostpulse/pkg/snapshot"
)

// Sampler produces one snapshot per call. Implemented by
// sampler.Sampler.
type Sampler interface {
	Sample(ctx context.Context) *snapshot.Snapshot
}

// Sender delivers one encoded snapshot. Implemented by
// reporter.Reporter.
type Sender interface {
	Send(ctx context.Context, payload []byte) error
}

// Option configures the agent.
type Option func(*Agent)

// WithInterval sets the report interval. Non-positive values are
// ignored.
func WithInterval(d time.Duration) Option {
	return func(a *Agent) {
		if d > 0 {
			a.interval = d
		}
	}
}

// WithDisplay renders each snapshot to w in a human-readable form
// before sending it.
func WithDisplay(w io.Writer) Option {
	return func(a *Agent) {
		a.display = w
	}
}

// WithReadyFunc registers a hook invoked once, after the first cycle
// completes. Used to flip the ops server readiness probe.
func WithReadyFunc(f func()) Option {
	return func(a *Agent) {
		a.onReady = f
	}
}

// Agent owns the fixed-interval report loop.
type Agent struct {
	sampler  Sampler
	sender   Sender
	interval time.Duration
	display  io.Writer
	onReady  func()

	inFlight atomic.Bool
	wg       sync.WaitGroup
}

// New creates an agent over the given sampler and sender.
func New(s Sampler, r Sender, opts ...Option) (*Agent, error) {
	if s == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "sampler is required")
	}
	if r == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "sender is required")
	}

	a := &Agent{
		sampler:  s,
		sender:   r,
		interval: defaults.ReportInterval,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Run executes report cycles until ctx is canceled. The first cycle
// runs synchronously before the ticker starts, which primes the CPU
// usage counters and proves the pipeline end to end; readiness is
// signaled only after it completes. Run always returns nil after a
// clean shutdown.
func (a *Agent) Run(ctx context.Context) error {
	slog.Info("agent starting",
		slog.Duration("interval", a.interval),
		slog.Bool("display", a.display != nil))

	a.cycle(ctx)
	if a.onReady != nil {
		a.onReady()
	}
	if _, err := daemon.SdNotify(false, daemon.SdNotifyReady); err != nil {
		slog.Debug("sd_notify ready failed", slog.String("error", err.Error()))
	}
	defer func() {
		if _, err := daemon.SdNotify(false, daemon.SdNotifyStopping); err != nil {
			slog.Debug("sd_notify stopping failed", slog.String("error", err.Error()))
		}
	}()

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.wg.Wait()
			slog.Info("agent stopped")
			return nil
		case <-ticker.C:
			if !a.inFlight.CompareAndSwap(false, true) {
				cyclesDropped.Inc()
				slog.Warn("previous cycle still in flight, dropping tick")
				continue
			}
			a.wg.Add(1)
			go func() {
				defer a.wg.Done()
				defer a.inFlight.Store(false)
				a.cycle(ctx)
			}()
		}
	}
}

// cycle runs one sample-encode-send pass. Failures are recorded and
// logged but never propagate to the loop.
func (a *Agent) cycle(ctx context.Context) {
	start := time.Now()

	snap := a.sampler.Sample(ctx)

	payload, err := snap.Encode()
	if err != nil {
		cyclesTotal.WithLabelValues(cycleStatusError).Inc()
		slog.Error("snapshot encode failed", slog.String("error", err.Error()))
		return
	}

	if a.display != nil {
		Render(a.display, snap)
	}

	if err := a.sender.Send(ctx, payload); err != nil {
		cyclesTotal.WithLabelValues(cycleStatusSendFailed).Inc()
		slog.Warn("snapshot send failed",
			slog.String("error", err.Error()),
			slog.Duration("elapsed", time.Since(start)))
		return
	}

	cyclesTotal.WithLabelValues(cycleStatusSuccess).Inc()
	slog.Debug("cycle complete",
		slog.Int("cores", len(snap.CPU)),
		slog.Int("interfaces", len(snap.Net)),
		slog.Int("processes", snap.Proc.Total),
		slog.Duration("elapsed", time.Since(start)))
}
