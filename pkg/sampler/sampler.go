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

package sampler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hostpulse/hostpulse/pkg/defaults"
	"github.com/hostpulse/hostpulse/pkg/reader"
	"github.com/hostpulse/hostpulse/pkg/snapshot"
)

// Sampler produces one Snapshot per invocation, tolerating partial reader
// failure. It holds no state between cycles beyond its reader factory.
type Sampler struct {
	factory reader.Factory
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithFactory sets the reader factory. Used by tests to inject faulting
// readers.
func WithFactory(f reader.Factory) Option {
	return func(s *Sampler) {
		s.factory = f
	}
}

// New creates a Sampler. Without options it reads the real OS counters.
func New(opts ...Option) *Sampler {
	s := &Sampler{}
	for _, opt := range opts {
		opt(s)
	}
	if s.factory == nil {
		s.factory = reader.NewDefaultFactory()
	}
	return s
}

// Sample runs all readers in parallel and assembles their values into a
// fresh Snapshot. It always returns a snapshot; fields whose reader failed
// carry the zero value.
func (s *Sampler) Sample(ctx context.Context) *snapshot.Snapshot {
	start := time.Now()
	defer func() {
		sampleDuration.Observe(time.Since(start).Seconds())
	}()

	snap := snapshot.New()

	// Snapshot assembly shares no state across cycles; the mutex only
	// guards concurrent field writes within this one.
	var mu sync.Mutex

	// Reader failures are downgraded in place, so goroutines never return
	// errors; the group only synchronizes completion under one context.
	// Readers share a cycle deadline so a hung counter source cannot
	// stall the cycle indefinitely.
	g, gctx := errgroup.WithContext(ctx)
	rctx, cancel := context.WithTimeout(gctx, defaults.ReaderTimeout)
	defer cancel()

	g.Go(func() error {
		cores, err := timed("cpu", func() ([]float64, error) {
			return s.factory.CreateCPUReader().Read(rctx)
		})
		if err == nil {
			mu.Lock()
			snap.CPU = cores
			mu.Unlock()
		}
		return nil
	})

	g.Go(func() error {
		ram, err := timed("mem", func() (snapshot.Memory, error) {
			return s.factory.CreateMemoryReader().Read(rctx)
		})
		if err == nil {
			mu.Lock()
			snap.Mem = ram
			mu.Unlock()
		}
		return nil
	})

	g.Go(func() error {
		swap, err := timed("swap", func() (snapshot.Memory, error) {
			return s.factory.CreateSwapReader().Read(rctx)
		})
		if err == nil {
			mu.Lock()
			snap.Swap = swap
			mu.Unlock()
		}
		return nil
	})

	g.Go(func() error {
		ifaces, err := timed("net", func() (map[string]snapshot.Network, error) {
			return s.factory.CreateNetworkReader().Read(rctx)
		})
		if err == nil {
			mu.Lock()
			snap.Net = ifaces
			mu.Unlock()
		}
		return nil
	})

	g.Go(func() error {
		procs, err := timed("proc", func() (snapshot.Processes, error) {
			return s.factory.CreateProcessReader().Read(rctx)
		})
		if err == nil {
			mu.Lock()
			snap.Proc = procs
			mu.Unlock()
		}
		return nil
	})

	_ = g.Wait()

	// A reader may legitimately return a nil map or slice; keep the wire
	// guarantee that cpu encodes as [] and net as {}.
	if snap.Net == nil {
		snap.Net = make(map[string]snapshot.Network)
	}
	if snap.CPU == nil {
		snap.CPU = []float64{}
	}

	return snap
}

// timed runs one reader with duration and failure instrumentation,
// downgrading a failure to a warn-level diagnostic.
func timed[T any](family string, read func() (T, error)) (T, error) {
	start := time.Now()
	v, err := read()
	readerDuration.WithLabelValues(family).Observe(time.Since(start).Seconds())
	if err != nil {
		readerFailures.WithLabelValues(family).Inc()
		slog.Warn("reader failed, using zero value",
			slog.String("reader", family),
			slog.String("error", err.Error()))
	}
	return v, err
}
