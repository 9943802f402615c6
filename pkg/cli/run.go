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
	"net/http"
	"net/url"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/hostpulse/hostpulse/pkg/agent"
	"github.com/hostpulse/hostpulse/pkg/defaults"
	"github.com/hostpulse/hostpulse/pkg/errors"
	"github.com/hostpulse/hostpulse/pkg/reader"
	"github.com/hostpulse/hostpulse/pkg/reporter"
	"github.com/hostpulse/hostpulse/pkg/sampler"
	"github.com/hostpulse/hostpulse/pkg/serializer"
	"github.com/hostpulse/hostpulse/pkg/server"
)

// newOpsServer builds the operational HTTP server for the run command.
// An empty listen address disables the server entirely; the agent loop
// then runs without an ops surface.
func newOpsServer(listen string, smplr *sampler.Sampler) *server.Server {
	if listen == "" {
		return nil
	}

	cfg := server.NewConfig()
	cfg.Name = name
	cfg.Version = version
	cfg.Address = listen
	cfg.Handlers = map[string]http.HandlerFunc{
		"/v1/snapshot": func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				serializer.RespondJSON(w, http.StatusMethodNotAllowed, map[string]any{
					"code":    errors.ErrCodeMethodNotAllowed,
					"message": "Method not allowed",
				})
				return
			}
			serializer.RespondJSON(w, http.StatusOK, smplr.Sample(r.Context()))
		},
	}
	return server.NewServer(cfg)
}

func runCmd() *cli.Command {
	return &cli.Command{
		Name:                  "run",
		EnableShellCompletion: true,
		Usage:                 "Start the reporting agent",
		Description: `Start the fixed-interval reporting loop. Each cycle samples:
  - Per-core CPU usage percentages
  - Memory and swap totals and usage
  - Per-interface network byte counters
  - Process counts by state

and posts the snapshot as JSON to the collector endpoint. The loop runs
until SIGINT or SIGTERM. A cycle that fails to send is logged and
dropped; the next cycle proceeds normally.

An operational HTTP server is exposed alongside the loop with /healthz,
/readyz and Prometheus /metrics endpoints, plus /v1/snapshot which
samples on demand. Pass an empty --listen to run without the ops
server.

# Examples

Report to a local collector every second:
  hostpulse run --endpoint http://localhost:8080/ingest

Report every 5 seconds with a terminal display:
  hostpulse run --endpoint http://localhost:8080/ingest --interval 5s --display`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "endpoint",
				Aliases:  []string{"e"},
				Usage:    "Collector endpoint URL to POST snapshots to",
				Sources:  cli.EnvVars("HOSTPULSE_ENDPOINT"),
				Required: true,
			},
			&cli.DurationFlag{
				Name:    "interval",
				Aliases: []string{"i"},
				Usage:   "Report interval",
				Sources: cli.EnvVars("HOSTPULSE_INTERVAL"),
				Value:   defaults.ReportInterval,
			},
			&cli.DurationFlag{
				Name:  "cpu-window",
				Usage: "CPU usage measurement window (must be shorter than the interval)",
				Value: defaults.CPUSampleWindow,
			},
			&cli.StringFlag{
				Name:    "listen",
				Usage:   "Ops server listen address (empty disables the ops server)",
				Sources: cli.EnvVars("HOSTPULSE_LISTEN"),
				Value:   ":9090",
			},
			&cli.BoolFlag{
				Name:  "display",
				Usage: "Render each snapshot to the terminal before sending",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			endpoint := cmd.String("endpoint")
			if _, err := url.ParseRequestURI(endpoint); err != nil {
				return fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
			}

			interval := cmd.Duration("interval")
			if interval <= 0 {
				return fmt.Errorf("interval must be positive, got %s", interval)
			}

			cpuWindow := cmd.Duration("cpu-window")
			if cpuWindow <= 0 || cpuWindow >= interval {
				return fmt.Errorf("cpu-window %s must be positive and shorter than interval %s",
					cpuWindow, interval)
			}

			smplr := sampler.New(
				sampler.WithFactory(reader.NewDefaultFactory(
					reader.WithCPUSampleWindow(cpuWindow),
				)),
			)
			rptr := reporter.New(endpoint, reporter.WithVersion(version))

			srv := newOpsServer(cmd.String("listen"), smplr)

			agentOpts := []agent.Option{
				agent.WithInterval(interval),
			}
			if srv != nil {
				agentOpts = append(agentOpts,
					agent.WithReadyFunc(func() { srv.SetReady(true) }))
			}
			if cmd.Bool("display") {
				agentOpts = append(agentOpts, agent.WithDisplay(os.Stdout))
			}
			a, err := agent.New(smplr, rptr, agentOpts...)
			if err != nil {
				return err
			}

			g, gctx := errgroup.WithContext(ctx)
			if srv != nil {
				g.Go(func() error { return srv.Start(gctx) })
			}
			g.Go(func() error { return a.Run(gctx) })
			return g.Wait()
		},
	}
}
