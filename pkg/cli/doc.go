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

// Package cli implements the command-line interface for the hostpulse agent.
//
// # Commands
//
// run - Start the reporting agent:
//
//	hostpulse run --endpoint https://collector.example.com/ingest [--interval 1s] [--display]
//
// Samples host metrics on a fixed interval and posts each snapshot to the
// collector endpoint. Runs until interrupted; partial reader failures and
// collector outages degrade individual cycles without stopping the loop.
//
// sample - Capture a single snapshot:
//
//	hostpulse sample [--output FILE] [--format json|yaml|table]
//
// Takes one snapshot and writes it to stdout or a file. Useful for
// inspecting what the agent would report without a collector.
//
// version - Print version information.
//
// # Global Flags
//
//	--log-level  Logging verbosity: debug, info, warn, error (default: info)
//
// # Environment Variables
//
//	HOSTPULSE_ENDPOINT  Collector endpoint URL (same as --endpoint)
//	HOSTPULSE_INTERVAL  Report interval (same as --interval)
//	HOSTPULSE_LISTEN    Ops server listen address (same as --listen)
//	LOG_LEVEL           Logging verbosity (debug, info, warn, error)
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure)
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/hostpulse/hostpulse/pkg/cli.version=1.0.0'"
package cli
