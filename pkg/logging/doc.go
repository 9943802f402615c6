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

// Package logging provides structured logging utilities for the agent.
//
// It wraps the standard library slog package with agent-specific defaults:
// JSON output to stderr, module/version context on every record, and
// source location tracking for debug logs.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLoggerWithLevel("hostpulse", version, level)
//
//	    slog.Info("starting", "endpoint", endpoint)
//	    slog.Warn("reader failed", "reader", "net", "error", err)
//	}
//
// Level names are debug, info, warn, error (case-insensitive); anything
// else falls back to info. The CLI resolves the level from its --log-level
// flag, which also sources the LOG_LEVEL environment variable.
package logging
