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

// Package errors provides structured error types for the agent.
//
// The two codes that matter in steady-state operation are ErrCodeReadFailed
// (one metric family could not be read from the OS) and ErrCodeSendFailed
// (a snapshot could not be delivered to the collector). Neither is fatal:
// read failures are downgraded to fallback values at the sampler boundary,
// and send failures are logged and discarded at the agent loop. The
// remaining codes serve the ops server's error responses.
//
// Use errors.Is/errors.As compatible wrapping:
//
//	if err := r.Read(ctx); err != nil {
//	    return errors.Wrap(errors.ErrCodeReadFailed, "cpu counters unreadable", err)
//	}
package errors
