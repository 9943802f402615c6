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

// Package reporter delivers encoded snapshots to the collector endpoint.
//
// Each send is an independent HTTP POST with no retry queue and no
// backpressure: a snapshot is a disposable point sample, so a failed send
// (transport error or non-2xx status) is returned as ErrCodeSendFailed for
// the caller to log and discard. Timeouts come from pkg/defaults and bound
// every phase of the request.
package reporter
