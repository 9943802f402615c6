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

// Package serializer renders snapshot data for the one-shot sample
// command and for ops-server JSON responses.
//
// The Writer supports JSON, YAML, and a flattened table keyed by the wire
// schema's field names (cpu[0], mem.total, net.lo.rx). The reporting path
// does not go through this package: the wire payload is produced by
// snapshot.Encode directly.
package serializer
