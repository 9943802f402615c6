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

package reporter

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/hostpulse/hostpulse/pkg/defaults"
	"github.com/hostpulse/hostpulse/pkg/errors"
)

// Reporter posts encoded snapshots to a fixed collector endpoint. It is
// safe for concurrent use, though the agent loop bounds sends to one at a
// time.
type Reporter struct {
	endpoint  string
	client    *http.Client
	agentID   string
	userAgent string
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithClient overrides the HTTP client. Used by tests and by callers that
// need custom transport configuration (TLS, proxies).
func WithClient(c *http.Client) Option {
	return func(r *Reporter) {
		if c != nil {
			r.client = c
		}
	}
}

// WithVersion sets the agent version advertised in the User-Agent header.
func WithVersion(version string) Option {
	return func(r *Reporter) {
		if version != "" {
			r.userAgent = "hostpulse/" + version
		}
	}
}

// New creates a Reporter for the given collector endpoint. Each Reporter
// carries a process-unique agent ID sent with every request.
func New(endpoint string, opts ...Option) *Reporter {
	r := &Reporter{
		endpoint:  endpoint,
		client:    newHTTPClient(),
		agentID:   uuid.New().String(),
		userAgent: "hostpulse/dev",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AgentID returns the process-unique instance identifier sent with every
// request.
func (r *Reporter) AgentID() string {
	return r.agentID
}

// Send posts one encoded snapshot. Any 2xx response is success; an
// expired deadline reports ErrCodeTimeout, and everything else,
// including transport errors, is an ErrCodeSendFailed error.
func (r *Reporter) Send(ctx context.Context, payload []byte) error {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(payload))
	if err != nil {
		sendTotal.WithLabelValues("error").Inc()
		return errors.Wrap(errors.ErrCodeSendFailed, "building collector request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", r.userAgent)
	req.Header.Set("X-Agent-Id", r.agentID)

	resp, err := r.client.Do(req)
	sendDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		sendTotal.WithLabelValues("error").Inc()
		if stderrors.Is(err, context.DeadlineExceeded) {
			return errors.Wrap(errors.ErrCodeTimeout, "collector request timed out", err)
		}
		return errors.Wrap(errors.ErrCodeSendFailed, "collector unreachable", err)
	}
	defer func() {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		sendTotal.WithLabelValues(fmt.Sprintf("%d", resp.StatusCode)).Inc()
		return errors.NewWithContext(errors.ErrCodeSendFailed, "collector rejected snapshot",
			map[string]any{
				"status":   resp.StatusCode,
				"endpoint": r.endpoint,
			})
	}

	sendTotal.WithLabelValues("success").Inc()
	return nil
}

// newHTTPClient builds a client with every request phase bounded, so a
// stalled collector cannot hold a cycle past the client timeout.
func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: defaults.HTTPClientTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   defaults.HTTPConnectTimeout,
				KeepAlive: defaults.HTTPKeepAlive,
			}).DialContext,
			TLSHandshakeTimeout:   defaults.HTTPTLSHandshakeTimeout,
			ResponseHeaderTimeout: defaults.HTTPResponseHeaderTimeout,
			IdleConnTimeout:       defaults.HTTPIdleConnTimeout,
			ExpectContinueTimeout: defaults.HTTPExpectContinueTimeout,
			MaxIdleConns:          10,
		},
	}
}
