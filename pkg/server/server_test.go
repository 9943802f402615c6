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

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "hostpulse", cfg.Name)
	assert.Equal(t, ":9090", cfg.Address)
	assert.Positive(t, cfg.RateLimit)
	assert.Positive(t, cfg.RateLimitBurst)
	assert.Positive(t, cfg.ReadTimeout)
	assert.Positive(t, cfg.WriteTimeout)
	assert.Positive(t, cfg.IdleTimeout)
	assert.Positive(t, cfg.ShutdownTimeout)
}

func TestNewConfigListenEnvOwnedByCaller(t *testing.T) {
	// HOSTPULSE_LISTEN is sourced by the run command's --listen flag; the
	// config itself must not double-read it.
	t.Setenv("HOSTPULSE_LISTEN", ":7070")

	cfg := NewConfig()
	assert.Equal(t, ":9090", cfg.Address)
}

func TestServerErrorLogWired(t *testing.T) {
	s := NewServer(nil)

	assert.NotNil(t, s.httpServer.ErrorLog,
		"listener errors must flow through the structured logger")
}

func TestHealthEndpoint(t *testing.T) {
	s := NewServer(nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.handleHealth(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.False(t, resp.Timestamp.IsZero())
}

func TestHealthEndpointRejectsPost(t *testing.T) {
	s := NewServer(nil)

	req := httptest.NewRequest(http.MethodPost, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.handleHealth(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "METHOD_NOT_ALLOWED", string(resp.Code))
	assert.False(t, resp.Retryable)
}

func TestReadyEndpointRejectsPost(t *testing.T) {
	s := NewServer(nil)

	req := httptest.NewRequest(http.MethodPost, "/readyz", nil)
	rec := httptest.NewRecorder()
	s.handleReady(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "METHOD_NOT_ALLOWED", string(resp.Code))
}

func TestReadyEndpointFollowsReadiness(t *testing.T) {
	s := NewServer(nil)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	s.handleReady(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code,
		"server must not be ready before the first cycle")

	s.SetReady(true)
	rec = httptest.NewRecorder()
	s.handleReady(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ready", resp.Status)

	s.SetReady(false)
	rec = httptest.NewRecorder()
	s.handleReady(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestDefaultRouteListsEndpoints(t *testing.T) {
	cfg := NewConfig()
	cfg.Name = "hostpulse"
	cfg.Version = "1.2.3"
	cfg.Handlers = map[string]http.HandlerFunc{
		"/v1/snapshot": func(w http.ResponseWriter, r *http.Request) {},
	}
	s := NewServer(cfg)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.handleDefault(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Name    string   `json:"name"`
		Version string   `json:"version"`
		Routes  []string `json:"routes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "hostpulse", resp.Name)
	assert.Equal(t, "1.2.3", resp.Version)
	assert.Contains(t, resp.Routes, "GET /healthz")
	assert.Contains(t, resp.Routes, "GET /readyz")
	assert.Contains(t, resp.Routes, "GET /metrics")
	assert.Contains(t, resp.Routes, "GET /v1/snapshot")
}

func TestMetricsEndpointExposed(t *testing.T) {
	s := NewServer(nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
