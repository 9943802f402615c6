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

package reporter_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostpulse/hostpulse/pkg/errors"
	"github.com/hostpulse/hostpulse/pkg/reporter"
)

func TestSendSuccess(t *testing.T) {
	payload := []byte(`{"cpu":[],"mem":{"total":0,"used":0}}`)

	var gotBody []byte
	var gotContentType, gotAgentID, gotUserAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		gotContentType = r.Header.Get("Content-Type")
		gotAgentID = r.Header.Get("X-Agent-Id")
		gotUserAgent = r.Header.Get("User-Agent")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	rep := reporter.New(srv.URL, reporter.WithVersion("1.2.3"))
	err := rep.Send(context.TODO(), payload)
	require.NoError(t, err)

	assert.Equal(t, payload, gotBody)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, rep.AgentID(), gotAgentID)
	assert.Equal(t, "hostpulse/1.2.3", gotUserAgent)
}

func TestSendNonSuccessStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"client error", http.StatusBadRequest},
		{"not found", http.StatusNotFound},
		{"server error", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", tt.status)
			}))
			defer srv.Close()

			err := reporter.New(srv.URL).Send(context.TODO(), []byte(`{}`))
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrCodeSendFailed))
		})
	}
}

func TestSendConnectionRefused(t *testing.T) {
	// Grab an address nothing listens on.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL
	srv.Close()

	err := reporter.New(endpoint).Send(context.TODO(), []byte(`{}`))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeSendFailed))
}

func TestSendRepeatedFailuresStayIndependent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL
	srv.Close()

	rep := reporter.New(endpoint)
	for i := 0; i < 10; i++ {
		err := rep.Send(context.TODO(), []byte(`{}`))
		require.Error(t, err, "attempt %d", i)
	}

	// A recovered collector succeeds on the very next attempt; no state
	// accumulates across failed sends.
	recovered := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer recovered.Close()

	err := reporter.New(recovered.URL).Send(context.TODO(), []byte(`{}`))
	assert.NoError(t, err)
}

func TestSendDeadlineReportsTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	// Unblock the handler before Close waits on it.
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := reporter.New(srv.URL).Send(ctx, []byte(`{}`))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeTimeout),
		"expired deadline must surface as a timeout, got %v", err)
}

func TestSendContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.TODO())
	cancel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	err := reporter.New(srv.URL).Send(ctx, []byte(`{}`))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeSendFailed))
}
