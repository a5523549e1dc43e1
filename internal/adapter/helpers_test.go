// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/doin-client/internal/config"
	"github.com/MKhiriev/doin-client/internal/logger"
	"github.com/go-chi/chi/v5"
)

type staticToken string

func (s staticToken) Token(context.Context) string { return string(s) }

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (r *recordingNotifier) Publish(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
}

func (r *recordingNotifier) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.messages...)
}

type fixedID string

func (f fixedID) Generate() string { return string(f) }

// newBackend starts a chi-routed fake backend mounted under /api.
func newBackend(t *testing.T, routes func(r chi.Router)) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Route("/api", routes)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func newTestGateway(t *testing.T, baseURL string, opts ...ClientOption) *Gateway {
	t.Helper()
	cfg := config.ClientAdapter{HTTPAddress: baseURL + "/api", RequestTimeout: 2 * time.Second}
	opts = append(opts, WithRequestLogging(logger.Nop()))
	return NewGateway(cfg, opts...)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
