package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// DefaultBodies are the canned responses every fake backend starts with:
// one admin login, one store on one package and a rate of 50.
func DefaultBodies() map[string]string {
	return map[string]string{
		"POST /auth/login": `{"token":"tok","role":"admin","user_id":"u1","full_name":"Mona"}`,
		"/auth/me":         `{"user_id":"u1","role":"admin","full_name":"Mona"}`,
		"/stores":          `{"data":[{"store_id":"s1","store_name":"Nile","store_kind":"Mall","max_images_per_hour":100,"max_images_per_msg":10}]}`,
		"/packages":        `{"data":[{"package_id":"p1","name":"Pro","price_per_dress":50,"currency":"EGP","images_per_dress":2}]}`,
		"/kpi":             `{"stores_total":1}`,
		"/common-things":   `{"id":1,"exchange_usd_egp":50}`,
	}
}

// Backend is a fake admin API. Responses are looked up by "METHOD /path"
// first and then by path; unknown GETs return an empty list.
type Backend struct {
	URL string

	mu       sync.Mutex
	bodies   map[string]string
	statuses map[string]int
	requests []string
	payloads map[string]string
	headers  map[string]http.Header
}

// NewBackend starts a fake backend that is closed with the test
func NewBackend(t *testing.T) *Backend {
	t.Helper()
	b := &Backend{
		bodies:   DefaultBodies(),
		statuses: map[string]int{},
		payloads: map[string]string{},
		headers:  map[string]http.Header{},
	}
	srv := httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(srv.Close)
	b.URL = srv.URL
	return b
}

func (b *Backend) serve(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	payload, _ := io.ReadAll(r.Body)

	b.mu.Lock()
	b.requests = append(b.requests, key)
	b.payloads[key] = string(payload)
	b.headers[key] = r.Header.Clone()
	status, ok := b.statuses[key]
	if !ok {
		status = b.statuses[r.URL.Path]
	}
	body, ok := b.bodies[key]
	if !ok {
		body, ok = b.bodies[r.URL.Path]
	}
	b.mu.Unlock()

	if status != 0 {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, `{"detail":"rejected"}`)
		return
	}
	if !ok {
		body = `{"data":[]}`
		if r.Method != http.MethodGet {
			body = `{}`
		}
	}
	_, _ = io.WriteString(w, body)
}

// Set replaces the body served for key
func (b *Backend) Set(key, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bodies[key] = body
}

// Fail makes key answer with status and a {"detail":"rejected"} body
func (b *Backend) Fail(key string, status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.statuses[key] = status
}

// Called reports whether a request matching "METHOD /path" was served
func (b *Backend) Called(key string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, r := range b.requests {
		if r == key {
			return true
		}
	}
	return false
}

// Payload is the last request body sent to key
func (b *Backend) Payload(key string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.payloads[key]
}

// Header is the last request header set sent to key
func (b *Backend) Header(key string) http.Header {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.headers[key]
}
