package helpers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestNewESClientNeedsAddress(t *testing.T) {
	if _, err := NewESClient(nil, "", ""); err == nil {
		t.Fatal("expected error without addresses")
	}
}

func TestPingESRetriesUnavailable(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))
	t.Cleanup(srv.Close)

	es, err := NewESClient([]string{srv.URL}, "", "")
	if err != nil {
		t.Fatal(err)
	}
	if err := PingES(context.Background(), es); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("calls = %d, want 2", calls.Load())
	}
}

func TestPingESDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	es, err := NewESClient([]string{srv.URL}, "elastic", "wrong")
	if err != nil {
		t.Fatal(err)
	}
	if err := PingES(context.Background(), es); err == nil {
		t.Fatal("expected error on 401")
	}
}
