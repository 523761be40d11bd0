package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchPhaseSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/api/phase1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		fmt.Fprint(w, `{"success": true, "phase": 1, "summary": "ok"}`)
	}))
	defer srv.Close()

	c := New(srv.URL)
	res, err := c.FetchPhase(context.Background(), 1)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if !res.Success || res.Phase != 1 || res.Summary != "ok" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestFetchPhaseBackendFailureEnvelope(t *testing.T) {
	// The backend serves failures as a 500 with a decodable envelope; that is
	// a backend failure, not a transport one.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"success": false, "error": "key derivation failed"}`)
	}))
	defer srv.Close()

	res, err := New(srv.URL).FetchPhase(context.Background(), 3)
	if err != nil {
		t.Fatalf("failure envelope must decode, got %v", err)
	}
	if res.Success || res.Error != "key derivation failed" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestFetchPhaseNon2xxWithoutEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway timeout", http.StatusGatewayTimeout)
	}))
	defer srv.Close()

	_, err := New(srv.URL).FetchPhase(context.Background(), 2)
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if te.Phase != 2 {
		t.Fatalf("transport error should carry the phase: %+v", te)
	}
}

func TestFetchPhaseMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success": tru`)
	}))
	defer srv.Close()

	_, err := New(srv.URL).FetchPhase(context.Background(), 4)
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("malformed JSON must be a transport error, got %v", err)
	}
}

func TestFetchPhaseConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // immediately, so the port refuses connections

	_, err := New(srv.URL).FetchPhase(context.Background(), 5)
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %v", err)
	}
}

func TestNewDefaultsAndTrimsBase(t *testing.T) {
	if c := New(""); c.BaseURL != DefaultBaseURL {
		t.Fatalf("empty base should default, got %q", c.BaseURL)
	}
	if c := New("http://demo:5000/"); c.BaseURL != "http://demo:5000" {
		t.Fatalf("trailing slash should be trimmed, got %q", c.BaseURL)
	}
}
