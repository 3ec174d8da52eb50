package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/concierge-dev/concierge/internal/conversation"
	"github.com/concierge-dev/concierge/internal/knowledge"
	"github.com/concierge-dev/concierge/internal/log"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeKnowledgeStore implements KnowledgeLister.
type fakeKnowledgeStore struct {
	entries []knowledge.Entry
	err     error
}

func (f *fakeKnowledgeStore) ListAll(_ context.Context) ([]knowledge.Entry, error) {
	return f.entries, f.err
}

// fakeTurnReader implements TurnReader.
type fakeTurnReader struct {
	turns []conversation.Turn
	err   error
}

func (f *fakeTurnReader) Turns(_ context.Context, _ string) ([]conversation.Turn, error) {
	return f.turns, f.err
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	srv, err := NewServer(ServerConfig{
		Logger:   log.NewNop(),
		Answerer: &fakeAnswerer{answer: "an answer"},
		Knowledge: &fakeKnowledgeStore{entries: []knowledge.Entry{
			{ID: "schedule", Summary: "Keynote at 9am.", SourceFile: "gs://b/schedule.pdf", UpdatedAt: time.Now()},
		}},
		Sessions: &fakeTurnReader{turns: []conversation.Turn{{User: "hi", Model: "hello"}}},
		IsDev:    true,
	})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	return srv
}

func TestNewServer_RequiredDependencies(t *testing.T) {
	tests := []struct {
		name string
		cfg  ServerConfig
	}{
		{"missing answerer", ServerConfig{Knowledge: &fakeKnowledgeStore{}, Sessions: &fakeTurnReader{}}},
		{"missing knowledge", ServerConfig{Answerer: &fakeAnswerer{}, Sessions: &fakeTurnReader{}}},
		{"missing sessions", ServerConfig{Answerer: &fakeAnswerer{}, Knowledge: &fakeKnowledgeStore{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewServer(tt.cfg); err == nil {
				t.Error("NewServer() accepted incomplete config")
			}
		})
	}
}

func TestServer_ChatRoute(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat",
		strings.NewReader(`{"session_id":"s1","query":"q"}`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", rec.Code, rec.Body)
	}

	var resp chatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Answer != "an answer" {
		t.Errorf("answer = %q", resp.Answer)
	}
}

func TestServer_ChatRoute_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/chat", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestServer_KnowledgeRoute(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/knowledge", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", rec.Code, rec.Body)
	}

	var resp knowledgeListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Entries) != 1 || resp.Entries[0].ID != "schedule" {
		t.Errorf("entries = %+v", resp.Entries)
	}
}

func TestServer_SessionTurnsRoute(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/s1/turns", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", rec.Code, rec.Body)
	}

	var resp sessionTurnsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.SessionID != "s1" {
		t.Errorf("session_id = %q", resp.SessionID)
	}
	if len(resp.Turns) != 1 || resp.Turns[0].User != "hi" {
		t.Errorf("turns = %+v", resp.Turns)
	}
}

func TestServer_HealthProbes(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want 200", path, rec.Code)
		}
	}
}

func TestServer_SecurityHeaders(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/knowledge", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q", got)
	}
	// Dev mode serves plain HTTP, so HSTS must be absent
	if got := rec.Header().Get("Strict-Transport-Security"); got != "" {
		t.Errorf("Strict-Transport-Security = %q, want unset in dev", got)
	}
}

func TestNewIngestServer(t *testing.T) {
	ing := &fakeIngester{}
	srv, err := NewIngestServer(IngestServerConfig{Logger: log.NewNop(), Ingester: ing})
	if err != nil {
		t.Fatalf("NewIngestServer() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/",
		strings.NewReader(`{"bucket":"b","name":"f.txt"}`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", rec.Code, rec.Body)
	}
	if rec.Body.String() != "OK" {
		t.Errorf("body = %q, want OK", rec.Body.String())
	}
	if len(ing.events) != 1 {
		t.Errorf("expected 1 event, got %d", len(ing.events))
	}
}

func TestNewIngestServer_RequiresIngester(t *testing.T) {
	if _, err := NewIngestServer(IngestServerConfig{}); err == nil {
		t.Error("NewIngestServer() accepted nil ingester")
	}
}

func TestIngestServer_HealthProbes(t *testing.T) {
	srv, err := NewIngestServer(IngestServerConfig{Logger: log.NewNop(), Ingester: &fakeIngester{}})
	if err != nil {
		t.Fatalf("NewIngestServer() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
