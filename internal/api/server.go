package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ServerConfig contains configuration for creating the chat API server.
type ServerConfig struct {
	Logger      *slog.Logger
	Answerer    Answerer        // Required
	Knowledge   KnowledgeLister // Required
	Sessions    TurnReader      // Required
	Pool        *pgxpool.Pool   // Optional: nil disables the database ping in /ready
	CORSOrigins []string        // Allowed origins for CORS
	IsDev       bool            // Disables HSTS (local HTTP serving)
	TrustProxy  bool            // Trust X-Real-IP/X-Forwarded-For headers (behind reverse proxy)
	RateBurst   int             // Rate limiter burst size per IP (0 = default 60)
}

// Server is the JSON API HTTP server.
type Server struct {
	mux *http.ServeMux
}

// NewServer creates the chat API server with all routes configured.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Answerer == nil {
		return nil, errors.New("answerer is required")
	}
	if cfg.Knowledge == nil {
		return nil, errors.New("knowledge store is required")
	}
	if cfg.Sessions == nil {
		return nil, errors.New("conversation store is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ch := &chatHandler{answerer: cfg.Answerer, logger: logger}
	kh := &knowledgeHandler{store: cfg.Knowledge, logger: logger}
	sh := &sessionHandler{store: cfg.Sessions, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/chat", ch.send)
	mux.HandleFunc("GET /api/v1/knowledge", kh.list)
	mux.HandleFunc("GET /api/v1/sessions/{id}/turns", sh.getTurns)

	// Rate limiter: per-IP token bucket (1 token/sec refill)
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = 60
	}
	rl := newRateLimiter(1.0, burst)

	// Build middleware stack (outermost first):
	//   Recovery → RequestID → Logging → CORS → RateLimit → Routes
	// RequestID must be before Logging so request_id is available in log attributes.
	// CORS must be before RateLimit so preflight OPTIONS gets proper CORS headers.
	var handler http.Handler = mux
	handler = rateLimitMiddleware(rl, cfg.TrustProxy, logger)(handler)
	handler = corsMiddleware(cfg.CORSOrigins)(handler)
	handler = loggingMiddleware(logger)(handler)
	handler = requestIDMiddleware()(handler)
	handler = recoveryMiddleware(logger)(handler)

	// Wrap with security headers
	isDev := cfg.IsDev
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		setSecurityHeaders(w, isDev)
		handler.ServeHTTP(w, r)
	})

	// Use a top-level mux to separate health probes from middleware stack
	topMux := http.NewServeMux()
	topMux.HandleFunc("GET /health", health)
	topMux.Handle("GET /ready", readiness(cfg.Pool))
	topMux.Handle("/", final)

	return &Server{mux: topMux}, nil
}

// Handler returns the server as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// IngestServerConfig contains configuration for creating the ingest server.
type IngestServerConfig struct {
	Logger   *slog.Logger
	Ingester Ingester      // Required
	Pool     *pgxpool.Pool // Optional: nil disables the database ping in /ready
}

// IngestServer receives object-storage event notifications.
type IngestServer struct {
	mux *http.ServeMux
}

// NewIngestServer creates the ingest server.
// Storage notifications POST to the root path; health probes live beside it.
func NewIngestServer(cfg IngestServerConfig) (*IngestServer, error) {
	if cfg.Ingester == nil {
		return nil, errors.New("ingester is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ih := &ingestHandler{ingester: cfg.Ingester, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /{$}", ih.handle)

	var handler http.Handler = mux
	handler = loggingMiddleware(logger)(handler)
	handler = requestIDMiddleware()(handler)
	handler = recoveryMiddleware(logger)(handler)

	topMux := http.NewServeMux()
	topMux.HandleFunc("GET /health", health)
	topMux.Handle("GET /ready", readiness(cfg.Pool))
	topMux.Handle("POST /", handler)

	return &IngestServer{mux: topMux}, nil
}

// Handler returns the server as an http.Handler.
func (s *IngestServer) Handler() http.Handler {
	return s.mux
}
