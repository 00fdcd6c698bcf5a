// Package gateway is the presentation transport: a small HTTP API with
// pull-based renders (GET a page's display payload) and push-based
// events (POST a command, or stream commands over a websocket). All
// state changes go through the engine's dispatch; the gateway only
// translates HTTP and websocket frames to commands and renders.
package gateway

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/egolabs/ego/engine"
	"github.com/egolabs/ego/session"
)

// Server is the gateway HTTP server.
type Server struct {
	addr     string
	engine   *engine.Engine
	sessions *session.Registry
	server   *http.Server
}

// NewServer creates a gateway bound to addr.
func NewServer(addr string, eng *engine.Engine, sessions *session.Registry) *Server {
	return &Server{
		addr:     addr,
		engine:   eng,
		sessions: sessions,
	}
}

// Handler returns the gateway's routes. Split out from Start so tests
// can drive the mux with httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/sessions", s.handleCreateSession)
	mux.HandleFunc("GET /api/sessions/{id}/pages/{page}", s.handleRenderPage)
	mux.HandleFunc("POST /api/sessions/{id}/commands", s.handleCommand)
	mux.HandleFunc("GET /api/sessions/{id}/events", s.handleEvents)
	return mux
}

// Start begins listening. It returns immediately; serve errors other
// than a clean shutdown are logged.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}

	go func() {
		log.Printf("[GATEWAY] Listening on %s", s.addr)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("[GATEWAY] Serve error: %v", err)
		}
	}()

	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown gateway: %w", err)
	}
	return nil
}
