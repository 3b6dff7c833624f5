// Package gateway exposes the task store to browser and API clients over
// HTTP.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/taskmasterhq/taskmaster/internal/config"
	"github.com/taskmasterhq/taskmaster/internal/gateway/ws"
	"github.com/taskmasterhq/taskmaster/internal/tasks"
)

// Server is the taskmaster gateway HTTP server.
type Server struct {
	httpServer  *http.Server
	store       *tasks.Store
	hub         *ws.Hub
	cookie      config.CookieConfig
	unsubscribe func()
}

// NewServer creates a gateway around the store. Connected WebSocket clients
// receive a tasks.changed event after every mutation.
func NewServer(store *tasks.Store, cfg *config.Config) *Server {
	hub := ws.NewHub()

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	s := &Server{
		store:  store,
		hub:    hub,
		cookie: cfg.Cookie,
	}

	s.unsubscribe = store.Subscribe(func(snapshot []tasks.Task) {
		hub.Broadcast(ws.EventTasksChanged, snapshot)
	})

	r.Get("/api/health", s.handleHealth)
	r.Get("/api/ws", hub.ServeWS)

	r.Route("/api/tasks", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Post("/", s.handleCreate)
		r.Get("/{id}", s.handleGet)
		r.Patch("/{id}", s.handleUpdate)
		r.Put("/{id}/status", s.handleSetStatus)
		r.Delete("/{id}", s.handleDelete)
	})

	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: r,
	}

	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening. It blocks until the server is stopped.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	slog.Info("taskmaster gateway listening", "addr", ln.Addr().String())
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.unsubscribe()
	s.hub.Close()
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
