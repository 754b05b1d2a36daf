// Package server exposes a Network over HTTP: route queries, the city
// catalog and per-city reachability.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/katalvlaran/multiroute/network"
)

// Server serves a read-only Network.
type Server struct {
	net    *network.Network
	logger *slog.Logger
	router *mux.Router
}

// New wires the handlers for net. A nil logger discards output.
func New(net *network.Network, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Server{net: net, logger: logger, router: mux.NewRouter()}
	s.RegisterRoutes(s.router)
	s.router.Use(s.logRequests)

	return s
}

// RegisterRoutes attaches the API endpoints to router.
func (s *Server) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/routes", s.CalculateRoutes).Methods(http.MethodPost)
	router.HandleFunc("/api/cities", s.ListCities).Methods(http.MethodGet)
	router.HandleFunc("/api/cities/{name}/reachable", s.Reachable).Methods(http.MethodGet)
	router.HandleFunc("/healthz", s.Health).Methods(http.MethodGet)
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.router }

// CalculateRoutes resolves one request body.
func (s *Server) CalculateRoutes(w http.ResponseWriter, r *http.Request) {
	var req network.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Origin == "" || req.Destination == "" {
		writeError(w, http.StatusBadRequest, "origin and destination are required")
		return
	}

	res, err := s.net.Resolve(r.Context(), req)
	if err != nil {
		s.logger.Error("resolve failed", "origin", req.Origin, "destination", req.Destination, "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, newRouteResponse(res))
}

// ListCities returns every city sorted by id.
func (s *Server) ListCities(w http.ResponseWriter, _ *http.Request) {
	cities := s.net.Cities()
	writeJSON(w, http.StatusOK, map[string]any{
		"cities": cities,
		"count":  len(cities),
		"roads":  s.net.Stats().Roads,
	})
}

// Reachable returns the connected component of the named city.
func (s *Server) Reachable(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	reach, err := s.net.Reachable(r.Context(), name)
	switch {
	case errors.Is(err, network.ErrUnknownCity):
		writeError(w, http.StatusNotFound, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"city":      name,
		"reachable": reach,
		"count":     len(reach),
	})
}

// Health reports liveness.
func (s *Server) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("http request", "method", r.Method, "path", r.URL.Path, "elapsed", time.Since(start))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
