// Package server exposes a baggage.Router over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/conveyor/bfs"
	"github.com/katalvlaran/conveyor/core"
	"github.com/katalvlaran/conveyor/dijkstra"
	"github.com/katalvlaran/conveyor/internal/baggage"
	"github.com/katalvlaran/conveyor/internal/loader"
)

// shutdownGrace bounds how long in-flight requests may run after the
// server context is cancelled.
const shutdownGrace = 5 * time.Second

// Server serves routing queries for one network and manifest.
type Server struct {
	router   *baggage.Router
	manifest *loader.Manifest
	logger   *slog.Logger
	handler  http.Handler
}

// New builds the HTTP handler tree. manifest may be nil, in which case the
// bag endpoints report an empty list.
func New(router *baggage.Router, manifest *loader.Manifest, logger *slog.Logger) *Server {
	if manifest == nil {
		manifest = &loader.Manifest{Departures: map[string]loader.Departure{}}
	}
	s := &Server{router: router, manifest: manifest, logger: logger}

	r := mux.NewRouter()
	r.Use(s.logRequests)
	r.HandleFunc("/healthz", s.health).Methods("GET")
	r.HandleFunc("/junctions", s.junctions).Methods("GET")
	r.HandleFunc("/routes/{from}/{to}", s.route).Methods("GET")
	r.HandleFunc("/bags", s.bags).Methods("GET")
	r.HandleFunc("/bags/{id}", s.bag).Methods("GET")
	s.handler = r

	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.handler }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Routing server starting.", "address", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		s.logger.Info("Routing server stopping.")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debug("Request.", "method", r.Method, "path", r.URL.Path, "remote_addr", r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type junctionsResponse struct {
	Junctions  []string        `json:"junctions"`
	Stats      core.GraphStats `json:"stats"`
	Components int             `json:"components"`
}

func (s *Server) junctions(w http.ResponseWriter, _ *http.Request) {
	g := s.router.Graph()
	writeJSON(w, http.StatusOK, junctionsResponse{
		Junctions:  g.Junctions(),
		Stats:      g.Stats(),
		Components: len(bfs.Components(g)),
	})
}

// routeResponse is the JSON form of a route.
type routeResponse struct {
	Cost      int64         `json:"cost"`
	Junctions []string      `json:"junctions"`
	Legs      []legResponse `json:"legs"`
}

// legResponse is one belt of a route.
type legResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
	Cost int64  `json:"cost"`
}

func newRouteResponse(rt *dijkstra.Route) *routeResponse {
	if rt == nil {
		return nil
	}
	legs := make([]legResponse, len(rt.Legs))
	for i, l := range rt.Legs {
		legs[i] = legResponse{From: l.From, To: l.To, Cost: l.Cost}
	}

	return &routeResponse{Cost: rt.Cost, Junctions: rt.Junctions, Legs: legs}
}

func (s *Server) route(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	rt, err := s.router.Route(r.Context(), vars["from"], vars["to"])
	switch {
	case errors.Is(err, baggage.ErrUnknownJunction):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, dijkstra.ErrUnreachable):
		writeError(w, http.StatusUnprocessableEntity, err)
	case err != nil:
		writeError(w, http.StatusInternalServerError, err)
	default:
		writeJSON(w, http.StatusOK, newRouteResponse(rt))
	}
}

// bagResponse is the JSON form of one outcome.
type bagResponse struct {
	loader.Bag
	Target string         `json:"target,omitempty"`
	Route  *routeResponse `json:"route,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func newBagResponse(o baggage.Outcome) bagResponse {
	return bagResponse{Bag: o.Bag, Target: o.Target, Route: newRouteResponse(o.Route), Error: o.Reason()}
}

func (s *Server) bags(w http.ResponseWriter, r *http.Request) {
	rep := s.router.Run(r.Context(), s.manifest)
	out := make([]bagResponse, 0, len(rep.Outcomes))
	for _, o := range rep.Outcomes {
		out = append(out, newBagResponse(o))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"bags":   out,
		"count":  len(out),
		"failed": len(rep.Failed()),
	})
}

func (s *Server) bag(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	for _, b := range s.manifest.Bags {
		if b.ID != id {
			continue
		}
		one := &loader.Manifest{Departures: s.manifest.Departures, Bags: []loader.Bag{b}}
		writeJSON(w, http.StatusOK, newBagResponse(s.router.Run(r.Context(), one).Outcomes[0]))
		return
	}
	writeError(w, http.StatusNotFound, errors.New("bag not found: "+id))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
