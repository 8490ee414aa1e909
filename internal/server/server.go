// Package server exposes the colony over HTTP.
//
// Routes:
//
//	POST /solve    body: config.File as JSON; response: Response
//	GET  /healthz  "ok"
//
// Every solve gets a run ID (also returned in the X-Run-ID header) that
// tags its log lines.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/katalvlaran/antcolony/aco"
	"github.com/katalvlaran/antcolony/distcache"
	"github.com/katalvlaran/antcolony/geo"
	"github.com/katalvlaran/antcolony/internal/config"
)

// Defaults for Options.
const (
	DefaultMaxNodes      = 500
	DefaultMaxAnts       = 1000
	DefaultMaxIterations = 10000
	DefaultMaxBody       = 1 << 20
)

// Options configures a Server.
type Options struct {
	// Logger receives request and run logs. nil discards them.
	Logger *log.Logger
	// Store backs the distance oracle across requests. nil disables it.
	Store distcache.Store
	// MaxNodes bounds the problem size accepted per request.
	MaxNodes int
	// MaxAnts bounds colony.ants per request.
	MaxAnts int
	// MaxIterations bounds colony.iterations per request.
	MaxIterations int
	// MaxBody bounds the request body in bytes.
	MaxBody int64
}

// Server handles solve requests.
type Server struct {
	log      *log.Logger
	store    distcache.Store
	maxNodes int
	maxAnts  int
	maxIter  int
	maxBody  int64
	router   chi.Router
}

// New builds a Server and its routes.
func New(opts Options) *Server {
	s := &Server{
		log:      opts.Logger,
		store:    opts.Store,
		maxNodes: opts.MaxNodes,
		maxAnts:  opts.MaxAnts,
		maxIter:  opts.MaxIterations,
		maxBody:  opts.MaxBody,
	}
	if s.log == nil {
		s.log = log.New(io.Discard)
	}
	if s.store == nil {
		s.store = distcache.NewNullStore()
	}
	if s.maxNodes <= 0 {
		s.maxNodes = DefaultMaxNodes
	}
	if s.maxAnts <= 0 {
		s.maxAnts = DefaultMaxAnts
	}
	if s.maxIter <= 0 {
		s.maxIter = DefaultMaxIterations
	}
	if s.maxBody <= 0 {
		s.maxBody = DefaultMaxBody
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", s.handleHealth)
	r.Post("/solve", s.handleSolve)
	s.router = r

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Response is the body of a successful solve.
type Response struct {
	ID            string   `json:"id"`
	Tour          []string `json:"tour"`
	Length        float64  `json:"length"`
	Found         bool     `json:"found"`
	Iterations    int      `json:"iterations"`
	BestIteration int      `json:"best_iteration"`
	ElapsedMs     int64    `json:"elapsed_ms"`
}

type errorResponse struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok")
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	w.Header().Set("X-Run-ID", id)
	logger := s.log.With("run", id)

	file := config.Default()
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		s.fail(w, logger, id, http.StatusBadRequest, err)
		return
	}
	if err := s.checkLimits(file); err != nil {
		s.fail(w, logger, id, http.StatusRequestEntityTooLarge, err)
		return
	}

	opts, err := file.Options()
	if err != nil {
		s.fail(w, logger, id, http.StatusBadRequest, err)
		return
	}
	prob, err := file.Problem()
	if err != nil {
		s.fail(w, logger, id, http.StatusBadRequest, err)
		return
	}

	oracle, err := distcache.NewOracle(s.store, prob.Distance, geo.Point.Key,
		distcache.WithNamespace("haversine"), distcache.WithLogger(logger))
	if err != nil {
		s.fail(w, logger, id, http.StatusInternalServerError, err)
		return
	}
	prob.Distance = oracle.Func(r.Context())
	opts.Logger = logger

	began := time.Now()
	res, err := aco.SolveContext(r.Context(), prob, opts)
	if err != nil {
		s.fail(w, logger, id, statusFor(err), err)
		return
	}
	hits, misses, _ := oracle.Stats()
	logger.Info("solved", "nodes", len(prob.Nodes), "length", res.Length, "cache_hits", hits, "cache_misses", misses)

	writeJSON(w, http.StatusOK, Response{
		ID:            id,
		Tour:          res.Tour,
		Length:        res.Length,
		Found:         res.Found,
		Iterations:    res.Iterations,
		BestIteration: res.BestIteration,
		ElapsedMs:     time.Since(began).Milliseconds(),
	})
}

// checkLimits bounds the work a single request may ask for.
func (s *Server) checkLimits(f config.File) error {
	switch {
	case len(f.Nodes) > s.maxNodes:
		return overLimit("nodes", len(f.Nodes), s.maxNodes, ErrTooManyNodes)
	case f.Colony.Ants > s.maxAnts:
		return overLimit("ants", f.Colony.Ants, s.maxAnts, ErrTooManyAnts)
	case f.Colony.Iterations > s.maxIter:
		return overLimit("iterations", f.Colony.Iterations, s.maxIter, ErrTooManyIterations)
	}

	return nil
}

// statusFor maps colony errors to HTTP statuses: bad input is 400, a run
// that reached an unprocessable state is 422, a cancelled run is 503 and
// anything else is 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, aco.ErrDuplicateLabel),
		errors.Is(err, aco.ErrUnknownStart),
		errors.Is(err, aco.ErrTooFewNodes),
		errors.Is(err, aco.ErrNoNodes):
		return http.StatusBadRequest
	case errors.Is(err, aco.ErrZeroAttractiveness),
		errors.Is(err, aco.ErrDegenerateTour),
		errors.Is(err, aco.ErrInvalidDistance):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(w http.ResponseWriter, logger *log.Logger, id string, status int, err error) {
	logger.Warn("solve failed", "status", status, "err", err)
	writeJSON(w, status, errorResponse{ID: id, Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
