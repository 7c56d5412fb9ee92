package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	apperrors "github.com/agbru/scoreboard/internal/errors"
	"github.com/agbru/scoreboard/internal/logging"
	"github.com/agbru/scoreboard/internal/metrics"
	"github.com/agbru/scoreboard/internal/scoreboard"
)

const tracerName = "github.com/agbru/scoreboard/internal/server"

// Error codes returned in addition to the scoreboard rejection codes.
const (
	codeBadRequest       = "bad_request"
	codeRateLimited      = "rate_limited"
	codeMethodNotAllowed = "method_not_allowed"
	codeInternal         = "internal"
)

// Config holds the listener and traffic settings.
type Config struct {
	// Addr is the TCP listen address, e.g. ":8080".
	Addr string
	// RateLimit is the sustained requests per second across all clients.
	RateLimit float64
	// RateBurst is the limiter bucket size.
	RateBurst int
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration
	// Security controls headers, CORS and body limits.
	Security SecurityConfig
}

// DefaultConfig returns a Config with the application defaults.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		RateLimit:       50,
		RateBurst:       100,
		ShutdownTimeout: 10 * time.Second,
		Security:        DefaultSecurityConfig(),
	}
}

// Server serves a Board over HTTP.
type Server struct {
	board   Board
	config  Config
	logger  logging.Logger
	metrics *Metrics
	hub     *Hub
	limiter *rate.Limiter
	tracer  trace.Tracer
	router  chi.Router

	ready    chan struct{}
	mu       sync.Mutex
	listener net.Listener
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the access and error logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCollector shares a metrics.Collector so board and HTTP metrics are
// served from the same registry.
func WithCollector(c *metrics.Collector) Option {
	return func(s *Server) {
		if c != nil {
			s.metrics = NewMetrics(c)
		}
	}
}

// WithHub sets the live-feed hub. The hub must also be registered as an
// observer of the board for mutations to be pushed.
func WithHub(h *Hub) Option {
	return func(s *Server) {
		if h != nil {
			s.hub = h
		}
	}
}

// New creates a Server for board.
func New(board Board, config Config, opts ...Option) *Server {
	s := &Server{
		board:   board,
		config:  config,
		logger:  logging.NewNopLogger(),
		limiter: rate.NewLimiter(rate.Limit(config.RateLimit), config.RateBurst),
		tracer:  otel.Tracer(tracerName),
		ready:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = NewMetrics(nil)
	}
	if s.hub == nil {
		s.hub = NewHub(s.logger)
	}
	s.hub.checkOrigin = func(r *http.Request) bool {
		return originAllowed(config.Security, r.Header.Get("Origin"))
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)
	r.Use(func(next http.Handler) http.Handler {
		return SecurityMiddleware(s.config.Security, next.ServeHTTP)
	})
	r.Use(corsMiddleware(s.config.Security))
	r.Use(s.rateLimit, s.accessLog)
	r.Use(func(next http.Handler) http.Handler {
		return s.metricsMiddleware(next.ServeHTTP)
	})

	r.Get("/health", s.handleHealth)
	r.HandleFunc("/metrics", s.handleMetrics)
	r.Get("/ws", s.hub.ServeWS)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/summary", s.handleSummary)
		r.Post("/games", s.handleStart)
		r.Route("/games/{home}/{away}", func(r chi.Router) {
			r.Get("/", s.handleGetGame)
			r.Delete("/", s.handleFinish)
			r.Put("/score", s.handleUpdateScore)
		})
	})
	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Hub returns the live-feed hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Ready is closed once the listener is bound.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr returns the bound address, or nil before Ready is closed.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Run listens on the configured address and serves until ctx is canceled,
// then shuts down gracefully within ShutdownTimeout. It returns nil after a
// clean shutdown and an apperrors.ServerError otherwise.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return apperrors.ServerError{Op: "listen", Cause: err}
	}
	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()
	close(s.ready)

	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	s.logger.Info("server listening", logging.String("addr", ln.Addr().String()))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.hub.Run(gctx, s.board)
	})
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return apperrors.ServerError{Op: "serve", Cause: err}
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return apperrors.ServerError{Op: "shutdown", Cause: err}
		}
		return nil
	})
	return g.Wait()
}

// ─────────────────────────────────────────────────────────────────────────────
// Middleware
// ─────────────────────────────────────────────────────────────────────────────

func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			w.Header().Set("Retry-After", "1")
			writeError(w, http.StatusTooManyRequests, codeRateLimited, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			logging.String("method", r.Method),
			logging.String("path", r.URL.Path),
			logging.Int("status", ww.Status()),
			logging.Float64("duration_ms", float64(time.Since(start).Microseconds())/1000),
			logging.String("request_id", middleware.GetReqID(r.Context())))
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Handlers
// ─────────────────────────────────────────────────────────────────────────────

type startRequest struct {
	Home string `json:"home"`
	Away string `json:"away"`
}

type scoreRequest struct {
	HomeScore *int `json:"home_score"`
	AwayScore *int `json:"away_score"`
}

func (r scoreRequest) validate() error {
	if r.HomeScore == nil {
		return apperrors.ValidationError{Field: "home_score", Message: "is required"}
	}
	if r.AwayScore == nil {
		return apperrors.ValidationError{Field: "away_score", Message: "is required"}
	}
	return nil
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
	// Field names the offending request field for bad_request errors.
	Field string `json:"field,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	_, span := s.tracer.Start(r.Context(), "scoreboard.summary")
	defer span.End()

	games := s.board.Summary()
	span.SetAttributes(attribute.Int("scoreboard.games", len(games)))
	if games == nil {
		games = []scoreboard.Game{}
	}
	writeJSON(w, http.StatusOK, games)
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	_, span := s.tracer.Start(r.Context(), "scoreboard.start")
	defer span.End()

	var req startRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, span, http.StatusBadRequest, codeBadRequest, err)
		return
	}
	span.SetAttributes(attribute.String("scoreboard.home", req.Home), attribute.String("scoreboard.away", req.Away))

	if err := s.board.Start(req.Home, req.Away); err != nil {
		s.rejected(w, span, err)
		return
	}
	writeJSON(w, http.StatusCreated, scoreboard.Game{Home: req.Home, Away: req.Away})
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	_, span := s.tracer.Start(r.Context(), "scoreboard.game")
	defer span.End()

	home, away, err := fixtureParams(r)
	if err != nil {
		s.fail(w, span, http.StatusBadRequest, codeBadRequest, err)
		return
	}
	span.SetAttributes(attribute.String("scoreboard.home", home), attribute.String("scoreboard.away", away))

	game, ok := s.board.Game(home, away)
	if !ok {
		s.rejected(w, span, &scoreboard.GameError{Home: home, Away: away, Err: scoreboard.ErrDoesNotExist})
		return
	}
	writeJSON(w, http.StatusOK, game)
}

func (s *Server) handleUpdateScore(w http.ResponseWriter, r *http.Request) {
	_, span := s.tracer.Start(r.Context(), "scoreboard.update")
	defer span.End()

	home, away, err := fixtureParams(r)
	if err != nil {
		s.fail(w, span, http.StatusBadRequest, codeBadRequest, err)
		return
	}
	var req scoreRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, span, http.StatusBadRequest, codeBadRequest, err)
		return
	}
	if err := req.validate(); err != nil {
		s.fail(w, span, http.StatusBadRequest, codeBadRequest, err)
		return
	}
	span.SetAttributes(
		attribute.String("scoreboard.home", home), attribute.Int("scoreboard.home_score", *req.HomeScore),
		attribute.String("scoreboard.away", away), attribute.Int("scoreboard.away_score", *req.AwayScore))

	if err := s.board.UpdateScore(home, *req.HomeScore, away, *req.AwayScore); err != nil {
		s.rejected(w, span, err)
		return
	}
	writeJSON(w, http.StatusOK, scoreboard.Game{Home: home, Away: away, HomeScore: *req.HomeScore, AwayScore: *req.AwayScore})
}

func (s *Server) handleFinish(w http.ResponseWriter, r *http.Request) {
	_, span := s.tracer.Start(r.Context(), "scoreboard.finish")
	defer span.End()

	home, away, err := fixtureParams(r)
	if err != nil {
		s.fail(w, span, http.StatusBadRequest, codeBadRequest, err)
		return
	}
	span.SetAttributes(attribute.String("scoreboard.home", home), attribute.String("scoreboard.away", away))

	if err := s.board.Finish(home, away); err != nil {
		s.rejected(w, span, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// rejected maps a board error to its HTTP status.
func (s *Server) rejected(w http.ResponseWriter, span trace.Span, err error) {
	code := scoreboard.Code(err)
	status := http.StatusInternalServerError
	switch code {
	case scoreboard.CodeInvalidTeamName, scoreboard.CodeInvalidScore:
		status = http.StatusBadRequest
	case scoreboard.CodeAlreadyExists:
		status = http.StatusConflict
	case scoreboard.CodeDoesNotExist:
		status = http.StatusNotFound
	default:
		code = codeInternal
	}
	s.fail(w, span, status, code, err)
}

func (s *Server) fail(w http.ResponseWriter, span trace.Span, status int, code string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", err, logging.String("code", code))
	}
	resp := errorResponse{Error: err.Error(), Code: code}
	var verr apperrors.ValidationError
	if errors.As(err, &verr) {
		resp.Field = verr.Field
	}
	writeJSON(w, status, resp)
}

// fixtureParams returns the unescaped {home} and {away} path parameters.
func fixtureParams(r *http.Request) (string, string, error) {
	home, err := url.PathUnescape(chi.URLParam(r, "home"))
	if err != nil {
		return "", "", apperrors.ValidationError{Field: "home", Message: err.Error()}
	}
	away, err := url.PathUnescape(chi.URLParam(r, "away"))
	if err != nil {
		return "", "", apperrors.ValidationError{Field: "away", Message: err.Error()}
	}
	return home, away, nil
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return apperrors.ValidationError{Field: "body", Message: err.Error()}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: message, Code: code})
}
