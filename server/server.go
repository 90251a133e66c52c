package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// ExtraCORSOrigins is the extras key holding a comma separated list of allowed
// CORS origins. CORS is disabled when it is absent.
const ExtraCORSOrigins = "cors_allowed_origins"

const shutdownTimeout = 30 * time.Second

// Options holds application-level wiring that is not part of Config.
type Options struct {
	// StaticDir is served under StaticRoute when both are set.
	StaticDir   string
	StaticRoute string
	// Routes registers application routes on the router.
	Routes func(r chi.Router)
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Server serves HTTP requests according to a Config.
type Server struct {
	config Config
	opts   Options
	logger *slog.Logger
	signer *Signer
}

// New creates a Server. It fails only when the configured secret key is invalid.
func New(cfg Config, opts Options) (*Server, error) {
	signer, err := NewSigner(cfg.SecretKey)
	if err != nil {
		return nil, err
	}

	base := opts.Logger
	if base == nil {
		base = slog.Default()
	}
	logger := cfg.LogLevel.logger(base)

	if cfg.SecretKey == "" && cfg.Environment == Production {
		logger.Warn("no secret key configured, signed cookies will not survive a restart")
	}

	return &Server{
		config: cfg,
		opts:   opts,
		logger: logger,
		signer: signer,
	}, nil
}

// Config returns the configuration the server was created with.
func (s *Server) Config() Config {
	return s.config
}

// Router returns the http.Handler serving static files and application routes.
// chi skips the middleware stack when no route is registered, so a router with
// neither static files nor routes answers 404 without logging.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(RequestLogger(s.logger))
	r.Use(middleware.Recoverer)

	if s.config.Workers > 0 {
		r.Use(middleware.Throttle(int(s.config.Workers)))
	}

	if origins, ok := s.config.ExtraString(ExtraCORSOrigins); ok && origins != "" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   splitList(origins),
			AllowedMethods:   []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodDelete},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
		}))
	}

	if s.opts.StaticDir != "" && s.opts.StaticRoute != "" {
		route := strings.TrimSuffix(s.opts.StaticRoute, "/")
		files := http.FileServer(http.Dir(s.opts.StaticDir))
		if route == "" {
			r.Handle("/*", files)
		} else {
			r.Handle(route+"/*", http.StripPrefix(route, files))
		}
	}

	if s.opts.Routes != nil {
		r.Group(s.opts.Routes)
	}

	return r
}

// Run listens on the configured address until ctx is cancelled, then shuts the
// server down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.Addr(),
		Handler:      s.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()

		s.logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown error", "err", err)
		}
	}()

	s.logger.Info("starting server",
		"addr", ln.Addr().String(),
		"environment", s.config.Environment,
		"workers", s.config.Workers,
		"log", s.config.LogLevel,
	)

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	<-done
	return nil
}

// SetSignedCookie signs c.Value and sets the cookie on w.
func (s *Server) SetSignedCookie(w http.ResponseWriter, c *http.Cookie) {
	signed := *c
	signed.Value = s.signer.Sign(c.Value)
	http.SetCookie(w, &signed)
}

// SignedCookie returns the verified value of the named cookie.
func (s *Server) SignedCookie(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		return "", err
	}
	return s.signer.Verify(c.Value)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
