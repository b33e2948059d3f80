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
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vango-dev/selectdemo/internal/data"
	"github.com/vango-dev/selectdemo/internal/gallery"
	"github.com/vango-dev/selectdemo/internal/site"
	"github.com/vango-dev/selectdemo/pkg/assets"
	"github.com/vango-dev/selectdemo/pkg/middleware"
)

// Deps are the collaborators of the server. Zero values fall back to
// built-in sample data, embedded assets and the global Prometheus and
// OpenTelemetry registries.
type Deps struct {
	Departments data.DepartmentProvider
	Teams       data.TeamProvider
	Assets      *assets.Bundle
	Logger      *slog.Logger
	Metrics     *middleware.Metrics
	Tracer      *middleware.Tracer

	// Gatherer backs the /metrics endpoint.
	Gatherer prometheus.Gatherer
}

// Server serves the select gallery: one gallery per browser session,
// events by form POST or WebSocket.
type Server struct {
	config   Config
	deps     Deps
	logger   *slog.Logger
	sessions *Store
	router   chi.Router
	upgrader websocket.Upgrader
	resolver assets.Resolver

	httpServer *http.Server
}

// New creates a server. Call Handler to mount it or Run to listen.
func New(config Config, deps Deps) *Server {
	config = config.withDefaults()
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Assets == nil {
		deps.Assets = assets.MustLoad()
	}
	if deps.Tracer == nil {
		deps.Tracer = middleware.NewTracer()
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	s := &Server{
		config: config,
		deps:   deps,
		logger: deps.Logger.With("component", "server"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     config.CheckOrigin,
		},
	}
	if config.Fingerprint {
		s.resolver = assets.NewResolver(deps.Assets, config.AssetPrefix)
	} else {
		s.resolver = assets.NewPassthroughResolver(config.AssetPrefix)
	}
	s.sessions = NewStore(s.newGallery, config.SessionIdleTimeout, deps.Logger, deps.Metrics)
	s.router = s.routes()
	return s
}

func (s *Server) newGallery() *gallery.Gallery {
	return gallery.New(gallery.Deps{
		Departments: s.deps.Departments,
		Teams:       s.deps.Teams,
		EventsPath:  s.config.EventsPath,
		Logger:      s.deps.Logger,
	})
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLogger(s.deps.Logger))
	r.Use(chimw.Recoverer)
	r.Use(s.deps.Tracer.Handler)
	r.Use(s.deps.Metrics.Handler)

	r.Get("/", s.handlePage)
	r.Post(s.config.EventsPath, s.handleEvents)
	if s.config.Live {
		r.Get(s.config.LivePath, s.handleLive)
	}
	r.Get(s.config.AssetPrefix+"{file}", s.handleAsset)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.deps.Gatherer, promhttp.HandlerOpts{}))
	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Sessions returns the session store.
func (s *Server) Sessions() *Store {
	return s.sessions
}

// Run listens on the configured address and serves until ctx is done,
// then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go s.sessions.Run(sweepCtx, s.config.CleanupInterval)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", ln.Addr().String(), "live", s.config.Live)
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}
	s.logger.Info("server shutdown complete")
	return nil
}

// session returns the request's session, creating it and setting the
// cookie when missing or expired.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *Session {
	if c, err := r.Cookie(s.config.SessionCookie); err == nil {
		if sess, ok := s.sessions.Get(c.Value); ok {
			return sess
		}
	}
	sess := s.sessions.Create()
	http.SetCookie(w, s.sessionCookie(sess.ID))
	return sess
}

func (s *Server) sessionCookie(id string) *http.Cookie {
	return &http.Cookie{
		Name:     s.config.SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   s.config.SecureCookies,
	}
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	flash := sess.TakeFlash()

	var (
		html []byte
		err  error
	)
	sess.Do(func(g *gallery.Gallery) {
		html, err = site.Render(g, site.Options{
			Title:      s.config.Title,
			Assets:     s.resolver,
			Live:       s.config.Live,
			LivePath:   s.config.LivePath,
			Events:     true,
			EventsPath: s.config.EventsPath,
			Flash:      flash,
		})
	})
	if err != nil {
		s.logger.Error("render page", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(html)
}

func (s *Server) handleAsset(w http.ResponseWriter, r *http.Request) {
	f, immutable, ok := s.deps.Assets.Lookup(chi.URLParam(r, "file"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", f.ContentType)
	if immutable {
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	} else {
		w.Header().Set("Cache-Control", "no-cache")
	}
	w.Write(f.Data)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "ok sessions=%d\n", s.sessions.Len())
}

// anchorURL is the page URL scrolled to a card.
func anchorURL(anchor string) string {
	if anchor == "" {
		return "/"
	}
	return "/#" + strings.TrimPrefix(anchor, "#")
}

// eventTimer measures one event for metrics and tracing.
func (s *Server) eventTimer(ctx context.Context, ev event, sessionID, transport string) (context.Context, func(error)) {
	start := time.Now()
	ctx, end := s.deps.Tracer.StartEvent(ctx, ev.Kind, ev.target(), sessionID)
	return ctx, func(err error) {
		end(err)
		s.deps.Metrics.ObserveEvent(ev.Kind, transport, time.Since(start), errorType(err))
	}
}
