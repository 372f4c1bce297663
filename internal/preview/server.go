package preview

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/scalameta/docsite/internal/dev"
	"github.com/scalameta/docsite/internal/errors"
	"github.com/scalameta/docsite/internal/site"
	"github.com/scalameta/docsite/pkg/middleware"
	"github.com/scalameta/docsite/pkg/render"
)

const tracerName = "github.com/scalameta/docsite/internal/preview"

// ConfigSource supplies the site configuration for each request.
// *dev.ConfigHolder implements it.
type ConfigSource interface {
	Get() site.Config
}

// StaticSource serves a fixed configuration.
type StaticSource site.Config

// Get implements ConfigSource.
func (s StaticSource) Get() site.Config {
	return site.Config(s)
}

// Options wires the server's collaborators. Only Source is required.
type Options struct {
	// Source supplies the configuration to render.
	Source ConfigSource

	// LiveReload enables the WebSocket reload endpoint and injects the
	// reload client into the preview page.
	LiveReload bool

	// Registry receives the server's metrics. A private registry is
	// created when nil.
	Registry *prometheus.Registry

	// TracerProvider overrides the global OpenTelemetry provider.
	TracerProvider trace.TracerProvider

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Server serves footer previews over HTTP.
type Server struct {
	config   *ServerConfig
	source   ConfigSource
	renderer *render.Renderer
	reload   *dev.ReloadServer
	registry *prometheus.Registry
	metrics  *middleware.Metrics
	tracer   trace.Tracer
	logger   *slog.Logger
	router   chi.Router

	httpServer *http.Server
}

// New creates a preview server.
func New(config *ServerConfig, opts Options) *Server {
	config = config.withDefaults()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	registry := opts.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	tp := opts.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	s := &Server{
		config:   config,
		source:   opts.Source,
		renderer: render.NewRenderer(render.RendererConfig{Pretty: config.Pretty}),
		registry: registry,
		metrics:  middleware.NewMetrics(middleware.WithRegistry(registry)),
		tracer:   tp.Tracer(tracerName),
		logger:   logger.With("component", "preview"),
	}
	if opts.LiveReload {
		s.reload = dev.NewReloadServer(logger)
	}
	s.router = s.routes(tp)
	return s
}

func (s *Server) routes(tp trace.TracerProvider) chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(s.logger))
	r.Use(middleware.OpenTelemetry(
		middleware.WithTracerProvider(tp),
		middleware.WithRequestFilter(func(r *http.Request) bool {
			return r.URL.Path != "/healthz" && r.URL.Path != "/metrics"
		}),
	))
	r.Use(s.metrics.Handler)

	r.Get("/", s.handlePage)
	r.Get("/footer", s.handleFooter)
	r.Get("/footer.json", s.handleFooterJSON)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	if s.reload != nil {
		r.Get(dev.ReloadPath, s.reload.ServeHTTP)
	}
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Metrics returns the server's metrics.
func (s *Server) Metrics() *middleware.Metrics {
	return s.metrics
}

// Watch counts reloads of holder and, with live reload enabled, pushes them
// to connected preview pages. It then starts the holder's file watcher.
func (s *Server) Watch(ctx context.Context, holder *dev.ConfigHolder) error {
	holder.Observe(func(status dev.ReloadStatus) {
		s.metrics.RecordReload(string(status))
	})
	if s.reload != nil {
		holder.Subscribe(func(ev dev.Event) {
			if ev.Err != nil {
				s.reload.NotifyError(errors.FromError(ev.Err, "E120").FormatCompact())
				return
			}
			s.reload.ClearError()
			s.reload.NotifyReload()
		})
	}
	return holder.StartWatcher(ctx)
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		WriteTimeout:      s.config.WriteTimeout,
		IdleTimeout:       s.config.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server starting", "address", ln.Addr().String())
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	// WebSocket connections are hijacked and not closed by http.Server.
	if s.reload != nil {
		s.reload.Close()
	}
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	s.logger.Info("server shutdown complete")
	return nil
}
