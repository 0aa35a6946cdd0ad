// Package server exposes breadcrumb trails over HTTP for one route table.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cast"

	"github.com/mesh-intelligence/breadcrumbs/internal/router"
	"github.com/mesh-intelligence/breadcrumbs/pkg/breadcrumbs"
	"github.com/mesh-intelligence/breadcrumbs/pkg/types"
)

// shutdownTimeout bounds how long Run waits for in-flight requests.
const shutdownTimeout = 5 * time.Second

// Options configures a Server.
type Options struct {
	Config   types.Config
	Logger   *slog.Logger
	MemoSize int
}

// Server answers trail queries against a fixed route table.
type Server struct {
	echo    *echo.Echo
	table   types.RouteTable
	cfg     types.Config
	memo    *breadcrumbs.Memo
	metrics *metrics
	logger  *slog.Logger
}

// RouteView is one entry of the GET /routes listing.
type RouteView struct {
	Path string          `json:"path"`
	Name string          `json:"name,omitempty"`
	Leaf bool            `json:"leaf"`
	Meta types.RouteMeta `json:"meta"`
}

// New builds a server for table. The table should carry a Version so
// repeated queries are memoized.
func New(table types.RouteTable, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		echo:    echo.New(),
		table:   table,
		cfg:     breadcrumbs.ResolveConfig(opts.Config),
		memo:    breadcrumbs.NewMemo(opts.MemoSize),
		metrics: newMetrics(),
		logger:  logger,
	}
	s.echo.HideBanner = true
	s.echo.HidePort = true

	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.RequestID())
	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:     true,
		LogURI:        true,
		LogStatus:     true,
		LogLatency:    true,
		LogRequestID:  true,
		LogError:      true,
		HandleError:   true,
		LogValuesFunc: s.logRequest,
	}))

	s.echo.GET("/breadcrumbs", s.handleBreadcrumbs)
	s.echo.GET("/routes", s.handleRoutes)
	s.echo.GET("/healthz", s.handleHealth)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})))
	return s
}

// Handler returns the HTTP handler serving all endpoints.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving breadcrumbs", "addr", addr, "table", s.table.Name, "version", s.table.Version)
		errCh <- s.echo.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("server stopped", "addr", addr)
	return nil
}

func (s *Server) logRequest(c echo.Context, v middleware.RequestLoggerValues) error {
	s.metrics.requests.WithLabelValues(strconv.Itoa(v.Status)).Inc()
	attrs := []slog.Attr{
		slog.String("method", v.Method),
		slog.String("uri", v.URI),
		slog.Int("status", v.Status),
		slog.Duration("latency", v.Latency),
		slog.String("request_id", v.RequestID),
	}
	level := slog.LevelInfo
	if v.Error != nil {
		level = slog.LevelWarn
		attrs = append(attrs, slog.String("error", v.Error.Error()))
	}
	s.logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
	return nil
}

func (s *Server) handleBreadcrumbs(c echo.Context) error {
	path := c.QueryParam("path")
	if path == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "path query parameter is required")
	}

	cfg := s.cfg
	if raw := c.QueryParam("trailingSlash"); raw != "" {
		ts, err := cast.ToBoolE(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "trailingSlash must be true or false")
		}
		cfg = breadcrumbs.ResolveConfig(types.Config{TrailingSlash: &ts}, s.cfg)
	}

	current, err := router.Match(path, s.table.Routes)
	switch {
	case errors.Is(err, types.ErrNoMatch):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, types.ErrInvalidPath), errors.Is(err, types.ErrEmptyPath):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case err != nil:
		return err
	}

	res, hit := s.memo.Compute(current, s.table, cfg)
	s.metrics.computations.Inc()
	if hit {
		s.metrics.memoHits.Inc()
	}
	return c.JSON(http.StatusOK, res)
}

func (s *Server) handleRoutes(c echo.Context) error {
	flat := breadcrumbs.FlattenRoutes(s.table.Routes)
	views := make([]RouteView, 0, len(flat))
	for _, r := range flat {
		views = append(views, RouteView{Path: r.Path, Name: r.Name, Leaf: r.IsLeaf(), Meta: r.Meta})
	}
	return c.JSON(http.StatusOK, views)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"table":   s.table.Name,
		"version": s.table.Version,
	})
}
