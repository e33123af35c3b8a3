// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the foodgram service.
package api

import (
	_ "embed"
	"fmt"
	"foodgram/internal/api/handler/v1handler"
	"foodgram/internal/config"
	"foodgram/pkg/controller"
	"foodgram/pkg/logger"
	"foodgram/pkg/serrors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

// ServiceName is reported by the tracing middleware and shown in the docs UI.
const ServiceName = "foodgram"

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// SecHandlerOptions configures the security handler (authn/authz) for v1 endpoints.
	SecHandlerOptions *v1handler.SecHandlerOptions

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// CORSOrigins restricts cross-origin browser access; empty allows any origin.
	CORSOrigins []string
}

// NewOptions constructs an Options value from the provided application configuration.
// It maps HTTP server-related settings from config.Config to the Options used by the API server.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		CORSOrigins:       cfg.HTTP.CORSOrigins,
	}
}

type Deps struct {
	v1handler.Deps
}

// NewMeterProvider returns an OpenTelemetry meter provider whose instruments
// are exported through the default prometheus registerer.
func NewMeterProvider() (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// NewHandler builds the gin engine serving:
// - Prometheus metrics endpoint (MetricsPath)
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes
// - pprof endpoints for profiling
// The engine is wrapped with CORS and logging middlewares.
func NewHandler(deps Deps, opts Options) (http.Handler, error) {
	h := v1handler.New(deps.Deps)

	engine := gin.New()
	engine.Use(
		otelgin.Middleware(ServiceName),
		gin.CustomRecovery(func(c *gin.Context, recovered any) {
			logger.Error(c.Request.Context(), "panic while handling request", zap.Any("panic", recovered))
			res := h.NewError(c.Request.Context(), serrors.KindOnly(serrors.ErrInternal))
			c.AbortWithStatusJSON(res.StatusCode, res.Response)
		}),
	)
	engine.NoRoute(func(c *gin.Context) {
		res := h.NewError(c.Request.Context(), serrors.With(serrors.ErrNotFound, "route not found"))
		c.JSON(res.StatusCode, res.Response)
	})

	// prometheus metrics server
	if opts.MetricsPath != "" {
		engine.GET(opts.MetricsPath, gin.WrapH(promhttp.Handler()))
	}

	// v1 specs file
	engine.GET("/specs/v1.yaml", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/yaml", v1Spec)
	})
	// v1 api swagger playground
	engine.GET("/v1/docs/*any", gin.WrapH(v5emb.New(
		"Foodgram",
		"/specs/v1.yaml",
		"/v1/docs/",
	)))

	// v1 api
	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	v1handler.Register(engine.Group("/v1"), h, secHandler)

	// pprof
	engine.Any("/debug/pprof/*any", gin.WrapH(controller.PprofMux("/debug/pprof/")))

	// cors
	handler := controller.WithCORS(engine, opts.CORSOrigins...)

	// logger, scrapes only at debug level
	return controller.WithLogger(handler, opts.MetricsPath), nil
}

// NewServer wires up and returns a configured *http.Server using the provided
// Options. Every request is bounded by RequestTimeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewHandler(deps, opts)
	if err != nil {
		return nil, err
	}
	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, `{"code":"TIMEOUT","message":"request timed out"}`)
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
