// Package middleware provides the observability layer of the demo server:
// Prometheus metrics, OpenTelemetry tracing and request logging.
//
// All three are plain net/http middleware meant for a chi router:
//
//	m := middleware.NewMetrics(middleware.WithRegistry(reg))
//	t := middleware.NewTracer()
//
//	r := chi.NewRouter()
//	r.Use(chimw.RequestID, middleware.RequestLogger(logger), t.Handler, m.Handler)
//	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
//
// Widget events arriving over a WebSocket do not pass through HTTP
// middleware; the server records them with Metrics.ObserveEvent and wraps
// them in Tracer.StartEvent spans.
package middleware
