package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

func parentContext() (context.Context, trace.SpanContext) {
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{0x01},
		SpanID:     trace.SpanID{0x02},
		TraceFlags: trace.FlagsSampled,
	})
	return trace.ContextWithSpanContext(context.Background(), sc), sc
}

func TestTracerHandler_PropagatesSpan(t *testing.T) {
	ctx, sc := parentContext()
	extracted := false
	tr := NewTracer(
		WithTracerProvider(noop.NewTracerProvider()),
		WithAttributeExtractor(func(*http.Request) []attribute.KeyValue {
			extracted = true
			return []attribute.KeyValue{attribute.String("test.attr", "ok")}
		}),
	)

	var seen trace.Span
	h := tr.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = SpanFromContext(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	h.ServeHTTP(httptest.NewRecorder(), req)

	if seen == nil {
		t.Fatal("expected a span inside the handler")
	}
	if seen.SpanContext().TraceID() != sc.TraceID() {
		t.Errorf("trace id = %s, want %s", seen.SpanContext().TraceID(), sc.TraceID())
	}
	if !extracted {
		t.Error("attribute extractor was not called")
	}
}

func TestTracerHandler_FilterSkipsTracing(t *testing.T) {
	called := false
	tr := NewTracer(
		WithTracerProvider(noop.NewTracerProvider()),
		WithRequestFilter(func(r *http.Request) bool { return r.URL.Path != "/healthz" }),
		WithAttributeExtractor(func(*http.Request) []attribute.KeyValue {
			t.Error("extractor called for filtered request")
			return nil
		}),
	)
	h := tr.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if !called {
		t.Fatal("expected next to be called")
	}
}

func TestStartEvent(t *testing.T) {
	ctx, sc := parentContext()
	tr := NewTracer(WithTracerProvider(noop.NewTracerProvider()))

	evCtx, end := tr.StartEvent(ctx, "change", "basic-select", "sess-1")
	if span := SpanFromContext(evCtx); span == nil || span.SpanContext().TraceID() != sc.TraceID() {
		t.Fatalf("event span = %v, want trace %s", span, sc.TraceID())
	}
	end(errors.New("boom")) // must not panic
}

func TestSpanFromContext_NoSpan(t *testing.T) {
	if SpanFromContext(context.Background()) != nil {
		t.Fatal("expected nil span for a bare context")
	}
}
