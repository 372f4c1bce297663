package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func tracedRouter(opts ...OTelOption) (*chi.Mux, *tracetest.SpanRecorder) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	r := chi.NewRouter()
	r.Use(OpenTelemetry(append([]OTelOption{WithTracerProvider(tp)}, opts...)...))
	r.Get("/footer", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/broken", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {})
	return r, recorder
}

func attr(attrs []attribute.KeyValue, key string) (attribute.Value, bool) {
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestOpenTelemetry_SpanPerRequest(t *testing.T) {
	r, recorder := tracedRouter()

	serve(r, "/footer")

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	span := spans[0]
	if span.Name() != "GET /footer" {
		t.Errorf("span name = %q", span.Name())
	}
	if v, ok := attr(span.Attributes(), "http.route"); !ok || v.AsString() != "/footer" {
		t.Errorf("http.route = %v", v)
	}
	if v, ok := attr(span.Attributes(), "http.status_code"); !ok || v.AsInt64() != 200 {
		t.Errorf("http.status_code = %v", v)
	}
	if span.Status().Code != codes.Ok {
		t.Errorf("status = %v, want Ok", span.Status())
	}
}

func TestOpenTelemetry_ServerErrorMarksSpan(t *testing.T) {
	r, recorder := tracedRouter()

	serve(r, "/broken")

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if spans[0].Status().Code != codes.Error {
		t.Errorf("status = %v, want Error", spans[0].Status())
	}
}

func TestOpenTelemetry_Filter(t *testing.T) {
	r, recorder := tracedRouter(WithRequestFilter(func(r *http.Request) bool {
		return r.URL.Path != "/healthz"
	}))

	serve(r, "/healthz")
	serve(r, "/footer")

	if got := len(recorder.Ended()); got != 1 {
		t.Errorf("got %d spans, want 1 (healthz filtered)", got)
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	r := chi.NewRouter()
	r.Use(RequestLogger(logger))
	r.Get("/footer", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<footer></footer>"))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/footer", nil))

	line := buf.String()
	for _, want := range []string{"component=http", "method=GET", "path=/footer", "status=200", "bytes=17"} {
		if !strings.Contains(line, want) {
			t.Errorf("log line missing %q: %s", want, line)
		}
	}
}
