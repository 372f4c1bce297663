package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newTestRouter(m *Metrics) *chi.Mux {
	r := chi.NewRouter()
	r.Use(m.Handler)
	r.Get("/footer", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<footer></footer>"))
	})
	r.Get("/docs/{page}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Get("/broken", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	return r
}

func serve(h http.Handler, path string) {
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
}

func TestMetrics_RecordsSuccessAndError(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg))
	r := newTestRouter(m)

	serve(r, "/footer")
	serve(r, "/footer")
	serve(r, "/broken")

	if got := testutil.ToFloat64(m.RendersTotal.WithLabelValues("/footer", "success")); got != 2 {
		t.Errorf("renders_total(/footer, success) = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.RendersTotal.WithLabelValues("/broken", "error")); got != 1 {
		t.Errorf("renders_total(/broken, error) = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(m.RenderDuration); got != 2 {
		t.Errorf("render_duration_seconds series = %d, want 2", got)
	}
}

func TestMetrics_LabelsByRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg))
	r := newTestRouter(m)

	serve(r, "/docs/a")
	serve(r, "/docs/b")
	serve(r, "/missing")

	if got := testutil.ToFloat64(m.RendersTotal.WithLabelValues("/docs/{page}", "success")); got != 2 {
		t.Errorf("renders_total(/docs/{page}) = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.RendersTotal.WithLabelValues("unmatched", "error")); got != 1 {
		t.Errorf("renders_total(unmatched) = %v, want 1", got)
	}
}

func TestMetrics_RecordReload(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg))

	m.RecordReload("applied")
	m.RecordReload("failed")
	m.RecordReload("applied")

	expected := `
# HELP docsite_config_reloads_total Total number of site configuration reloads by status
# TYPE docsite_config_reloads_total counter
docsite_config_reloads_total{status="applied"} 2
docsite_config_reloads_total{status="failed"} 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "docsite_config_reloads_total"); err != nil {
		t.Error(err)
	}
}

func TestMetrics_Namespace(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg), WithNamespace("site"), WithConstLabels(prometheus.Labels{"env": "test"}))
	m.RecordReload("applied")

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	if len(families) != 1 || families[0].GetName() != "site_config_reloads_total" {
		t.Fatalf("families = %v", families)
	}
	labels := families[0].GetMetric()[0].GetLabel()
	found := false
	for _, l := range labels {
		if l.GetName() == "env" && l.GetValue() == "test" {
			found = true
		}
	}
	if !found {
		t.Errorf("const label missing: %v", labels)
	}
}
