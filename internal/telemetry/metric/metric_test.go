package metric

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

type fakeCounter int

func (f fakeCounter) Count() int { return int(f) }

func TestRegistryExposesMetrics(t *testing.T) {
	r := NewRegistry()

	r.RequestsTotal.WithLabelValues("GET", "/items", "200").Inc()
	r.LoginsTotal.WithLabelValues("success").Inc()
	r.TodosCreated.Inc()

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	body := rec.Body.String()
	for _, want := range []string{
		"todovault_http_requests_total",
		"todovault_logins_total",
		"todovault_todos_created_total",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %s", want)
		}
	}
}

func TestStoreCollector(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(NewStoreCollector(fakeCounter(7)))

	got := testutil.CollectAndCount(NewStoreCollector(fakeCounter(7)), "todovault_todos_stored")
	if got != 1 {
		t.Fatalf("collected %d metrics, want 1", got)
	}

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if !strings.Contains(rec.Body.String(), "todovault_todos_stored 7") {
		t.Fatalf("gauge missing or wrong value:\n%s", rec.Body.String())
	}
}
