package telemetry

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

// ── histogram ──

func TestHistogram_Observe(t *testing.T) {
	h := newHistogram([]float64{1, 5, 10})

	h.Observe(0.5)
	h.Observe(3)
	h.Observe(7)
	h.Observe(100) // beyond all boundaries

	if got := h.Count(); got != 4 {
		t.Errorf("expected count 4, got %d", got)
	}
	if got := h.Sum(); got != 110.5 {
		t.Errorf("expected sum 110.5, got %g", got)
	}

	cum := h.cumulativeBuckets()
	want := []int64{1, 2, 3}
	for i, w := range want {
		if cum[i] != w {
			t.Errorf("bucket %d: expected %d, got %d", i, w, cum[i])
		}
	}
}

func TestHistogram_ConcurrentObserve(t *testing.T) {
	h := newHistogram(defaultDurationBuckets)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				h.Observe(0.05)
			}
		}()
	}
	wg.Wait()

	if got := h.Count(); got != 5000 {
		t.Errorf("expected count 5000, got %d", got)
	}
}

// ── counters and gauges ──

func TestScanOperationCounter(t *testing.T) {
	p := NewProvider(Config{})

	p.ScanOperationCounter("analyze", "ok")
	p.ScanOperationCounter("analyze", "ok")
	p.ScanOperationCounter("analyze", "error")
	p.ScanOperationCounter("delete", "ok")

	if got := p.GetCounter("scan.operation.count", "analyze", "ok"); got != 2 {
		t.Errorf("expected analyze/ok 2, got %d", got)
	}
	if got := p.GetCounter("scan.operation.count", "analyze", "error"); got != 1 {
		t.Errorf("expected analyze/error 1, got %d", got)
	}
	if got := p.GetCounter("scan.operation.count", "list", "ok"); got != 0 {
		t.Errorf("expected list/ok 0, got %d", got)
	}
}

func TestHealthMetrics(t *testing.T) {
	p := NewProvider(Config{})
	rec := p.HealthMetrics()

	rec.SetDBPoolActive(3)
	rec.SetDBPoolIdle(7)
	rec.SetScansTotal(42)

	if got := p.GetGauge("db.pool.active_connections"); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
	if got := p.GetGauge("scans.total"); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
}

func TestInferenceDuration(t *testing.T) {
	p := NewProvider(Config{})
	p.InferenceDuration(800 * time.Millisecond)
	p.InferenceDuration(3 * time.Second)

	h := p.GetHistogram("inference.request.duration")
	if h == nil {
		t.Fatal("expected histogram to exist")
	}
	if got := h.Count(); got != 2 {
		t.Errorf("expected count 2, got %d", got)
	}
}

// ── middleware ──

func TestMetricsMiddleware_RecordsDuration(t *testing.T) {
	p := NewProvider(Config{})
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/scans", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/scans")

	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}
	if err := p.MetricsMiddleware()(handler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	h := p.GetHistogram("http.server.request.duration")
	if h == nil || h.Count() != 1 {
		t.Fatal("expected one duration observation")
	}

	key := LabelsKey(http.MethodGet, "/api/v1/scans", "200")
	if lh := p.GetLabeledHistogram("http.server.request.duration", key); lh == nil || lh.Count() != 1 {
		t.Errorf("expected labeled observation under %q", key)
	}

	if got := p.GetGauge("http.server.active_requests"); got != 0 {
		t.Errorf("expected active requests back to 0, got %d", got)
	}
}

func TestMetricsMiddleware_Disabled(t *testing.T) {
	p := NewProvider(Config{MetricsEnabled: BoolPtr(false)})
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	if err := p.MetricsMiddleware()(handler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h := p.GetHistogram("http.server.request.duration"); h != nil {
		t.Error("expected no observations while disabled")
	}
}

// ── exposition ──

func TestPrometheusHandler(t *testing.T) {
	p := NewProvider(Config{})
	p.ScanOperationCounter("analyze", "ok")
	p.DirectoryLookupCounter("overpass", "empty")
	p.InferenceDuration(time.Second)
	p.HealthMetrics().SetScansTotal(5)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := p.PrometheusHandler()(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := rec.Body.String()
	for _, want := range []string{
		`scan_operation_count{operation="analyze",outcome="ok"} 1`,
		`directory_lookup_count{source="overpass",outcome="empty"} 1`,
		"# TYPE inference_request_duration_seconds histogram",
		"inference_request_duration_seconds_count 1",
		"scans_total 5",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("exposition missing %q", want)
		}
	}
}

func TestResourceDefaults(t *testing.T) {
	p := NewProvider(Config{})
	res := p.Resource()
	if res["service.name"] != "dermacare-server" {
		t.Errorf("unexpected service name %q", res["service.name"])
	}
	if res["deployment.environment"] != "development" {
		t.Errorf("unexpected environment %q", res["deployment.environment"])
	}
}
