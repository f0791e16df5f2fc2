package metrics

import (
	"net/http/httptest"
	"testing"
)

func TestInitRegistryIdempotent(t *testing.T) {
	r1 := InitRegistry()
	r2 := GetRegistry()
	if r1 != r2 {
		t.Error("expected a single shared registry")
	}
}

func TestHandlerServesMetrics(t *testing.T) {
	RecordBatchAnalyzed(3, 0.01)
	RecordValidationFailure()

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.Len() == 0 {
		t.Error("expected metrics exposition output")
	}
}
