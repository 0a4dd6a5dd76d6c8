package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func TestMetrics_CountsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Metrics())
	r.GET("/listings/:id", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/listings/abc", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request -> %d", w.Code)
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := w.Body.String()

	// The route label must be the pattern, not the raw URL.
	if !strings.Contains(body, `path="/listings/:id"`) {
		t.Fatalf("expected route-pattern label in metrics output")
	}
	if strings.Contains(body, `path="/listings/abc"`) {
		t.Fatalf("raw URL leaked into metric labels")
	}
	if !strings.Contains(body, "http_requests_total") ||
		!strings.Contains(body, "http_request_duration_seconds") {
		t.Fatalf("expected HTTP collectors in metrics output")
	}
}
