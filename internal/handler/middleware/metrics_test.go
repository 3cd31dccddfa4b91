//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"genesis-storefront/internal/handler/middleware"
	"genesis-storefront/internal/pkg/metrics"
	"genesis-storefront/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := metrics.New()
	router := gin.New()
	router.Use(middleware.MetricsMiddleware(m))
	router.GET("/api/destinations/:id", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	httptest.PerformRequest(t, router, http.MethodGet, "/api/destinations/1", nil)
	httptest.PerformRequest(t, router, http.MethodGet, "/api/destinations/2", nil)
	httptest.PerformRequest(t, router, http.MethodGet, "/wp-admin", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/api/destinations/:id", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "unmatched", "404")))
}
