package config

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crudapp/pkg/metrics"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func newTestRateLimiter() *RateLimiter {
	logger := zap.NewNop()
	appMetrics := metrics.NewAppMetrics(prometheus.NewRegistry())

	return NewRateLimiter(logger, appMetrics)
}

func TestNewRateLimiter(t *testing.T) {
	RegisterTestingT(t)

	rl := newTestRateLimiter()

	Expect(rl).ToNot(BeNil())
	Expect(rl.cache).ToNot(BeNil())
	Expect(rl.config).ToNot(BeNil())
	Expect(rl.logger).ToNot(BeNil())
	Expect(rl.metrics).ToNot(BeNil())
}

func TestRateLimitMiddleware_AllowedRequests(t *testing.T) {
	RegisterTestingT(t)

	rl := newTestRateLimiter()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(rl.RateLimitMiddleware())

	router.GET("/test", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/test", nil)
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(200))
		Expect(w.Header().Get("X-RateLimit-Limit")).ToNot(BeEmpty())
		Expect(w.Header().Get("X-RateLimit-Remaining")).ToNot(BeEmpty())
	}
}

func TestRateLimitMiddleware_ExceedLimit(t *testing.T) {
	RegisterTestingT(t)

	rl := newTestRateLimiter()
	rl.SetConfig("GET /test", RateLimitEndpointConfig{
		Requests: 3,
		Window:   time.Minute,
		KeyFunc:  func(c *gin.Context) string { return "fixed" },
	})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(rl.RateLimitMiddleware())

	router.GET("/test", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	var lastCode int

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/test", nil)
		router.ServeHTTP(w, req)
		lastCode = w.Code
	}

	Expect(lastCode).To(Equal(http.StatusTooManyRequests))
}

func TestRateLimitMiddleware_WindowResets(t *testing.T) {
	RegisterTestingT(t)

	rl := newTestRateLimiter()
	rl.SetConfig("GET /test", RateLimitEndpointConfig{
		Requests: 1,
		Window:   10 * time.Millisecond,
		KeyFunc:  func(c *gin.Context) string { return "fixed" },
	})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(rl.RateLimitMiddleware())

	router.GET("/test", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	serve := func() int {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/test", nil)
		router.ServeHTTP(w, req)
		return w.Code
	}

	Expect(serve()).To(Equal(200))
	Expect(serve()).To(Equal(http.StatusTooManyRequests))

	time.Sleep(20 * time.Millisecond)

	Expect(serve()).To(Equal(200))
}

func TestRateLimiter_Stats(t *testing.T) {
	RegisterTestingT(t)

	rl := newTestRateLimiter()

	stats := rl.Stats()

	Expect(stats["configs"]).To(BeNumerically(">", 0))
}
