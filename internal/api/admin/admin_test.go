//go:build unit
// +build unit

package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MGTheTrain/jaxws-example/internal/pkg/config"
	"github.com/MGTheTrain/jaxws-example/internal/pkg/soap"
	"github.com/MGTheTrain/jaxws-example/internal/pkg/testutil"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminRouter(checks *HealthCheckRegistry, registry *prometheus.Registry) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r, checks, registry)
	return r
}

func serve(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestPing(t *testing.T) {
	r := newAdminRouter(NewHealthCheckRegistry(), prometheus.NewRegistry())

	w := serve(r, "/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestHealthCheck(t *testing.T) {
	healthy := HealthCheckFunc(func(context.Context) (string, error) { return "ok", nil })
	failing := HealthCheckFunc(func(context.Context) (string, error) { return "", errors.New("connection refused") })
	panicking := HealthCheckFunc(func(context.Context) (string, error) { panic("boom") })

	t.Run("all healthy", func(t *testing.T) {
		checks := NewHealthCheckRegistry()
		checks.Register("database", healthy)
		w := serve(newAdminRouter(checks, prometheus.NewRegistry()), "/healthcheck")

		assert.Equal(t, http.StatusOK, w.Code)
		var results map[string]Result
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
		assert.Equal(t, Result{Healthy: true, Message: "ok"}, results["database"])
	})

	t.Run("one unhealthy", func(t *testing.T) {
		checks := NewHealthCheckRegistry()
		checks.Register("database", failing)
		checks.Register("soap", healthy)
		w := serve(newAdminRouter(checks, prometheus.NewRegistry()), "/healthcheck")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "connection refused")
	})

	t.Run("panicking check", func(t *testing.T) {
		checks := NewHealthCheckRegistry()
		checks.Register("broken", panicking)
		results := checks.RunAll(context.Background())

		assert.False(t, results["broken"].Healthy)
		assert.Contains(t, results["broken"].Message, "boom")
	})

	t.Run("no checks", func(t *testing.T) {
		w := serve(newAdminRouter(NewHealthCheckRegistry(), prometheus.NewRegistry()), "/healthcheck")
		assert.Equal(t, http.StatusNotImplemented, w.Code)
	})
}

func TestEndpointsCheck(t *testing.T) {
	bundle, err := soap.NewBundle(&config.SoapSettings{BasePath: "/soap"}, testutil.NewRecordingLogger())
	require.NoError(t, err)
	check := NewEndpointsCheck(bundle)

	_, err = check.Check(context.Background())
	assert.Error(t, err)

	type pingMessage struct {
		Value string `xml:"value"`
	}
	service := &soap.Service{
		Name:      "PingService",
		Namespace: "urn:ping",
		Operations: []soap.Operation{
			soap.NewOperation("ping", func(_ context.Context, req *pingMessage) (*pingMessage, error) { return req, nil }),
		},
	}
	require.NoError(t, bundle.PublishEndpoint(soap.NewEndpoint("/ping", service)))

	message, err := check.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1 SOAP endpoints published", message)
}

func TestMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "jaxws_test_total", Help: "test counter"})
	registry.MustRegister(counter)
	counter.Inc()

	checks := NewHealthCheckRegistry()
	checks.Register("a", HealthCheckFunc(func(context.Context) (string, error) { return "", nil }))
	checks.Register("b", HealthCheckFunc(func(context.Context) (string, error) { return "", nil }))
	assert.Equal(t, []string{"a", "b"}, checks.Names())

	w := serve(newAdminRouter(checks, registry), "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jaxws_test_total 1")
}
