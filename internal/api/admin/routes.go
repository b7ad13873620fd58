// Package admin serves the operational endpoints on the admin port.
package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes registers /ping, /healthcheck and /metrics
func SetupRoutes(r gin.IRouter, checks *HealthCheckRegistry, gatherer prometheus.Gatherer) {
	r.GET("/ping", ping)
	r.GET("/healthcheck", healthCheck(checks))
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

func ping(ctx *gin.Context) {
	ctx.Header("Cache-Control", "must-revalidate,no-cache,no-store")
	ctx.String(http.StatusOK, "pong")
}

func healthCheck(checks *HealthCheckRegistry) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		results := checks.RunAll(ctx.Request.Context())

		status := http.StatusOK
		if len(results) == 0 {
			status = http.StatusNotImplemented
		}
		for _, result := range results {
			if !result.Healthy {
				status = http.StatusInternalServerError
				break
			}
		}

		ctx.Header("Cache-Control", "must-revalidate,no-cache,no-store")
		ctx.JSON(status, results)
	}
}
