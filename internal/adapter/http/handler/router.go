package handler

import (
	"loyalty-pass-service/internal/adapter/http/middleware"
	"loyalty-pass-service/internal/adapter/metrics"
	"loyalty-pass-service/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	LoyaltySvc     ports.LoyaltyService
	PassGen        ports.PassGenerator
	HealthCheckers []ports.HealthChecker
	Metrics        *metrics.Metrics // nil = /metrics disabled
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	passHandler := NewPassHandler(deps.LoyaltySvc, deps.PassGen, deps.Logger)
	pass := r.Group("/pass")
	{
		pass.POST("/:userId", passHandler.Create)
		pass.PUT("/:userId", passHandler.Update)
		pass.GET("/:userId", passHandler.Get)
	}

	return r
}
