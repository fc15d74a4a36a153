package api

import (
	"net/http"

	_ "github.com/Domenick1991/cargoeta/docs"
	"github.com/Domenick1991/cargoeta/internal/middleware"
	"github.com/Domenick1991/cargoeta/internal/service/containers"
	"github.com/Domenick1991/cargoeta/internal/service/eta"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RouterConfig struct {
	Containers containers.ContainerUseCase
	Eta        eta.EtaUseCase

	// Optional pieces; nil values are skipped.
	Metrics     MetricsExporter
	Health      http.Handler
	RateLimiter *middleware.RateLimiter
}

type MetricsExporter interface {
	middleware.RequestRecorder
	Handler() http.Handler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.Logger())
	if cfg.Metrics != nil {
		router.Use(middleware.Metrics(cfg.Metrics))
		router.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}
	if cfg.Health != nil {
		router.GET("/healthz", gin.WrapH(cfg.Health))
	}
	router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json"))))

	public := router.Group("/")
	if cfg.RateLimiter != nil {
		public.Use(cfg.RateLimiter.Limit())
	}
	NewContainerHandler(cfg.Containers).Register(public.Group("/containers"))
	NewEtaHandler(cfg.Eta).Register(public.Group("/eta"))

	return router
}
