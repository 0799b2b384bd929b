package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Katastrophique/projet-agile-carte-du-ciel/internal/logging"
	"github.com/Katastrophique/projet-agile-carte-du-ciel/internal/state"
)

// NewRouter creates and configures the Gin router.
func NewRouter(log *logging.Logger, mgr *state.Manager, cfg *Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))

	handler := NewHandler(log, mgr)
	stream := NewStream(log, mgr)

	v1 := router.Group("/v1")

	sky := v1.Group("/sky")
	sky.GET("/observer", handler.GetObserver)
	sky.GET("/visible", handler.GetVisible)
	sky.GET("/projected", handler.GetProjected)
	sky.GET("/stream", stream.Serve)

	router.GET("/healthz", handler.HealthCheck)

	return router
}
