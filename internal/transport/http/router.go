package http

import (
	"github.com/gin-gonic/gin"

	"github.com/iamasit07/5-in-a-row/backend/internal/transport/http/middleware"
)

// NewRouter wires the REST API. ws may be nil when websockets are not served.
func NewRouter(engine *EngineHandler, matches *MatchHandler, ws gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware())

	router.GET("/health", engine.Health)

	api := router.Group("/api")
	{
		api.GET("/tiers", engine.GetTiers)
		api.POST("/decide", engine.Decide)

		api.POST("/matches", matches.CreateMatch)
		api.GET("/matches/:id", matches.GetMatch)
	}

	protected := api.Group("/matches/:id")
	protected.Use(middleware.MatchAuthMiddleware())
	{
		protected.POST("/moves", matches.MakeMove)
	}

	// WebSocket route (auth handled inside the WS handler itself)
	if ws != nil {
		router.GET("/ws", ws)
	}

	return router
}
