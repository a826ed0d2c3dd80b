package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerChatRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerChatRoutes wires the chat API. Rate limiting guards the whole
// group: every chat turn can cost a model call plus an upstream call.
func (srv *HTTPServer) registerChatRoutes() {
	api := srv.gin.Group("/api")
	api.Use(srv.mw.RateLimit())

	api.POST("/ai", srv.chatHandler.ProcessMessage)
	api.GET("/search-loads", srv.chatHandler.SearchLoadsPassthrough)

	srv.l.Infof(context.Background(), "Chat routes registered at /api/ai and /api/search-loads")
}
