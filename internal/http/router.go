// README: HTTP router registration.
package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/http/handlers"
	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/http/middleware"
	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/modules/dialogue"
)

func NewRouter(engine *dialogue.Engine) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	chat := handlers.NewChatHandler(engine)
	r.POST("/api/chat", chat.Chat)
	r.POST("/api/chat/reset", chat.Reset)
	r.GET("/api/health", handlers.Health)

	return r
}
