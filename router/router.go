package router

import (
	"github.com/gin-gonic/gin"

	"go-splendor/controller"
	"go-splendor/middleware"
	"go-splendor/ws"
)

func InitRouter(r *gin.Engine) {
	// 游戏接口路由
	api := r.Group("/api")
	{
		api.POST("/login", controller.Login)
		api.POST("/refresh", controller.Refresh)

		auth := api.Group("", middleware.AuthMiddleware())
		{
			auth.GET("/me", controller.Me)
			auth.POST("/game", controller.CreateGame)
			auth.GET("/game/:id", controller.GetGame)
			auth.POST("/game/:id/join", controller.JoinGame)
			auth.POST("/game/:id/start", controller.StartGame)
			auth.POST("/game/:id/action", controller.PostAction)
		}
	}
	r.GET("/game/:id/qrcode", controller.JoinQRCode)

	// WebSocket 路由
	r.GET("/ws", ws.HandleWebSocket)
}
