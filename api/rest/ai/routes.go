package ai

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, svc Service) {
	aiGroup := router.Group("/ai")
	{
		aiGroup.POST("/rewrite", RewriteHandler(svc))
		aiGroup.GET("/stats", StatsHandler(svc))
	}
}
