package analytics

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, svc Service) {
	analyticsGroup := router.Group("/analytics")
	{
		analyticsGroup.GET("/overview", OverviewHandler(svc))
		analyticsGroup.GET("/daily", DailyHandler(svc))
		analyticsGroup.GET("/term/:term_key", TermHandler(svc))
		analyticsGroup.GET("/user-engagement", UserEngagementHandler(svc))
	}
}
