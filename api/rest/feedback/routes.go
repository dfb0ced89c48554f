package feedback

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, svc Service) {
	feedbackGroup := router.Group("/feedback")
	{
		feedbackGroup.POST("/lookup", LookupHandler(svc))
		feedbackGroup.POST("/submit", SubmitHandler(svc))
		feedbackGroup.GET("/stats/:client_id", StatsHandler(svc))
	}
}
