package analytics

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/askayo/server/internal/analytics"
	"codeberg.org/askayo/server/internal/envelope"
	"codeberg.org/askayo/server/internal/errors"
)

// OverviewHandler godoc
// @Summary Analytics overview
// @Description Totals plus the top popular, confusing and missing terms
// @Tags analytics
// @Produce json
// @Success 200 {object} envelope.Response{data=analytics.Overview}
// @Failure 500 {object} envelope.Response
// @Router /api/analytics/overview [get]
func OverviewHandler(svc Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		overview, err := svc.Overview(c.Request.Context())
		if err != nil {
			errors.Respond(c, err, "Failed to get analytics overview")
			return
		}

		envelope.OK(c, overview)
	}
}

// DailyHandler godoc
// @Summary Daily rollups
// @Tags analytics
// @Produce json
// @Param days query int false "Days to include (1-365)" default(30)
// @Success 200 {object} envelope.Response{data=[]daily.Rollup}
// @Failure 400 {object} envelope.Response
// @Failure 500 {object} envelope.Response
// @Router /api/analytics/daily [get]
func DailyHandler(svc Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		days, err := analytics.ParseDays(c.Query("days"))
		if err != nil {
			errors.Respond(c, err, "Failed to get daily analytics")
			return
		}

		rollups, err := svc.Daily(c.Request.Context(), days)
		if err != nil {
			errors.Respond(c, err, "Failed to get daily analytics")
			return
		}

		envelope.OK(c, rollups)
	}
}

// TermHandler godoc
// @Summary Analytics for one term
// @Tags analytics
// @Produce json
// @Param term_key path string true "Term key"
// @Success 200 {object} envelope.Response{data=analytics.TermDetail}
// @Failure 500 {object} envelope.Response
// @Router /api/analytics/term/{term_key} [get]
func TermHandler(svc Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		detail, err := svc.TermDetail(c.Request.Context(), c.Param("term_key"))
		if err != nil {
			errors.Respond(c, err, "Failed to get term analytics")
			return
		}

		envelope.OK(c, detail)
	}
}

// UserEngagementHandler godoc
// @Summary User engagement metrics
// @Tags analytics
// @Produce json
// @Success 200 {object} envelope.Response{data=analytics.Engagement}
// @Failure 500 {object} envelope.Response
// @Router /api/analytics/user-engagement [get]
func UserEngagementHandler(svc Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		engagement, err := svc.UserEngagement(c.Request.Context())
		if err != nil {
			errors.Respond(c, err, "Failed to get user engagement metrics")
			return
		}

		envelope.OK(c, engagement)
	}
}
