package ai

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/askayo/server/internal/envelope"
	"codeberg.org/askayo/server/internal/errors"
	"codeberg.org/askayo/server/internal/rewriter"
)

// RewriteHandler godoc
// @Summary Rewrite an explanation with AI
// @Description Asks the completion API for a simpler explanation and records token usage and cost
// @Tags ai
// @Accept json
// @Produce json
// @Param request body RewriteRequest true "Rewrite request"
// @Success 200 {object} envelope.Response{data=RewriteResponse}
// @Failure 400 {object} envelope.Response
// @Failure 429 {object} envelope.Response "upstream status mirrored"
// @Failure 500 {object} envelope.Response
// @Router /api/ai/rewrite [post]
func RewriteHandler(svc Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RewriteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.Respond(c, errors.InvalidBody(err), "invalid request body")
			return
		}

		res, err := svc.Rewrite(c.Request.Context(), rewriter.Request{
			ClientID:            req.ClientID,
			TermKey:             req.TermKey,
			TermDisplay:         req.TermDisplay,
			OriginalExplanation: req.OriginalExplanation,
			ComplexityLevel:     req.ComplexityLevel,
			UserContext:         req.UserContext,
		})

		if err != nil {
			errors.Respond(c, err, "Failed to generate AI rewrite")
			return
		}

		envelope.OK(c, RewriteResponse{
			RewriteID:            res.RewriteID,
			RewrittenExplanation: res.RewrittenExplanation,
			TokensUsed:           res.TokensUsed,
			CostUSD:              res.CostUSD,
		})
	}
}

// StatsHandler godoc
// @Summary AI usage totals
// @Tags ai
// @Produce json
// @Success 200 {object} envelope.Response{data=rewriter.Stats}
// @Failure 500 {object} envelope.Response
// @Router /api/ai/stats [get]
func StatsHandler(svc Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svc.Stats(c.Request.Context())
		if err != nil {
			errors.Respond(c, err, "Failed to get AI stats")
			return
		}

		envelope.OK(c, stats)
	}
}
