package feedback

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/askayo/server/internal/envelope"
	"codeberg.org/askayo/server/internal/errors"
	"codeberg.org/askayo/server/internal/ingestion"
)

// LookupHandler godoc
// @Summary Track a term lookup
// @Description Records one lookup, bumps the client's counter and tracks missing terms
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body LookupRequest true "Lookup"
// @Success 200 {object} envelope.Response{data=LookupResponse}
// @Failure 400 {object} envelope.Response
// @Failure 500 {object} envelope.Response
// @Router /api/feedback/lookup [post]
func LookupHandler(svc Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LookupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.Respond(c, errors.InvalidBody(err), "invalid request body")
			return
		}

		res, err := svc.RecordLookup(c.Request.Context(), ingestion.LookupInput{
			ClientID:        req.ClientID,
			TermKey:         req.TermKey,
			TermDisplay:     req.TermDisplay,
			ComplexityLevel: req.ComplexityLevel,
			PageURL:         req.PageURL,
			PageContext:     req.PageContext,
			Found:           req.Found,
		})

		if err != nil {
			errors.Respond(c, err, "Failed to track lookup")
			return
		}

		envelope.OK(c, LookupResponse{
			LookupID:     res.LookupID,
			TotalLookups: res.TotalLookups,
		})
	}
}

// SubmitHandler godoc
// @Summary Submit feedback on a term
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body SubmitRequest true "Feedback"
// @Success 200 {object} envelope.Response{data=SubmitResponse}
// @Failure 400 {object} envelope.Response
// @Failure 500 {object} envelope.Response
// @Router /api/feedback/submit [post]
func SubmitHandler(svc Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubmitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.Respond(c, errors.InvalidBody(err), "invalid request body")
			return
		}

		id, err := svc.SubmitFeedback(c.Request.Context(), ingestion.FeedbackInput{
			ClientID:        req.ClientID,
			TermKey:         req.TermKey,
			FeedbackType:    req.FeedbackType,
			ComplexityLevel: req.ComplexityLevel,
			Comment:         req.Comment,
		})

		if err != nil {
			errors.Respond(c, err, "Failed to submit feedback")
			return
		}

		envelope.OK(c, SubmitResponse{FeedbackID: id})
	}
}

// StatsHandler godoc
// @Summary Get a client's usage stats
// @Tags feedback
// @Produce json
// @Param client_id path string true "Client ID"
// @Success 200 {object} envelope.Response{data=StatsResponse}
// @Failure 500 {object} envelope.Response
// @Router /api/feedback/stats/{client_id} [get]
func StatsHandler(svc Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svc.UserStats(c.Request.Context(), c.Param("client_id"))
		if err != nil {
			errors.Respond(c, err, "Failed to get stats")
			return
		}

		envelope.OK(c, StatsResponse{
			TotalLookups: stats.TotalLookups,
			UniqueTerms:  stats.UniqueTerms,
			DaysActive:   stats.DaysActive,
			FirstSeen:    stats.FirstSeen,
			LastSeen:     stats.LastSeen,
		})
	}
}
