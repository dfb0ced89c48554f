package errors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/askayo/server/internal/envelope"
	"codeberg.org/askayo/server/internal/logger"
)

// Error Handling Guidelines:
//
// For HTTP handlers:
//   - Call errors.Respond() with whatever the service returned; it picks the
//     status, logs server-side failures and writes the envelope
//   - Use errors.BadRequest() for input problems detected in the handler itself
//   - Never log an error and then also pass it to Respond()
//   - Server-side failures are attached to c.Errors for the error-event middleware
//
// For services/repositories:
//   - Return ValidationError before any write happens
//   - Wrap database failures with errors.Persistence("op", err)
//   - Do not log errors that are returned to the caller

// maps err onto the envelope; message is what the client sees for 500s
func Respond(c *gin.Context, err error, message string) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		BadRequest(c, validationErr.Message)
		return
	}

	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		UpstreamFailure(c, upstreamErr)
		return
	}

	InternalError(c, message, err)
}

// writes a 400 with message
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "invalid request"
	}

	envelope.Fail(c, http.StatusBadRequest, message)
}

// writes an upstream failure, mirroring the provider's status when it is an error status
func UpstreamFailure(c *gin.Context, err *UpstreamError) {
	_ = c.Error(err)

	status := err.StatusCode
	if status < 400 || status > 599 {
		status = http.StatusInternalServerError
	}

	logger.FromContext(c.Request.Context()).Error("upstream request failed",
		"provider", err.Provider,
		"status", err.StatusCode,
		"error", err,
		"path", c.Request.URL.Path,
	)

	envelope.Fail(c, status, err.Error())
}

// logs err with request context and writes a generic 500
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	if err != nil {
		_ = c.Error(err)
	}

	logger.FromContext(c.Request.Context()).Error(message,
		"error", err,
		"category", classifyError(err),
		"pg_code", pgCode(err),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)

	envelope.Fail(c, http.StatusInternalServerError, message)
}
