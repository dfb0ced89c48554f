package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(context.Context) error { return m.err }

func serve(t *testing.T, db Pinger) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/health", Handler(db))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	return w
}

func TestHandler_Healthy(t *testing.T) {
	w := serve(t, &mockPinger{})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"ask-ayo-backend","version":"1.0.0","database":"connected"}`, w.Body.String())
}

func TestHandler_DatabaseDown(t *testing.T) {
	w := serve(t, &mockPinger{err: errors.New("connection refused")})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"unreachable"`)
}
