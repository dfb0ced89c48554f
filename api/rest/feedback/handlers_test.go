package feedback

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/askayo/server/internal/errors"
	"codeberg.org/askayo/server/internal/ingestion"
)

// implements Service for testing
type mockService struct {
	recordLookupFunc   func(ctx context.Context, in ingestion.LookupInput) (*ingestion.LookupResult, error)
	submitFeedbackFunc func(ctx context.Context, in ingestion.FeedbackInput) (int64, error)
	userStatsFunc      func(ctx context.Context, clientID string) (*ingestion.UserStats, error)
}

func (m *mockService) RecordLookup(ctx context.Context, in ingestion.LookupInput) (*ingestion.LookupResult, error) {
	return m.recordLookupFunc(ctx, in)
}

func (m *mockService) SubmitFeedback(ctx context.Context, in ingestion.FeedbackInput) (int64, error) {
	return m.submitFeedbackFunc(ctx, in)
}

func (m *mockService) UserStats(ctx context.Context, clientID string) (*ingestion.UserStats, error) {
	return m.userStatsFunc(ctx, clientID)
}

func serve(svc Service, method, path, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	RegisterRoutes(router.Group("/api"), svc)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestLookupHandler_Success(t *testing.T) {
	var got ingestion.LookupInput

	svc := &mockService{
		recordLookupFunc: func(_ context.Context, in ingestion.LookupInput) (*ingestion.LookupResult, error) {
			got = in
			return &ingestion.LookupResult{LookupID: 42, TotalLookups: 7}, nil
		},
	}

	w := serve(svc, http.MethodPost, "/api/feedback/lookup",
		`{"client_id":"c1","term_key":"apr","term_display":"APR","page_url":"https://x.example","found":false}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"lookup_id":42,"total_lookups":7}}`, w.Body.String())

	assert.Equal(t, "APR", got.TermDisplay)
	require.NotNil(t, got.Found)
	assert.False(t, *got.Found)
	require.NotNil(t, got.PageURL)
	assert.Equal(t, "https://x.example", *got.PageURL)
	assert.Nil(t, got.PageContext)
}

func TestLookupHandler_MalformedJSON(t *testing.T) {
	svc := &mockService{
		recordLookupFunc: func(context.Context, ingestion.LookupInput) (*ingestion.LookupResult, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}

	w := serve(svc, http.MethodPost, "/api/feedback/lookup", `{"client_id": "c1",`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"invalid request body"}`, w.Body.String())
}

func TestLookupHandler_TypeMismatchNamesField(t *testing.T) {
	svc := &mockService{
		recordLookupFunc: func(context.Context, ingestion.LookupInput) (*ingestion.LookupResult, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}

	tests := []struct {
		body string
		want string
	}{
		{`{"client_id": 123, "term_key": "apr"}`, "client_id must be a string"},
		{`{"client_id": "c1", "term_key": "apr", "found": "false"}`, "found must be a boolean"},
	}

	for _, tt := range tests {
		w := serve(svc, http.MethodPost, "/api/feedback/lookup", tt.body)

		assert.Equal(t, http.StatusBadRequest, w.Code, tt.body)
		assert.JSONEq(t, `{"success":false,"error":"`+tt.want+`"}`, w.Body.String(), tt.body)
	}
}

func TestLookupHandler_ValidationError(t *testing.T) {
	svc := &mockService{
		recordLookupFunc: func(context.Context, ingestion.LookupInput) (*ingestion.LookupResult, error) {
			return nil, errors.Validation("client_id and term_key are required", "client_id", "term_key")
		},
	}

	w := serve(svc, http.MethodPost, "/api/feedback/lookup", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"client_id and term_key are required"}`, w.Body.String())
}

func TestLookupHandler_PersistenceErrorIsGeneric(t *testing.T) {
	svc := &mockService{
		recordLookupFunc: func(context.Context, ingestion.LookupInput) (*ingestion.LookupResult, error) {
			return nil, errors.Persistence("create term lookup", stderrors.New("relation term_lookups does not exist"))
		},
	}

	w := serve(svc, http.MethodPost, "/api/feedback/lookup", `{"client_id":"c1","term_key":"apr"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Failed to track lookup"}`, w.Body.String())
}

func TestSubmitHandler(t *testing.T) {
	svc := &mockService{
		submitFeedbackFunc: func(_ context.Context, in ingestion.FeedbackInput) (int64, error) {
			assert.Equal(t, "confused", in.FeedbackType)
			require.NotNil(t, in.Comment)
			assert.Equal(t, "huh", *in.Comment)
			return 9, nil
		},
	}

	w := serve(svc, http.MethodPost, "/api/feedback/submit",
		`{"client_id":"c1","term_key":"apr","feedback_type":"confused","comment":"huh"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"feedback_id":9}}`, w.Body.String())
}

func TestSubmitHandler_InvalidType(t *testing.T) {
	svc := &mockService{
		submitFeedbackFunc: func(context.Context, ingestion.FeedbackInput) (int64, error) {
			return 0, errors.Validation("feedback_type must be one of: thumbs_up, thumbs_down, confused", "feedback_type")
		},
	}

	w := serve(svc, http.MethodPost, "/api/feedback/submit", `{"client_id":"c1","term_key":"apr","feedback_type":"meh"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "feedback_type must be one of")
}

func TestStatsHandler_UnknownClient(t *testing.T) {
	svc := &mockService{
		userStatsFunc: func(_ context.Context, clientID string) (*ingestion.UserStats, error) {
			assert.Equal(t, "nobody", clientID)
			return &ingestion.UserStats{}, nil
		},
	}

	w := serve(svc, http.MethodGet, "/api/feedback/stats/nobody", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"total_lookups":0,"unique_terms":0,"days_active":0}}`, w.Body.String())
}

func TestStatsHandler_KnownClient(t *testing.T) {
	first := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	last := time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC)

	svc := &mockService{
		userStatsFunc: func(context.Context, string) (*ingestion.UserStats, error) {
			return &ingestion.UserStats{TotalLookups: 12, UniqueTerms: 5, DaysActive: 14, FirstSeen: &first, LastSeen: &last}, nil
		},
	}

	w := serve(svc, http.MethodGet, "/api/feedback/stats/c1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{
		"total_lookups":12,"unique_terms":5,"days_active":14,
		"first_seen":"2025-06-01T09:00:00Z","last_seen":"2025-06-14T09:00:00Z"}}`, w.Body.String())
}
