package testingutils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tasteit/tasteit/backend/internal/middleware"
	"github.com/tasteit/tasteit/backend/internal/model"
)

// SetupTestRouter creates a new Gin router for testing
func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(zap.NewNop()))
	router.Use(middleware.CORS())
	return router
}

// PerformRequest performs an HTTP request for testing
func PerformRequest(router http.Handler, method, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, nil)
	// set by net/http servers, not by NewRequest
	req.RequestURI = path
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// AssertError asserts the status code and the {"error": ...} body of a failed request
func AssertError(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int) string {
	t.Helper()
	assert.Equal(t, expectedStatus, w.Code)

	var body middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Error)
	return body.Error
}

// DecodeResults decodes a successful list response
func DecodeResults(t *testing.T, w *httptest.ResponseRecorder) []model.MatchResult {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var results []model.MatchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	return results
}

// Names returns the recipe names of results in order
func Names(results []model.MatchResult) []string {
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Recipe.Name
	}
	return names
}
