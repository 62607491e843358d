package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) Response {
	var resp Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	return resp
}

func serve(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	router := gin.New()
	router.GET("/test", handler)

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSuccess(t *testing.T) {
	w := serve(func(c *gin.Context) {
		Success(c, gin.H{"key": "value"})
	})

	assert.Equal(t, http.StatusOK, w.Code)

	resp := parseResponse(t, w)
	assert.Equal(t, CodeSuccess, resp.Code)
	assert.Equal(t, "success", resp.Message)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "value", data["key"])
}

func TestSuccess_NilData(t *testing.T) {
	w := serve(func(c *gin.Context) {
		Success(c, nil)
	})

	resp := parseResponse(t, w)
	assert.Equal(t, CodeSuccess, resp.Code)
	assert.Nil(t, resp.Data)
}

func TestSuccessPage(t *testing.T) {
	w := serve(func(c *gin.Context) {
		SuccessPage(c, 42, 2, 10, []string{"a", "b"})
	})

	resp := parseResponse(t, w)
	assert.Equal(t, CodeSuccess, resp.Code)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(42), data["total"])
	assert.Equal(t, float64(2), data["page"])
	assert.Equal(t, float64(10), data["size"])
	assert.Len(t, data["items"], 2)
}

func TestError_DefaultMessage(t *testing.T) {
	w := serve(func(c *gin.Context) {
		Error(c, CodeUpstreamError, "")
	})

	// business errors keep HTTP 200; the code carries the failure
	assert.Equal(t, http.StatusOK, w.Code)

	resp := parseResponse(t, w)
	assert.Equal(t, CodeUpstreamError, resp.Code)
	assert.Equal(t, "upstream request failed", resp.Message)
}

func TestParamError(t *testing.T) {
	w := serve(func(c *gin.Context) {
		ParamError(c, "bot_id is required")
	})

	resp := parseResponse(t, w)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, CodeParamError, resp.Code)
	assert.Equal(t, "bot_id is required", resp.Message)
}

func TestAuthError(t *testing.T) {
	w := serve(func(c *gin.Context) {
		AuthError(c, "")
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	resp := parseResponse(t, w)
	assert.Equal(t, CodeAuthFailed, resp.Code)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "/auth/login", data["redirect"])
}

func TestAuthRedirect(t *testing.T) {
	w := serve(func(c *gin.Context) {
		AuthRedirect(c, "/subscribers")
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	resp := parseResponse(t, w)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "/auth/login", data["redirect"])
	assert.Equal(t, "/subscribers", data["from"])
}
