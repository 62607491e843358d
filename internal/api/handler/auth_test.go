package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenpay/admin-gateway/internal/api/middleware"
	"github.com/lumenpay/admin-gateway/internal/pkg/response"
	"github.com/lumenpay/admin-gateway/internal/upstream"
)

func setupAuthRouter(env *handlerEnv) *gin.Engine {
	handler := NewAuthHandler(env.sessions, 24)

	router := gin.New()
	router.POST("/auth/login", handler.Login)

	guarded := router.Group("", middleware.Auth(env.sessions))
	guarded.GET("/auth/me", handler.Me)
	guarded.POST("/auth/logout", handler.Logout)

	return router
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success returns the gateway token and profile", func(t *testing.T) {
		env := setupHandlerEnv(t)
		env.backend.RespondJSON("/auth/login", http.StatusOK, upstream.TokenResponse{AccessToken: "upstream-token"})
		env.backend.RespondJSON("/auth/me", http.StatusOK, upstream.AdminProfile{ID: 7, Username: "admin", IsActive: true})
		router := setupAuthRouter(env)

		w := performRequest(router, "POST", "/auth/login", gin.H{
			"username": "admin",
			"password": "password",
		})
		resp := parseResponse(t, w)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, response.CodeSuccess, resp.Code)

		data := resp.Data.(map[string]interface{})
		assert.NotEmpty(t, data["access_token"])
		assert.Equal(t, "bearer", data["token_type"])
		assert.Equal(t, float64(24*3600), data["expires_in"])

		user := data["user"].(map[string]interface{})
		assert.Equal(t, "admin", user["username"])
	})

	t.Run("invalid credentials return 401 with the upstream detail", func(t *testing.T) {
		env := setupHandlerEnv(t)
		env.backend.RespondJSON("/auth/login", http.StatusUnauthorized, gin.H{"detail": "Incorrect username or password"})
		router := setupAuthRouter(env)

		w := performRequest(router, "POST", "/auth/login", gin.H{
			"username": "admin",
			"password": "wrong",
		})
		resp := parseResponse(t, w)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, response.CodeAuthFailed, resp.Code)
		assert.Equal(t, "Incorrect username or password", resp.Message)
	})

	t.Run("missing fields are a parameter error", func(t *testing.T) {
		env := setupHandlerEnv(t)
		router := setupAuthRouter(env)

		w := performRequest(router, "POST", "/auth/login", gin.H{"username": "admin"})
		resp := parseResponse(t, w)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, response.CodeParamError, resp.Code)
		assert.Equal(t, 0, env.backend.TotalCalls())
	})
}

func TestAuthHandler_MeAndLogout(t *testing.T) {
	env := setupHandlerEnv(t)
	token := env.stubAuth(t)
	router := setupAuthRouter(env)

	w := performRequest(router, "GET", "/auth/me", nil, "Authorization", "Bearer "+token)
	resp := parseResponse(t, w)
	require.Equal(t, response.CodeSuccess, resp.Code)

	profile := resp.Data.(map[string]interface{})
	assert.Equal(t, "admin", profile["username"])

	w = performRequest(router, "POST", "/auth/logout", nil, "Authorization", "Bearer "+token)
	resp = parseResponse(t, w)
	require.Equal(t, response.CodeSuccess, resp.Code)

	// the token no longer resolves
	w = performRequest(router, "GET", "/auth/me", nil, "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthGuard(t *testing.T) {
	env := setupHandlerEnv(t)
	token := env.stubAuth(t)

	router := gin.New()
	guarded := router.Group("", middleware.Auth(env.sessions))
	guarded.GET("/protected", func(c *gin.Context) {
		// the guard must place the upstream token in the request context
		response.Success(c, gin.H{"token": upstream.TokenFromContext(c.Request.Context())})
	})

	t.Run("no header redirects to login", func(t *testing.T) {
		w := performRequest(router, "GET", "/protected", nil)
		resp := parseResponse(t, w)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, response.CodeAuthFailed, resp.Code)

		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "/auth/login", data["redirect"])
		assert.Equal(t, "/protected", data["from"])
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		w := performRequest(router, "GET", "/protected", nil, "Authorization", "Token abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		w := performRequest(router, "GET", "/protected", nil, "Authorization", "Bearer garbage")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token passes with the upstream bearer attached", func(t *testing.T) {
		w := performRequest(router, "GET", "/protected", nil, "Authorization", "Bearer "+token)
		resp := parseResponse(t, w)

		require.Equal(t, http.StatusOK, w.Code)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "upstream-token", data["token"])
	})
}
