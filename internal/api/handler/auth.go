package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/lumenpay/admin-gateway/internal/api/middleware"
	"github.com/lumenpay/admin-gateway/internal/pkg/response"
	"github.com/lumenpay/admin-gateway/internal/session"
	"github.com/lumenpay/admin-gateway/internal/upstream"
)

type AuthHandler struct {
	sessions       *session.Manager
	jwtExpireHours int
}

func NewAuthHandler(sessions *session.Manager, jwtExpireHours int) *AuthHandler {
	return &AuthHandler{
		sessions:       sessions,
		jwtExpireHours: jwtExpireHours,
	}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates against the upstream and hands the SPA a gateway
// token bound to the persisted session.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	sess, token, err := h.sessions.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if upstream.IsUnauthorized(err) {
			response.AuthError(c, upstream.Detail(err, "invalid credentials"))
			return
		}
		handleError(c, err)
		return
	}

	response.Success(c, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"expires_in":   int64(h.jwtExpireHours) * 3600,
		"user":         sess.User,
	})
}

// Me re-validates the session against the upstream profile endpoint.
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	profile, err := h.sessions.RefreshProfile(c.Request.Context(), sess)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, profile)
}

// Logout drops the session; the upstream is not told.
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	if err := h.sessions.Logout(c.Request.Context(), sess.ID); err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, nil)
}
