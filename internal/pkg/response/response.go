package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CodeSuccess       = 0
	CodeParamError    = 1000
	CodeAuthFailed    = 1001
	CodeNotFound      = 1003
	CodeUpstreamError = 1006
	CodeServerError   = 5000
)

var codeMessages = map[int]string{
	CodeSuccess:       "success",
	CodeParamError:    "invalid parameters",
	CodeAuthFailed:    "authentication required",
	CodeNotFound:      "resource not found",
	CodeUpstreamError: "upstream request failed",
	CodeServerError:   "internal server error",
}

// Response is the envelope every gateway endpoint returns.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// PageData mirrors the upstream pagination envelope.
type PageData struct {
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Size  int         `json:"size"`
	Items interface{} `json:"items"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    CodeSuccess,
		Message: "success",
		Data:    data,
	})
}

func SuccessPage(c *gin.Context, total int64, page, size int, items interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    CodeSuccess,
		Message: "success",
		Data: PageData{
			Total: total,
			Page:  page,
			Size:  size,
			Items: items,
		},
	})
}

func Error(c *gin.Context, code int, message string) {
	if message == "" {
		message = codeMessages[code]
	}
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
		Data:    nil,
	})
}

func ParamError(c *gin.Context, message string) {
	Error(c, CodeParamError, message)
}

// AuthError is the only helper that sets a non-200 HTTP status: the admin
// SPA's interceptor keys off 401 to drop its session and go to login.
func AuthError(c *gin.Context, message string) {
	if message == "" {
		message = codeMessages[CodeAuthFailed]
	}
	c.JSON(http.StatusUnauthorized, Response{
		Code:    CodeAuthFailed,
		Message: message,
		Data:    gin.H{"redirect": "/auth/login"},
	})
}

// AuthRedirect is AuthError with the originally requested path preserved,
// so the SPA can return there after login.
func AuthRedirect(c *gin.Context, from string) {
	c.JSON(http.StatusUnauthorized, Response{
		Code:    CodeAuthFailed,
		Message: codeMessages[CodeAuthFailed],
		Data:    gin.H{"redirect": "/auth/login", "from": from},
	})
}

func NotFoundError(c *gin.Context, message string) {
	Error(c, CodeNotFound, message)
}

func UpstreamError(c *gin.Context, message string) {
	Error(c, CodeUpstreamError, message)
}

func ServerError(c *gin.Context, message string) {
	Error(c, CodeServerError, message)
}
