package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lumenpay/admin-gateway/internal/api/middleware"
	"github.com/lumenpay/admin-gateway/internal/pkg/response"
	"github.com/lumenpay/admin-gateway/internal/service"
	"github.com/lumenpay/admin-gateway/internal/upstream"
)

// The validation sentinels that map to a parameter error for the caller.
var validationErrors = []error{
	service.ErrBotRequired,
	service.ErrNameRequired,
	service.ErrSlugRequired,
	service.ErrTelegramIDRequired,
	service.ErrChannelIDRequired,
	service.ErrCodeRequired,
	service.ErrMessageTextRequired,
	service.ErrTokenRequired,
	service.ErrShopIDRequired,
	service.ErrInvalidDays,
	service.ErrInvalidDuration,
	service.ErrInvalidPrice,
	service.ErrInvalidDiscountType,
	service.ErrInvalidDiscount,
	service.ErrPercentOutOfRange,
	service.ErrInvalidAudience,
	service.ErrUserIDsRequired,
}

// handleError is the single place upstream and validation failures become
// responses. Services and the upstream client never catch errors; forms
// get the upstream detail verbatim when there is one.
func handleError(c *gin.Context, err error) {
	for _, verr := range validationErrors {
		if errors.Is(err, verr) {
			response.ParamError(c, err.Error())
			return
		}
	}

	switch {
	case upstream.IsUnauthorized(err):
		// the session is already gone via the 401 hook
		response.AuthError(c, "")
	case upstream.IsNotFound(err):
		response.NotFoundError(c, upstream.Detail(err, ""))
	default:
		var ue *upstream.Error
		if errors.As(err, &ue) {
			response.UpstreamError(c, ue.Detail)
			return
		}
		response.ServerError(c, "")
	}
}

func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "50"))

	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 50
	}
	return page, size
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.ParamError(c, "invalid "+name)
		return 0, false
	}
	return id, true
}

func optionalBotID(c *gin.Context) *int64 {
	raw := c.Query("bot_id")
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil
	}
	return &id
}

func actor(c *gin.Context) service.Actor {
	sess, ok := middleware.GetSession(c)
	if !ok {
		return service.Actor{}
	}
	return service.Actor{
		ID:       sess.User.ID,
		Username: sess.User.Username,
	}
}
