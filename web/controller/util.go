package controller

import (
	"net"
	"net/http"
	"strings"

	"userhub/database/model"
	"userhub/web/entity"
	"userhub/web/middleware"

	"github.com/gin-gonic/gin"
)

// getRemoteIp extracts the real IP address from the request headers or remote address.
func getRemoteIp(c *gin.Context) string {
	value := c.GetHeader("X-Real-IP")
	if value != "" {
		return value
	}
	value = c.GetHeader("X-Forwarded-For")
	if value != "" {
		ips := strings.Split(value, ",")
		return ips[0]
	}
	addr := c.Request.RemoteAddr
	ip, _, _ := net.SplitHostPort(addr)
	return ip
}

// jsonMsg sends an envelope with a message and no payload.
func jsonMsg(c *gin.Context, code int, msg string) {
	c.JSON(code, entity.Msg{
		Message: msg,
		Code:    code,
	})
}

// jsonData sends an envelope with a message and payload.
func jsonData(c *gin.Context, code int, msg string, data any) {
	c.JSON(code, entity.Msg{
		Message: msg,
		Code:    code,
		Data:    data,
	})
}

// jsonErrors sends the validation failure envelope with per-field errors.
func jsonErrors(c *gin.Context, msg string, errs entity.FieldErrors) {
	c.JSON(http.StatusBadRequest, entity.Msg{
		Message: msg,
		Code:    http.StatusBadRequest,
		Errors:  errs,
	})
}

// jsonInternal sends a 500 envelope surfacing the underlying error message.
func jsonInternal(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, entity.Msg{
		Message: "Internal Server Error",
		Code:    http.StatusInternalServerError,
		Data:    err.Error(),
	})
}

// currentUser returns the authenticated user set by the token middleware.
func currentUser(c *gin.Context) *model.User {
	return middleware.GetUser(c)
}
