// Package middleware provides gin middleware for the userhub API.
package middleware

import (
	"net/http"
	"strings"

	"userhub/database"
	"userhub/database/model"
	"userhub/web/entity"
	"userhub/web/service"

	"github.com/gin-gonic/gin"
)

const userKey = "user"

// UserFinder resolves a token subject to a user record.
type UserFinder interface {
	FindByID(id int) (*model.User, error)
}

// TokenRequired verifies the bearer token on the request, resolves the
// owning user and stores it in the context. Requests with no, malformed or
// expired tokens are rejected with the matching envelope and status.
func TokenRequired(tokens *service.TokenService, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := tokens.Parse(bearerToken(c))
		if err != nil {
			abortWith(c, err)
			return
		}

		user, err := users.FindByID(id)
		if err != nil {
			if database.IsNotFound(err) {
				abortWith(c, service.ErrUserNotFound)
			} else {
				c.AbortWithStatusJSON(http.StatusInternalServerError, entity.Msg{
					Message: "Internal Server Error",
					Code:    http.StatusInternalServerError,
				})
			}
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// GetUser returns the authenticated user placed in the context by
// TokenRequired. Only valid on protected routes.
func GetUser(c *gin.Context) *model.User {
	user, _ := c.Get(userKey)
	u, _ := user.(*model.User)
	return u
}

func bearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if auth == "" {
		return ""
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}

func abortWith(c *gin.Context, err error) {
	code := service.StatusCode(err)
	c.AbortWithStatusJSON(code, entity.Msg{
		Message: err.Error(),
		Code:    code,
	})
}
