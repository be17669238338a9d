package handler

import (
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/PS-gitpro/myblog/internal/domain"
	"github.com/PS-gitpro/myblog/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// asUser injects a logged-in user, standing in for the session
// middleware.
func asUser(user *domain.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserKey, user)
		c.Next()
	}
}

// formBody encodes form values the way a browser form post would.
func formBody(values url.Values) *strings.Reader {
	return strings.NewReader(values.Encode())
}

// validatorErrors builds a single-field validation failure.
func validatorErrors(field, code string) validation.Errors {
	return validation.Errors{field: validation.NewError(code, code)}
}
