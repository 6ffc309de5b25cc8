package auth

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrInvalidUserID      = errors.New("invalid user id")
	ErrInvalidName        = errors.New("invalid or missing name")
	ErrInvalidEmail       = errors.New("invalid or missing email")
	ErrUserExists         = errors.New("the email address already exists")
	ErrInvalidUserType    = errors.New("invalid or missing user role")
	ErrInvalidPass        = errors.New("invalid or missing password")
	ErrShortPass          = errors.New("password can't be less than 8 characters")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingAuth        = errors.New("Authorization is missing")
	ErrUnauthorized       = errors.New("unauthorized")
)

func GetCtxClaims(c *gin.Context) *Claims {
	if v, ok := c.Get(gin.AuthUserKey); ok {
		if cl, ok := v.(*Claims); ok {
			return cl
		}
	}
	return nil
}
