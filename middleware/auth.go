package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/taskforge/taskforge/auth"
	apperrors "github.com/taskforge/taskforge/errors"
)

const principalKey = "principal"

// Principal is the authenticated identity attached to a request after
// the token gate passes.
type Principal struct {
	UserID   int64
	Username string
}

// RequireToken gates protected routes. A missing header yields 401; a
// malformed, invalid or expired token yields 403 with a single message
// that does not reveal which check failed. On success the decoded
// identity is attached to the request and the chain continues.
func RequireToken(tokens *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return apperrors.Authentication("missing token")
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			return apperrors.Forbidden("invalid or expired token")
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			return err
		}

		c.Locals(principalKey, Principal{UserID: claims.UserID, Username: claims.Username})
		return c.Next()
	}
}

// PrincipalFrom returns the identity attached by RequireToken.
func PrincipalFrom(c *fiber.Ctx) (Principal, bool) {
	p, ok := c.Locals(principalKey).(Principal)
	return p, ok
}
