package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"job-portal/internal/domain/user"
	"job-portal/internal/pkg/jwt"
)

const (
	CtxUserIDKey = "user_id"
	CtxRoleKey   = "role"

	// TokenCookieName is the cookie the login/register handlers set for
	// browser clients; API clients use the Authorization header instead.
	TokenCookieName = "token"
)

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := tokenFromRequest(c)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Please login to access this resource", nil, nil)
		}

		claims, err := m.jwt.Validate(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		c.Locals(CtxUserIDKey, userID)
		c.Locals(CtxRoleKey, user.Role(claims.Role))

		return c.Next()
	}
}

// RequireRole gates a route group to one role. It assumes the auth
// middleware already ran.
func RequireRole(allowed user.Role) fiber.Handler {
	return func(c fiber.Ctx) error {
		role, ok := c.Locals(CtxRoleKey).(user.Role)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Please login to access this resource", nil, nil)
		}
		if role != allowed {
			return NewAppError(fiber.StatusForbidden,
				string(role)+" not allowed to access this resource.", nil, nil)
		}
		return c.Next()
	}
}

func tokenFromRequest(c fiber.Ctx) (string, bool) {
	if tok := strings.TrimSpace(c.Cookies(TokenCookieName)); tok != "" {
		return tok, true
	}
	return bearerTokenFromHeader(c.Get("Authorization"))
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
