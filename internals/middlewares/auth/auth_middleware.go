// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"rhythmflow_backend/internals/configs"
)

const StudioIDLocal = "studio_id"

// AuthMiddleware validates the bearer token and stores the owning studio's
// id in c.Locals(StudioIDLocal). Every downstream query must filter on it;
// the id is never taken from the request body or query.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		studioID, err := extractStudioID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing studio ID")
		}
		c.Locals(StudioIDLocal, studioID.String())

		return c.Next()
	}
}

// GetStudioID reads the studio id resolved by AuthMiddleware.
func GetStudioID(c *fiber.Ctx) (uuid.UUID, error) {
	v, ok := c.Locals(StudioIDLocal).(string)
	if !ok || v == "" {
		return uuid.Nil, errors.New("studio id missing from context")
	}
	return uuid.Parse(v)
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	header := strings.TrimSpace(c.Get("Authorization"))
	if header == "" {
		return "", errors.New("Unauthorized - Missing Authorization header")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", errors.New("Unauthorized - Malformed Authorization header")
	}
	return strings.TrimSpace(parts[1]), nil
}

func validateTokenExpiry(claims jwt.MapClaims) error {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return errors.New("missing exp claim")
	}
	if time.Now().UTC().After(time.Unix(int64(exp), 0).UTC()) {
		return errors.New("token expired")
	}
	return nil
}

func extractStudioID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims[StudioIDLocal].(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("missing studio_id claim")
	}
	return uuid.Parse(raw)
}
